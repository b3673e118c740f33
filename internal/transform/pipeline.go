package transform

import "github.com/mikem23/zim-import-tomboy/internal/segment"

// Normalize runs the full pass pipeline over a freshly built document tree:
// merge adjacent spans, split into line-oriented structure, promote
// whole-line monospace to block literals, prune empty nodes, extract the
// title heading, promote oversized text to headings, then verify lineage.
// After Normalize the tree is ready for rendering and must not be mutated.
func Normalize(doc *segment.Document) error {
	Merge(doc.Root)
	if _, err := SplitLines(doc.Root); err != nil {
		return err
	}
	PromoteVerbatim(doc.Root)
	PruneEmpty(doc.Root)
	ExtractTitle(doc)
	PromoteHeadings(doc.Root)
	return CheckLineage(doc.Root)
}
