package transform

import (
	"strings"

	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

// ExtractTitle turns the document's first line into its level-1 heading.
// The title region is everything up to the first newline marker or list.
// When the region's flattened text matches the stored title, the region is
// wrapped as a heading in place; the terminating marker stays behind it.
// Otherwise a synthetic heading carrying the stored title is prepended and
// the original first line is kept as ordinary content after it.
func ExtractTitle(doc *segment.Document) {
	root := doc.Root
	kids := root.Children()

	cut := len(kids)
	for i, c := range kids {
		if c.Tag.Kind == segment.KindNewline || c.Tag.Kind == segment.KindList {
			cut = i
			break
		}
	}
	region := kids[:cut]

	var flat strings.Builder
	for _, c := range region {
		flat.WriteString(c.Text())
	}
	title := strings.TrimSpace(doc.Title)

	if cut > 0 && strings.TrimSpace(flat.String()) == title {
		heading := segment.NewNode(segment.HeadingTag(1), region...)
		rest := kids[cut:]
		// A list terminator (or no terminator at all) carries no line break
		// of its own; the heading line still needs one.
		if len(rest) == 0 || rest[0].Tag.Kind != segment.KindNewline {
			rest = append([]*segment.Segment{segment.Newline()}, rest...)
		}
		root.SetChildren(append([]*segment.Segment{heading}, rest...))
		return
	}

	heading := segment.NewNode(segment.HeadingTag(1), segment.NewText(title))
	root.SetChildren(append([]*segment.Segment{heading, segment.Newline()}, kids...))
}
