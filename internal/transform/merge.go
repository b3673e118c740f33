// Package transform implements the normalization pipeline that reshapes a
// freshly built segment tree into the form the Zim renderer expects. Pass
// order is fixed; each pass relies on invariants established by its
// predecessors.
package transform

import "github.com/mikem23/zim-import-tomboy/internal/segment"

// Formatting spans subject to adjacent-run merging.
var mergeable = map[segment.Kind]bool{
	segment.KindBold:          true,
	segment.KindItalic:        true,
	segment.KindStrikethrough: true,
	segment.KindHighlight:     true,
	segment.KindMonospace:     true,
	segment.KindUnderline:     true,
	segment.KindSizeSmall:     true,
	segment.KindSizeLarge:     true,
	segment.KindSizeHuge:      true,
}

// Merge collapses runs of structurally identical adjacent formatting spans
// into one span, bottom-up. The surviving span absorbs the children of the
// span that follows it. Idempotent.
func Merge(s *segment.Segment) {
	if s.Tag.Kind == segment.KindText {
		return
	}
	for _, c := range s.Children() {
		Merge(c)
	}
	mergeAdjacent(s)
}

// mergeAdjacent rescans the child list after every merge, since absorbing a
// sibling can expose new adjacency both here and at the seam inside the
// surviving span.
func mergeAdjacent(s *segment.Segment) {
	kids := s.Children()
	for {
		merged := false
		for i := 0; i+1 < len(kids); i++ {
			a, b := kids[i], kids[i+1]
			if !mergeable[a.Tag.Kind] || !a.Tag.Equal(b.Tag) {
				continue
			}
			a.Append(b.Children()...)
			mergeAdjacent(a)
			kids = append(kids[:i+1], kids[i+2:]...)
			merged = true
			break
		}
		if !merged {
			break
		}
	}
	s.SetChildren(kids)
}
