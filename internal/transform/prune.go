package transform

import "github.com/mikem23/zim-import-tomboy/internal/segment"

// PruneEmpty removes contentless nodes bottom-up. Text nodes first drop
// their empty string fragments; a text node left with no fragments, or any
// other node left with no children, is dropped from its parent. Newline and
// list-item nodes are always retained: they carry structural meaning even
// when empty. The node PruneEmpty is called on is itself never removed.
func PruneEmpty(s *segment.Segment) {
	if s.Tag.Kind == segment.KindText {
		var kept []string
		for _, f := range s.Fragments() {
			if f != "" {
				kept = append(kept, f)
			}
		}
		s.SetFragments(kept)
		return
	}
	var kept []*segment.Segment
	for _, c := range s.Children() {
		PruneEmpty(c)
		if retain(c) {
			kept = append(kept, c)
		}
	}
	s.SetChildren(kept)
}

func retain(s *segment.Segment) bool {
	switch s.Tag.Kind {
	case segment.KindNewline, segment.KindListItem:
		return true
	case segment.KindText:
		return len(s.Fragments()) > 0
	}
	return len(s.Children()) > 0
}
