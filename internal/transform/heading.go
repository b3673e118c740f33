package transform

import "github.com/mikem23/zim-import-tomboy/internal/segment"

// PromoteHeadings rewrites top-level lines consisting of exactly one
// oversized-text span into headings: huge becomes level 2, large level 3.
// The span's children are left untouched. Assumes lines are already split.
func PromoteHeadings(root *segment.Segment) {
	for _, line := range segment.Lines(root) {
		if len(line) != 1 {
			continue
		}
		s := line[0]
		switch s.Tag.Kind {
		case segment.KindSizeHuge:
			s.Tag = segment.HeadingTag(2)
		case segment.KindSizeLarge:
			s.Tag = segment.HeadingTag(3)
		}
	}
}
