package transform

import (
	"strconv"
	"strings"

	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

// Tree construction and comparison helpers shared by the pass tests.

func text(s string) *segment.Segment { return segment.NewText(s) }

func node(kind segment.Kind, kids ...*segment.Segment) *segment.Segment {
	return segment.NewNode(segment.NewTag(kind), kids...)
}

func root(kids ...*segment.Segment) *segment.Segment {
	return node(segment.KindNoteContent, kids...)
}

// dump renders a tree's shape as a compact string for comparison.
func dump(s *segment.Segment) string {
	if s.Tag.Kind == segment.KindText {
		return strconv.Quote(strings.Join(s.Fragments(), ""))
	}
	var b strings.Builder
	b.WriteString(s.Tag.Kind.String())
	if lvl := s.Tag.Level(); lvl > 0 {
		b.WriteString(strconv.Itoa(lvl))
	}
	if s.Tag.Kind == segment.KindNewline {
		return b.String()
	}
	b.WriteByte('(')
	for i, c := range s.Children() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(dump(c))
	}
	b.WriteByte(')')
	return b.String()
}
