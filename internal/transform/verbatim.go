package transform

import (
	"strings"

	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

// PromoteVerbatim rewrites top-level monospace spans into block literals
// when it is safe: the span must contain plain text only, that text must
// still embed at least one line terminator, and the span must begin at the
// start of an output line. Line start means the span is the root's first
// child, follows a newline marker, follows a finished list, or follows
// content whose last reachable text itself ends in a terminator (the case
// of a preceding opaque span). Anything else stays inline monospace.
func PromoteVerbatim(root *segment.Segment) {
	kids := root.Children()
	for i, c := range kids {
		if c.Tag.Kind != segment.KindMonospace {
			continue
		}
		if !textOnly(c) {
			continue
		}
		if !strings.ContainsFunc(c.Text(), isLineTerminator) {
			continue
		}
		if i > 0 && !endsLine(kids[i-1]) {
			continue
		}
		c.Tag = segment.NewTag(segment.KindVerbatim)
	}
}

// textOnly reports whether every descendant of s is plain text.
func textOnly(s *segment.Segment) bool {
	for _, c := range s.Children() {
		if c.Tag.Kind != segment.KindText {
			return false
		}
	}
	return true
}

// endsLine reports whether emission is at line start after rendering s.
func endsLine(s *segment.Segment) bool {
	switch s.Tag.Kind {
	case segment.KindNewline, segment.KindList:
		return true
	}
	text := lastText(s)
	if text == "" {
		return false
	}
	runes := []rune(text)
	return isLineTerminator(runes[len(runes)-1])
}

// lastText returns the last text content reachable from s in reverse
// document order.
func lastText(s *segment.Segment) string {
	if s.Tag.Kind == segment.KindText {
		frags := s.Fragments()
		for i := len(frags) - 1; i >= 0; i-- {
			if frags[i] != "" {
				return frags[i]
			}
		}
		return ""
	}
	kids := s.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if text := lastText(kids[i]); text != "" {
			return text
		}
	}
	return ""
}
