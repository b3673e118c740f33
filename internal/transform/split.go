package transform

import (
	"fmt"
	"strings"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

// isLineTerminator reports whether r ends an output line. The set is the
// broadened one Tomboy content can contain, not just \n.
func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// SplitLines rewrites the tree so that no inline span crosses a line
// boundary: line terminators inside text become standalone newline markers,
// and any span containing a marker is closed off and restarted around it.
// Lists keep their items as the line unit, and verbatim and monospace spans
// are opaque (the verbatim-promotion pass inspects newlines still embedded
// in monospace text). Returns the pieces that replace s in its parent; for
// the note-content root that is always the root itself.
func SplitLines(s *segment.Segment) ([]*segment.Segment, error) {
	switch s.Tag.Kind {
	case segment.KindText:
		return splitText(s), nil

	case segment.KindNoteContent:
		var kids []*segment.Segment
		for _, c := range s.Children() {
			pieces, err := SplitLines(c)
			if err != nil {
				return nil, err
			}
			kids = append(kids, pieces...)
		}
		s.SetChildren(kids)
		return []*segment.Segment{s}, nil

	case segment.KindList:
		// List items are their own line unit: markers produced inside
		// them are dropped rather than propagated.
		var kids []*segment.Segment
		for _, c := range s.Children() {
			pieces, err := SplitLines(c)
			if err != nil {
				return nil, err
			}
			for _, p := range pieces {
				if p.Tag.Kind == segment.KindNewline {
					continue
				}
				kids = append(kids, p)
			}
		}
		s.SetChildren(kids)
		return []*segment.Segment{s}, nil

	case segment.KindVerbatim, segment.KindMonospace:
		return []*segment.Segment{s}, nil

	case segment.KindNewline:
		return nil, fmt.Errorf("transform: newline marker in split input: %w", apperr.ErrPipelineState)

	default:
		return splitSpan(s)
	}
}

// splitText decomposes a text node on line terminators. Each retained
// terminator becomes a standalone newline marker between the resulting text
// segments; a terminator at the very end yields a trailing marker. \r\n
// counts as a single terminator.
func splitText(s *segment.Segment) []*segment.Segment {
	content := []rune(strings.Join(s.Fragments(), ""))
	var out []*segment.Segment
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, segment.NewText(cur.String()))
			cur.Reset()
		}
	}
	for i := 0; i < len(content); i++ {
		r := content[i]
		if !isLineTerminator(r) {
			cur.WriteRune(r)
			continue
		}
		flush()
		if r == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
		out = append(out, segment.Newline())
	}
	flush()
	return out
}

// splitSpan handles every inline span kind: wherever splitting a child
// yields a newline marker, the accumulated children so far are closed off
// as a finished copy of the span, the marker propagates upward unchanged,
// and accumulation restarts. The remainder closes the final copy.
func splitSpan(s *segment.Segment) ([]*segment.Segment, error) {
	var out []*segment.Segment
	var cur []*segment.Segment
	for _, c := range s.Children() {
		pieces, err := SplitLines(c)
		if err != nil {
			return nil, err
		}
		for _, p := range pieces {
			if p.Tag.Kind == segment.KindNewline {
				out = append(out, segment.NewNode(s.Tag.Clone(), cur...), p)
				cur = nil
				continue
			}
			cur = append(cur, p)
		}
	}
	out = append(out, segment.NewNode(s.Tag.Clone(), cur...))
	return out, nil
}
