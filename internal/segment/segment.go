package segment

import (
	"strings"
	"time"
)

// Segment is one node of the document tree. A text node holds raw string
// fragments and never children; every other node holds an ordered child list
// it exclusively owns. The parent pointer is non-owning and used only for
// traversal and lineage checks. Newline and list-item nodes never carry a
// parent pointer: their position is unambiguous once lines are split, and
// the lineage pass skips them.
type Segment struct {
	Tag    Tag
	parent *Segment
	kids   []*Segment
	frags  []string
}

// NewNode returns a node with the given tag, adopting the given children.
func NewNode(tag Tag, children ...*Segment) *Segment {
	s := &Segment{Tag: tag}
	s.Append(children...)
	return s
}

// NewText returns a text node holding the given fragments.
func NewText(frags ...string) *Segment {
	return &Segment{Tag: NewTag(KindText), frags: frags}
}

// Newline returns a fresh newline marker.
func Newline() *Segment {
	return &Segment{Tag: NewTag(KindNewline)}
}

// Parent returns the node's parent, or nil for roots, newlines and list items.
func (s *Segment) Parent() *Segment { return s.parent }

// Children returns the node's child list.
func (s *Segment) Children() []*Segment { return s.kids }

// Fragments returns a text node's string fragments.
func (s *Segment) Fragments() []string { return s.frags }

// SetFragments replaces a text node's string fragments.
func (s *Segment) SetFragments(frags []string) { s.frags = frags }

// Append adopts children at the end of the child list.
func (s *Segment) Append(children ...*Segment) {
	for _, c := range children {
		s.adopt(c)
		s.kids = append(s.kids, c)
	}
}

// SetChildren replaces the child list, adopting every element.
func (s *Segment) SetChildren(children []*Segment) {
	for _, c := range children {
		s.adopt(c)
	}
	s.kids = children
}

func (s *Segment) adopt(c *Segment) {
	if c.Tag.Kind == KindNewline || c.Tag.Kind == KindListItem {
		return
	}
	c.parent = s
}

// Text flattens all text content beneath the node, in document order.
// Newline markers contribute nothing.
func (s *Segment) Text() string {
	var b strings.Builder
	s.writeText(&b)
	return b.String()
}

func (s *Segment) writeText(b *strings.Builder) {
	if s.Tag.Kind == KindText {
		for _, f := range s.frags {
			b.WriteString(f)
		}
		return
	}
	for _, c := range s.kids {
		c.writeText(b)
	}
}

// Lines groups the root's children into per-line runs. A newline marker ends
// the current line and belongs to none; a list yields one line per list item.
func Lines(root *Segment) [][]*Segment {
	var lines [][]*Segment
	var cur []*Segment
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, cur)
			cur = nil
		}
	}
	for _, c := range root.kids {
		switch c.Tag.Kind {
		case KindNewline:
			flush()
		case KindList:
			flush()
			for _, item := range c.kids {
				lines = append(lines, []*Segment{item})
			}
		default:
			cur = append(cur, c)
		}
	}
	flush()
	return lines
}

// Document is one note's tree plus the scalar fields the pipeline consumes.
type Document struct {
	Root     *Segment
	Title    string
	Created  time.Time
	Modified time.Time
}
