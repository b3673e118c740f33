package segment

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
)

// FromElement converts a parsed note-content element into a segment tree.
// The element's qualified name is matched against the kind table; an unknown
// name aborts the build. A node's own inline text becomes a leading text
// child (always created when the node has no child elements, so every
// content node has at least one text anchor), and text trailing a child
// element becomes a text sibling directly after it.
func FromElement(el *etree.Element) (*Segment, error) {
	kind, ok := LookupKind(el.FullTag())
	if !ok {
		return nil, fmt.Errorf("segment: element %q: %w", el.FullTag(), apperr.ErrUnknownKind)
	}

	tag := NewTag(kind)
	for _, a := range el.Attr {
		tag.SetAttr(a.Key, a.Value)
	}
	node := NewNode(tag)

	children := el.ChildElements()
	if text := el.Text(); text != "" || len(children) == 0 {
		node.Append(NewText(text))
	}
	for _, ch := range children {
		cs, err := FromElement(ch)
		if err != nil {
			return nil, err
		}
		node.Append(cs)
		if tail := ch.Tail(); tail != "" {
			node.Append(NewText(tail))
		}
	}
	return node, nil
}
