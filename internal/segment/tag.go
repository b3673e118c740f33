// Package segment defines the typed document tree a Tomboy note passes
// through on its way to Zim wiki markup: the closed set of markup kinds,
// the tree node itself, and the builder that converts a parsed note-content
// element into a tree.
package segment

import (
	"maps"
	"strconv"
)

// Kind discriminates segment tags. The set is closed: source elements whose
// qualified name is not in the kind table fail the build.
type Kind int

const (
	KindNoteContent Kind = iota
	KindText
	KindNewline
	KindBold
	KindItalic
	KindStrikethrough
	KindHighlight
	KindMonospace
	KindUnderline
	KindSizeSmall
	KindSizeLarge
	KindSizeHuge
	KindLinkInternal
	KindLinkBroken
	KindLinkURL
	KindLinkBugzilla
	KindDatetime
	KindList
	KindListItem
	KindHeading
	KindVerbatim
)

var kindNames = map[Kind]string{
	KindNoteContent:   "note-content",
	KindText:          "text",
	KindNewline:       "newline",
	KindBold:          "bold",
	KindItalic:        "italic",
	KindStrikethrough: "strikethrough",
	KindHighlight:     "highlight",
	KindMonospace:     "monospace",
	KindUnderline:     "underline",
	KindSizeSmall:     "size:small",
	KindSizeLarge:     "size:large",
	KindSizeHuge:      "size:huge",
	KindLinkInternal:  "link:internal",
	KindLinkBroken:    "link:broken",
	KindLinkURL:       "link:url",
	KindLinkBugzilla:  "link:bugzilla",
	KindDatetime:      "datetime",
	KindList:          "list",
	KindListItem:      "list-item",
	KindHeading:       "heading",
	KindVerbatim:      "verbatim",
}

// sourceKinds maps qualified Tomboy element names to kinds. text, newline,
// heading and verbatim are pipeline-internal and never parsed from source.
var sourceKinds = map[string]Kind{
	"note-content":  KindNoteContent,
	"bold":          KindBold,
	"italic":        KindItalic,
	"strikethrough": KindStrikethrough,
	"highlight":     KindHighlight,
	"monospace":     KindMonospace,
	"underline":     KindUnderline,
	"size:small":    KindSizeSmall,
	"size:large":    KindSizeLarge,
	"size:huge":     KindSizeHuge,
	"link:internal": KindLinkInternal,
	"link:broken":   KindLinkBroken,
	"link:url":      KindLinkURL,
	"link:bugzilla": KindLinkBugzilla,
	"datetime":      KindDatetime,
	"list":          KindList,
	"list-item":     KindListItem,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// LookupKind resolves a qualified source element name against the kind table.
func LookupKind(name string) (Kind, bool) {
	k, ok := sourceKinds[name]
	return k, ok
}

// Tag labels a segment with a kind and an attribute mapping. Two tags are
// equal iff kind and attributes match exactly.
type Tag struct {
	Kind  Kind
	attrs map[string]string
}

// NewTag returns a tag of the given kind with no attributes.
func NewTag(kind Kind) Tag {
	return Tag{Kind: kind}
}

// HeadingTag returns a heading tag carrying the given level.
func HeadingTag(level int) Tag {
	t := Tag{Kind: KindHeading}
	t.SetAttr("level", strconv.Itoa(level))
	return t
}

// Attr returns the named attribute, or "" when absent.
func (t Tag) Attr(name string) string {
	return t.attrs[name]
}

// SetAttr sets the named attribute.
func (t *Tag) SetAttr(name, value string) {
	if t.attrs == nil {
		t.attrs = make(map[string]string, 1)
	}
	t.attrs[name] = value
}

// Level returns the heading level, or 0 when the tag carries none.
func (t Tag) Level() int {
	n, _ := strconv.Atoi(t.attrs["level"])
	return n
}

// Equal reports whether both kind and attributes match exactly.
func (t Tag) Equal(o Tag) bool {
	return t.Kind == o.Kind && maps.Equal(t.attrs, o.attrs)
}

// Clone returns a copy of the tag with its own attribute map.
func (t Tag) Clone() Tag {
	c := Tag{Kind: t.Kind}
	if len(t.attrs) > 0 {
		c.attrs = maps.Clone(t.attrs)
	}
	return c
}
