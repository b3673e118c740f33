// Package resolve assigns unique Zim page names to a corpus of notes and
// resolves inter-note links. The rendering core treats the attributes set
// here as opaque input.
package resolve

import (
	"fmt"
	"strings"

	"github.com/mikem23/zim-import-tomboy/internal/segment"
	"github.com/mikem23/zim-import-tomboy/internal/tomboy"
)

// Characters Zim does not allow in page names. ':' is stripped as well
// because it introduces page hierarchy.
const forbidden = "?#/\\*\"<>|%:"

// Names holds the corpus-wide title → page-name assignment.
type Names struct {
	byTitle map[string]string // lower-cased note title → page name
	byPath  map[string]string // note path → page name
	used    map[string]bool
}

// AssignNames sanitizes every note title into a Zim page name and makes the
// names unique corpus-wide, in first-seen order.
func AssignNames(notes []*tomboy.Note) *Names {
	n := &Names{
		byTitle: make(map[string]string, len(notes)),
		byPath:  make(map[string]string, len(notes)),
		used:    make(map[string]bool, len(notes)),
	}
	for _, note := range notes {
		base := PageName(note.Title)
		name := base
		for i := 2; n.used[name]; i++ {
			name = fmt.Sprintf("%s (%d)", base, i)
		}
		n.used[name] = true
		n.byPath[note.Path] = name
		key := strings.ToLower(strings.TrimSpace(note.Title))
		if _, dup := n.byTitle[key]; !dup {
			n.byTitle[key] = name
		}
	}
	return n
}

// Page returns the page name assigned to the note at path.
func (n *Names) Page(path string) string {
	return n.byPath[path]
}

// Resolve looks up a link's display text against the known note titles.
// Tomboy links are case-insensitive.
func (n *Names) Resolve(title string) (string, bool) {
	name, ok := n.byTitle[strings.ToLower(strings.TrimSpace(title))]
	return name, ok
}

// Annotate walks a note's tree and marks every internal and broken link:
// resolvable ones get a target attribute, the rest an unlink flag.
func (n *Names) Annotate(s *segment.Segment) {
	switch s.Tag.Kind {
	case segment.KindLinkInternal, segment.KindLinkBroken:
		if name, ok := n.Resolve(s.Text()); ok {
			s.Tag.SetAttr("target", name)
		} else {
			s.Tag.SetAttr("unlink", "true")
		}
	}
	for _, c := range s.Children() {
		n.Annotate(c)
	}
}

// PageName sanitizes a note title into a Zim page name: forbidden
// characters are dropped and whitespace runs collapse to single spaces.
// An empty result falls back to "Untitled".
func PageName(title string) string {
	var b strings.Builder
	for _, r := range title {
		if strings.ContainsRune(forbidden, r) {
			continue
		}
		b.WriteRune(r)
	}
	name := strings.Join(strings.Fields(b.String()), " ")
	if name == "" {
		return "Untitled"
	}
	return name
}

// FileName returns the on-disk file for a page name, Zim style: spaces
// become underscores.
func FileName(page string) string {
	return strings.ReplaceAll(page, " ", "_") + ".txt"
}
