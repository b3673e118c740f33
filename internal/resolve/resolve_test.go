package resolve

import (
	"testing"

	"github.com/mikem23/zim-import-tomboy/internal/segment"
	"github.com/mikem23/zim-import-tomboy/internal/tomboy"
)

func TestPageName_Sanitizes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Plain Title", "Plain Title"},
		{"What?: A/B", "What AB"},
		{"  spaced   out  ", "spaced out"},
		{"tabs\tand\nbreaks", "tabs and breaks"},
		{"#%|<>", "Untitled"},
		{"", "Untitled"},
	}
	for _, tc := range cases {
		if got := PageName(tc.in); got != tc.want {
			t.Errorf("PageName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("My Page (2)"); got != "My_Page_(2).txt" {
		t.Errorf("FileName = %q", got)
	}
}

func notes(titles ...string) []*tomboy.Note {
	out := make([]*tomboy.Note, len(titles))
	for i, title := range titles {
		out[i] = &tomboy.Note{Path: "/notes/" + string(rune('a'+i)) + ".note", Title: title}
	}
	return out
}

func TestAssignNames_UniqueInFirstSeenOrder(t *testing.T) {
	ns := notes("Plan", "Plan", "plan?")
	n := AssignNames(ns)
	if got := n.Page(ns[0].Path); got != "Plan" {
		t.Errorf("first = %q", got)
	}
	if got := n.Page(ns[1].Path); got != "Plan (2)" {
		t.Errorf("second = %q", got)
	}
	// "plan?" sanitizes to "plan", which no assigned name matches exactly.
	if got := n.Page(ns[2].Path); got != "plan" {
		t.Errorf("third = %q", got)
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	ns := notes("My Project")
	n := AssignNames(ns)
	if page, ok := n.Resolve("my project"); !ok || page != "My Project" {
		t.Errorf("Resolve = %q, %v", page, ok)
	}
	if _, ok := n.Resolve("unknown"); ok {
		t.Error("unknown title must not resolve")
	}
}

func TestAnnotate_TargetAndUnlink(t *testing.T) {
	ns := notes("Other Note")
	n := AssignNames(ns)

	known := segment.NewNode(segment.NewTag(segment.KindLinkInternal), segment.NewText("Other Note"))
	unknown := segment.NewNode(segment.NewTag(segment.KindLinkBroken), segment.NewText("Missing"))
	plain := segment.NewNode(segment.NewTag(segment.KindBold), segment.NewText("Other Note"))
	root := segment.NewNode(segment.NewTag(segment.KindNoteContent), known, unknown, plain)

	n.Annotate(root)

	if got := known.Tag.Attr("target"); got != "Other Note" {
		t.Errorf("known target = %q", got)
	}
	if known.Tag.Attr("unlink") != "" {
		t.Error("resolved link must not be unlinked")
	}
	if unknown.Tag.Attr("unlink") != "true" {
		t.Error("unresolved link must be unlinked")
	}
	if plain.Tag.Attr("target") != "" {
		t.Error("non-link segments must not be annotated")
	}
}
