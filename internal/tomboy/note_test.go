package tomboy

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
	"github.com/mikem23/zim-import-tomboy/internal/testutil"
)

func TestParse_Basic(t *testing.T) {
	n, err := Parse(testutil.NoteXML("My Note", "My Note\n\nSome <bold>body</bold> text"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Title != "My Note" {
		t.Errorf("title = %q", n.Title)
	}
	if n.Created.Year() != 2009 || n.Modified.Year() != 2010 {
		t.Errorf("timestamps = %v / %v", n.Created, n.Modified)
	}
	if n.Content == nil || n.Content.Tag != "note-content" {
		t.Fatalf("content element missing")
	}
	if n.IsTemplate() {
		t.Error("plain note must not be a template")
	}
}

func TestParse_TemplateTag(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<note version="0.3" xmlns="http://beatniksoftware.com/tomboy">
  <title>New Note Template</title>
  <text xml:space="preserve"><note-content version="0.1">New Note Template</note-content></text>
  <tags><tag>system:template</tag></tags>
</note>`)
	n, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !n.IsTemplate() {
		t.Error("expected template note")
	}
}

func TestParse_MissingTimestampsAllowed(t *testing.T) {
	data := []byte(`<note version="0.3"><title>T</title><text><note-content>T</note-content></text></note>`)
	n, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !n.Created.IsZero() || !n.Modified.IsZero() {
		t.Errorf("timestamps should be zero when absent")
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"not xml":         "not a note at all <",
		"wrong root":      "<notes></notes>",
		"missing title":   "<note><text><note-content>x</note-content></text></note>",
		"missing text":    "<note><title>T</title></note>",
		"missing content": "<note><title>T</title><text></text></note>",
		"bad timestamp":   "<note><title>T</title><create-date>yesterday</create-date><text><note-content>T</note-content></text></note>",
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); !errors.Is(err, apperr.ErrBadNote) {
			t.Errorf("%s: err = %v, want ErrBadNote", name, err)
		}
	}
}

func TestListNotes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteNote(t, dir, "b.note", testutil.NoteXML("B", "B"))
	testutil.WriteNote(t, dir, "a.note", testutil.NoteXML("A", "A"))
	testutil.WriteNote(t, dir, "ignored.txt", []byte("x"))

	paths, err := ListNotes(dir)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d, want 2", len(paths))
	}
	if filepath.Base(paths[0]) != "a.note" || filepath.Base(paths[1]) != "b.note" {
		t.Errorf("paths not sorted: %v", paths)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteNote(t, dir, "n.note", testutil.NoteXML("N", "N"))
	n, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if n.Path != path {
		t.Errorf("path = %q, want %q", n.Path, path)
	}
}
