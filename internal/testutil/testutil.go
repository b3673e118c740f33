// Package testutil provides shared test helpers for building notes,
// notebooks and manifest databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikem23/zim-import-tomboy/internal/manifest"
	"github.com/mikem23/zim-import-tomboy/internal/storage"
)

// TestManifest creates a temporary manifest database that is automatically
// cleaned up.
func TestManifest(t *testing.T) *manifest.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "zim-import-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := manifest.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestNotebook creates a temporary notebook directory.
func TestNotebook(t *testing.T) (string, *storage.Notebook) {
	t.Helper()
	dir := t.TempDir()
	nb, err := storage.NewNotebook(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, nb
}

// NoteXML builds a minimal Tomboy note document. content is the raw inner
// XML of the note-content element; by convention its first line should
// repeat the title, as Tomboy notes do.
func NoteXML(title, content string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<note version="0.3" xmlns:link="http://beatniksoftware.com/tomboy/link" xmlns:size="http://beatniksoftware.com/tomboy/size" xmlns="http://beatniksoftware.com/tomboy">
  <title>%s</title>
  <text xml:space="preserve"><note-content version="0.1">%s</note-content></text>
  <last-change-date>2010-01-25T11:45:14.000000-05:00</last-change-date>
  <create-date>2009-03-04T18:02:44.000000-05:00</create-date>
</note>
`, title, content))
}

// WriteNote writes a note file into dir and returns its path.
func WriteNote(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
