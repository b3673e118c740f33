// Package convert turns one parsed Tomboy note into the full text of its
// Zim page. It is a pure transform: build the segment tree, annotate links,
// normalize, render, prepend the page header. No I/O.
package convert

import (
	"fmt"

	"github.com/mikem23/zim-import-tomboy/internal/resolve"
	"github.com/mikem23/zim-import-tomboy/internal/segment"
	"github.com/mikem23/zim-import-tomboy/internal/tomboy"
	"github.com/mikem23/zim-import-tomboy/internal/transform"
	"github.com/mikem23/zim-import-tomboy/internal/zim"
)

// Page converts one note. names may be nil, in which case every internal
// link renders as plain text.
func Page(note *tomboy.Note, names *resolve.Names) (string, error) {
	root, err := segment.FromElement(note.Content)
	if err != nil {
		return "", fmt.Errorf("convert %q: %w", note.Title, err)
	}
	if names != nil {
		names.Annotate(root)
	}

	doc := &segment.Document{
		Root:     root,
		Title:    note.Title,
		Created:  note.Created,
		Modified: note.Modified,
	}
	if err := transform.Normalize(doc); err != nil {
		return "", fmt.Errorf("convert %q: %w", note.Title, err)
	}

	body, err := zim.Render(doc.Root)
	if err != nil {
		return "", fmt.Errorf("convert %q: %w", note.Title, err)
	}
	return zim.Header(note.Created) + body, nil
}
