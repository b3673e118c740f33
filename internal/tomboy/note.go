// Package tomboy reads Tomboy and Gnote note files. It parses the outer
// note document (title, timestamps, tags) and hands the note-content
// element to the segment builder untouched.
package tomboy

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
)

// Note is one parsed source note.
type Note struct {
	Path     string
	Version  string
	Title    string
	Created  time.Time
	Modified time.Time
	Tags     []string
	// Content is the note-content element, still in source form.
	Content *etree.Element
}

// IsTemplate reports whether the note is a Tomboy template rather than a
// real note.
func (n *Note) IsTemplate() bool {
	return slices.Contains(n.Tags, "system:template")
}

// ParseFile reads and parses one .note file.
func ParseFile(path string) (*Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tomboy: read %s: %w", path, err)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tomboy: parse %s: %w", path, err)
	}
	n.Path = path
	return n, nil
}

// Parse parses the raw XML of one note.
func Parse(data []byte) (*Note, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadNote, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "note" {
		return nil, fmt.Errorf("%w: missing note root element", apperr.ErrBadNote)
	}

	n := &Note{Version: root.SelectAttrValue("version", "")}

	title := root.SelectElement("title")
	if title == nil {
		return nil, fmt.Errorf("%w: missing title", apperr.ErrBadNote)
	}
	n.Title = title.Text()

	var err error
	if n.Created, err = noteTime(root, "create-date"); err != nil {
		return nil, err
	}
	if n.Modified, err = noteTime(root, "last-change-date"); err != nil {
		return nil, err
	}

	if tags := root.SelectElement("tags"); tags != nil {
		for _, tag := range tags.SelectElements("tag") {
			n.Tags = append(n.Tags, tag.Text())
		}
	}

	text := root.SelectElement("text")
	if text == nil {
		return nil, fmt.Errorf("%w: missing text element", apperr.ErrBadNote)
	}
	n.Content = text.SelectElement("note-content")
	if n.Content == nil {
		return nil, fmt.Errorf("%w: missing note-content element", apperr.ErrBadNote)
	}
	return n, nil
}

// noteTime parses a Tomboy timestamp element (RFC 3339 with a fractional
// second of arbitrary precision). A missing element is not an error; Tomboy
// omits timestamps on some imported notes.
func noteTime(root *etree.Element, tag string) (time.Time, error) {
	el := root.SelectElement(tag)
	if el == nil {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(el.Text()))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad %s: %v", apperr.ErrBadNote, tag, err)
	}
	return t, nil
}

// ListNotes returns the sorted .note files directly under dir. Tomboy keeps
// a flat note directory, so no recursion.
func ListNotes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("tomboy: list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".note") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	slices.Sort(out)
	return out, nil
}
