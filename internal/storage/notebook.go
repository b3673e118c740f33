// Package storage writes the output Zim notebook directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Notebook writes pages into a Zim notebook directory.
type Notebook struct {
	root string // absolute path to the notebook directory
}

// NewNotebook creates the notebook directory if needed and returns a
// Notebook rooted there.
func NewNotebook(root string) (*Notebook, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &Notebook{root: abs}, nil
}

// Root returns the absolute notebook directory.
func (nb *Notebook) Root() string { return nb.root }

// safePath resolves a relative path against the notebook root and rejects
// any result that escapes it (directory traversal).
func (nb *Notebook) safePath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if cleaned == "" || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: invalid page path: %q", rel)
	}
	joined := filepath.Join(nb.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, nb.root+string(os.PathSeparator)) {
		return "", fmt.Errorf("storage: path escapes notebook root: %s", rel)
	}
	return abs, nil
}

// WritePage atomically writes content: tmp file → fsync → rename.
func (nb *Notebook) WritePage(path string, content []byte) error {
	abs, err := nb.safePath(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".zim-import-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Touch stamps a page with the source note's modification time, so Zim
// shows the original history.
func (nb *Notebook) Touch(path string, mtime time.Time) error {
	abs, err := nb.safePath(path)
	if err != nil {
		return err
	}
	if mtime.IsZero() {
		return nil
	}
	if err := os.Chtimes(abs, mtime, mtime); err != nil {
		return fmt.Errorf("storage: touch %s: %w", path, err)
	}
	return nil
}

// WriteNotebookFile emits the notebook.zim stub Zim needs to recognize the
// directory as a notebook.
func (nb *Notebook) WriteNotebookFile(name string) error {
	content := fmt.Sprintf("[Notebook]\nversion=0.4\nname=%s\n", name)
	return nb.WritePage("notebook.zim", []byte(content))
}
