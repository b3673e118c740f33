package zim

import (
	"fmt"
	"strings"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

// Fixed before/after markup for the simple span kinds. Underline and the
// size variants have no Zim equivalent and render their content bare;
// auto-detected URL links are deliberately left as plain text.
var spanMarkup = map[segment.Kind][2]string{
	segment.KindBold:          {"**", "**"},
	segment.KindItalic:        {"//", "//"},
	segment.KindStrikethrough: {"~~", "~~"},
	segment.KindHighlight:     {"__", "__"},
	segment.KindMonospace:     {"''", "''"},
	segment.KindDatetime:      {"//[", "]//"},
}

// Render walks the normalized tree depth-first and emits Zim wiki markup.
// The only cross-node state is whether emission sits at the start of an
// output line; it governs list bullet placement and block literal delimiters.
func Render(root *segment.Segment) (string, error) {
	w := &walker{atLineStart: true}
	if err := w.walk(root); err != nil {
		return "", err
	}
	return w.out.String(), nil
}

type walker struct {
	out         strings.Builder
	atLineStart bool
	listDepth   int
	verbatim    int
}

func (w *walker) emit(text string) {
	if text == "" {
		return
	}
	w.out.WriteString(text)
	w.atLineStart = strings.HasSuffix(text, "\n")
}

func (w *walker) walk(s *segment.Segment) error {
	descend, err := w.pre(s)
	if err != nil {
		return err
	}
	if descend {
		for _, c := range s.Children() {
			if err := w.walk(c); err != nil {
				return err
			}
		}
	}
	w.post(s)
	return nil
}

func (w *walker) pre(s *segment.Segment) (bool, error) {
	switch s.Tag.Kind {
	case segment.KindText:
		for _, f := range s.Fragments() {
			if w.verbatim > 0 {
				w.emit(f)
			} else {
				w.emit(Escape(f))
			}
		}

	case segment.KindNewline:
		w.emit("\n")

	case segment.KindVerbatim:
		if !w.atLineStart {
			w.emit("\n")
		}
		w.emit("'''\n")
		w.verbatim++

	case segment.KindHeading:
		w.emit(headingRun(s.Tag.Level()) + " ")

	case segment.KindLinkInternal, segment.KindLinkBroken:
		w.renderLink(s)
		return false, nil

	case segment.KindLinkBugzilla:
		w.emit("[[" + s.Tag.Attr("uri") + "|bz#")

	case segment.KindList:
		w.listDepth++

	case segment.KindListItem:
		if soleNestedList(s) {
			break
		}
		if !w.atLineStart {
			return false, fmt.Errorf("zim: list item rendered mid-line at depth %d: %w",
				w.listDepth, apperr.ErrStructure)
		}
		w.emit(strings.Repeat("\t", w.listDepth-1) + "* ")

	default:
		if m, ok := spanMarkup[s.Tag.Kind]; ok {
			w.emit(m[0])
		}
	}
	return true, nil
}

func (w *walker) post(s *segment.Segment) {
	switch s.Tag.Kind {
	case segment.KindVerbatim:
		w.verbatim--
		if !w.atLineStart {
			w.emit("\n")
		}
		w.emit("'''\n")

	case segment.KindHeading:
		w.emit(" " + headingRun(s.Tag.Level()))

	case segment.KindLinkBugzilla:
		w.emit("]]")

	case segment.KindList:
		w.listDepth--

	case segment.KindListItem:
		if !soleNestedList(s) {
			w.emit("\n")
		}

	default:
		if m, ok := spanMarkup[s.Tag.Kind]; ok {
			w.emit(m[1])
		}
	}
}

// renderLink emits an internal or broken link. The externally resolved
// target wins over the display text; a link with no target renders its
// display text alone, and an unlinked one suppresses all markup. The
// display part is escaped so stray closing brackets in it cannot end the
// link early; the target is a sanitized page name and emitted as is.
func (w *walker) renderLink(s *segment.Segment) {
	display := s.Text()
	target := s.Tag.Attr("target")
	switch {
	case s.Tag.Attr("unlink") == "true" || target == "":
		w.emit(Escape(display))
	case target == display:
		w.emit("[[" + target + "]]")
	default:
		w.emit("[[" + target + "|" + Escape(display) + "]]")
	}
}

// soleNestedList reports whether a list item's only content is a nested
// list, in which case its markup is deferred entirely to the child items.
func soleNestedList(s *segment.Segment) bool {
	kids := s.Children()
	return len(kids) == 1 && kids[0].Tag.Kind == segment.KindList
}

// headingRun returns the '=' run for a heading level, clamped to Zim's
// range: level 1 gets six, deeper levels fewer, never below two.
func headingRun(level int) string {
	n := 7 - level
	if n < 2 {
		n = 2
	}
	if n > 6 {
		n = 6
	}
	return strings.Repeat("=", n)
}
