package zim

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mikem23/zim-import-tomboy/internal/apperr"
	"github.com/mikem23/zim-import-tomboy/internal/segment"
)

func text(s string) *segment.Segment { return segment.NewText(s) }

func node(kind segment.Kind, kids ...*segment.Segment) *segment.Segment {
	return segment.NewNode(segment.NewTag(kind), kids...)
}

func render(t *testing.T, kids ...*segment.Segment) string {
	t.Helper()
	out, err := Render(node(segment.KindNoteContent, kids...))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return out
}

func TestRender_SpanMarkup(t *testing.T) {
	cases := []struct {
		kind segment.Kind
		want string
	}{
		{segment.KindBold, "**x**"},
		{segment.KindItalic, "//x//"},
		{segment.KindStrikethrough, "~~x~~"},
		{segment.KindHighlight, "__x__"},
		{segment.KindMonospace, "''x''"},
		{segment.KindDatetime, "//[x]//"},
	}
	for _, tc := range cases {
		if got := render(t, node(tc.kind, text("x"))); got != tc.want {
			t.Errorf("%v = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestRender_DroppedFormattingKeepsContent(t *testing.T) {
	for _, kind := range []segment.Kind{
		segment.KindUnderline,
		segment.KindSizeSmall,
		segment.KindSizeLarge,
		segment.KindSizeHuge,
		segment.KindLinkURL,
	} {
		if got := render(t, node(kind, text("x"))); got != "x" {
			t.Errorf("%v = %q, want bare content", kind, got)
		}
	}
}

func TestRender_HeadingRuns(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "====== Title ======"},
		{2, "===== Title ====="},
		{3, "==== Title ===="},
		{5, "== Title =="},
		{6, "== Title =="}, // clamped to two
	}
	for _, tc := range cases {
		h := segment.NewNode(segment.HeadingTag(tc.level), text("Title"))
		if got := render(t, h); got != tc.want {
			t.Errorf("level %d = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestRender_Links(t *testing.T) {
	link := func(target, unlink, display string) *segment.Segment {
		s := node(segment.KindLinkInternal, text(display))
		if target != "" {
			s.Tag.SetAttr("target", target)
		}
		if unlink != "" {
			s.Tag.SetAttr("unlink", unlink)
		}
		return s
	}

	if got := render(t, link("ProjectX", "", "here")); got != "[[ProjectX|here]]" {
		t.Errorf("differing display = %q", got)
	}
	if got := render(t, link("ProjectX", "", "ProjectX")); got != "[[ProjectX]]" {
		t.Errorf("matching display = %q", got)
	}
	if got := render(t, link("", "true", "gone")); got != "gone" {
		t.Errorf("unlinked = %q", got)
	}
	if got := render(t, link("", "", "untargeted")); got != "untargeted" {
		t.Errorf("no target = %q", got)
	}
}

func TestRender_LinkDisplayEscaped(t *testing.T) {
	s := node(segment.KindLinkInternal, text("odd ]] display"))
	s.Tag.SetAttr("target", "Page")
	want := "[[Page|odd ]" + zeroWidth + "] display]]"
	if got := render(t, s); got != want {
		t.Errorf("link = %q, want %q", got, want)
	}
}

func TestRender_BugzillaLink(t *testing.T) {
	bz := node(segment.KindLinkBugzilla, text("123"))
	bz.Tag.SetAttr("uri", "https://bugzilla.example.com/123")
	want := "[[https://bugzilla.example.com/123|bz#123]]"
	if got := render(t, bz); got != want {
		t.Errorf("bugzilla = %q, want %q", got, want)
	}
}

func TestRender_List(t *testing.T) {
	got := render(t,
		node(segment.KindList,
			node(segment.KindListItem, text("one")),
			node(segment.KindListItem, text("two")),
		),
	)
	want := "* one\n* two\n"
	if got != want {
		t.Errorf("list = %q, want %q", got, want)
	}
}

func TestRender_NestedListIndent(t *testing.T) {
	got := render(t,
		node(segment.KindList,
			node(segment.KindListItem, text("outer")),
			node(segment.KindListItem,
				node(segment.KindList,
					node(segment.KindListItem, text("inner")),
				),
			),
		),
	)
	want := "* outer\n\t* inner\n"
	if got != want {
		t.Errorf("nested list = %q, want %q", got, want)
	}
}

func TestRender_ListItemMidLineFails(t *testing.T) {
	_, err := Render(node(segment.KindNoteContent,
		text("dangling"),
		node(segment.KindList, node(segment.KindListItem, text("x"))),
	))
	if !errors.Is(err, apperr.ErrStructure) {
		t.Fatalf("err = %v, want ErrStructure", err)
	}
}

func TestRender_VerbatimDelimiters(t *testing.T) {
	got := render(t,
		text("before"),
		segment.Newline(),
		node(segment.KindVerbatim, text("code **raw**\nline2\n")),
		text("after"),
	)
	want := "before\n'''\ncode **raw**\nline2\n'''\nafter"
	if got != want {
		t.Errorf("verbatim = %q, want %q", got, want)
	}
}

func TestRender_VerbatimMidLineGetsFreshLine(t *testing.T) {
	got := render(t,
		text("x"),
		node(segment.KindVerbatim, text("code")),
	)
	want := "x\n'''\ncode\n'''\n"
	if got != want {
		t.Errorf("verbatim = %q, want %q", got, want)
	}
}

func TestRender_TextEscapedOutsideVerbatim(t *testing.T) {
	got := render(t, text("a**b"))
	if got != "a*"+zeroWidth+"*b" {
		t.Errorf("escaped text = %q", got)
	}
	if strings.Contains(render(t, node(segment.KindVerbatim, text("a**b\n"))), zeroWidth) {
		t.Error("verbatim content must not be escaped")
	}
}

func TestHeader(t *testing.T) {
	created := time.Date(2009, 3, 4, 18, 2, 44, 0, time.FixedZone("", -5*3600))
	got := Header(created)
	want := "Content-Type: text/x-zim-wiki\nWiki-Format: zim 0.4\nCreation-Date: 2009-03-04T18:02:44-05:00\n\n"
	if got != want {
		t.Errorf("Header = %q, want %q", got, want)
	}
}
