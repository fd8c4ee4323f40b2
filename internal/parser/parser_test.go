package parser

import (
	"strings"
	"testing"

	"bmtidy/internal/models"
)

const sampleExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="http://a.com" ADD_DATE="111">Site A</A>
    <DT><H3 ADD_DATE="222" PERSONAL_TOOLBAR_FOLDER="true">Dev</H3>
    <DL><p>
        <DT><A HREF="http://b.com" ICON="data:foo">Site &amp; B</A>
        <DT><H3>Inner</H3>
        <DL><p>
            <DT><A HREF="http://c.com">C</A>
        </DL><p>
    </DL><p>
</DL><p>
`

func parse(t *testing.T, input string) *models.Folder {
	t.Helper()
	root, err := New().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return root
}

func TestParseStructure(t *testing.T) {
	root := parse(t, sampleExport)

	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}

	first := root.Children[0]
	if first.Type != models.NodeBookmark {
		t.Fatalf("first root child type = %v, want bookmark", first.Type)
	}
	if first.Bookmark.Href != "http://a.com" || first.Bookmark.Title != "Site A" {
		t.Errorf("first bookmark = %q %q", first.Bookmark.Href, first.Bookmark.Title)
	}

	second := root.Children[1]
	if second.Type != models.NodeFolder {
		t.Fatalf("second root child type = %v, want folder", second.Type)
	}
	dev := second.Folder
	if dev.Name != "Dev" {
		t.Errorf("folder name = %q, want Dev", dev.Name)
	}
	if len(dev.Children) != 2 {
		t.Fatalf("Dev children = %d, want 2", len(dev.Children))
	}

	inner := dev.Children[1]
	if inner.Type != models.NodeFolder || inner.Folder.Name != "Inner" {
		t.Fatalf("nested folder not built: %+v", inner)
	}
	if len(inner.Folder.Children) != 1 || inner.Folder.Children[0].Bookmark.Href != "http://c.com" {
		t.Errorf("Inner contents wrong: %+v", inner.Folder.Children)
	}
}

func TestParseAttributes(t *testing.T) {
	root := parse(t, sampleExport)

	dev := root.Children[1].Folder
	if v, ok := dev.Attrs.Get("ADD_DATE"); !ok || v != "222" {
		t.Errorf("folder ADD_DATE = %q %v, want 222", v, ok)
	}
	if _, ok := dev.Attrs.Get("personal_toolbar_folder"); !ok {
		t.Error("PERSONAL_TOOLBAR_FOLDER lost")
	}

	b := dev.Children[0].Bookmark
	if v, ok := b.Attrs.Get("icon"); !ok || v != "data:foo" {
		t.Errorf("bookmark ICON = %q %v", v, ok)
	}
}

func TestParseUnescapesEntities(t *testing.T) {
	root := parse(t, sampleExport)
	b := root.Children[1].Folder.Children[0].Bookmark
	if b.Title != "Site & B" {
		t.Errorf("title = %q, want %q", b.Title, "Site & B")
	}
}

func TestParseMissingHref(t *testing.T) {
	root := parse(t, `<DL><p><DT><A ADD_DATE="1">No link</A></DL><p>`)
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	b := root.Children[0].Bookmark
	if b.Href != "" || b.Title != "No link" {
		t.Errorf("bookmark = %q %q, want empty href", b.Href, b.Title)
	}
}

func TestParseHeadingWithoutListIsNotAFolder(t *testing.T) {
	root := parse(t, `<DL><p><DT><H3>Ghost</H3><DT><A HREF="http://a.com">A</A></DL><p>`)
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1 (heading without list must not materialize)", len(root.Children))
	}
	if root.Children[0].Type != models.NodeBookmark {
		t.Errorf("child type = %v, want bookmark", root.Children[0].Type)
	}
}

func TestParseHeadingReplacedByNextHeading(t *testing.T) {
	input := `<DL><p>
<DT><H3>First</H3>
<DT><H3>Second</H3>
<DL><p><DT><A HREF="http://a.com">A</A></DL><p>
</DL><p>`
	root := parse(t, input)
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	f := root.Children[0]
	if f.Type != models.NodeFolder || f.Folder.Name != "Second" {
		t.Errorf("folder = %+v, want Second (earlier pending heading discarded)", f)
	}
}

func TestParseToleratesUnbalancedLists(t *testing.T) {
	// Extra closers must not pop the root; entries after them still
	// land at the top level.
	input := `</DL><p></DL><p><DL><p><DT><A HREF="http://a.com">A</A></DL><p></DL><p>
<DT><A HREF="http://b.com">B</A>`
	root := parse(t, input)
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	if root.Children[1].Bookmark.Href != "http://b.com" {
		t.Errorf("second bookmark = %+v", root.Children[1].Bookmark)
	}
}

func TestParseTextOutsideHeadingAndAnchorIgnored(t *testing.T) {
	root := parse(t, `stray text<DL><p>more stray<DT><A HREF="http://a.com">A</A></DL><p>`)
	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	if got := root.Children[0].Bookmark.Title; got != "A" {
		t.Errorf("title = %q, stray text leaked into buffer", got)
	}
}
