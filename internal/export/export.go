// Package export renders bookmark trees and bucket sets back into the
// Netscape bookmark file format.
package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"bmtidy/internal/engine"
	"bmtidy/internal/models"
)

// Recognized extension attributes, in emission order. Anything else an
// export carried is dropped on output.
var (
	folderAttrs   = []string{"add_date", "last_modified", "personal_toolbar_folder"}
	bookmarkAttrs = []string{"add_date", "icon", "icon_uri", "last_modified"}
)

// Writer serializes to Netscape bookmark HTML with a configurable
// document title. The H1 heading is always "Bookmarks", as browsers
// emit it.
type Writer struct {
	title string
}

// NewWriter creates a writer with the given document title.
func NewWriter(title string) *Writer {
	return &Writer{title: title}
}

// WriteTree emits a folder tree, root children first, subfolders
// nested recursively.
func (w *Writer) WriteTree(out io.Writer, root *models.Folder) error {
	ew := &errWriter{w: out}
	w.header(ew)
	writeFolderChildren(ew, root, 1)
	ew.printf("</DL><p>\n")
	return ew.err
}

// WriteBuckets emits one flat level of folders, one per non-empty
// bucket, in discovery order.
func (w *Writer) WriteBuckets(out io.Writer, set *engine.BucketSet) error {
	ew := &errWriter{w: out}
	w.header(ew)
	for i, b := range set.Buckets() {
		if i > 0 {
			ew.printf("\n")
		}
		name := b.DisplayName
		if name == "" {
			name = "Untitled"
		}
		ew.printf("<DT><H3%s>%s</H3>\n", attrString(b.Attrs, folderAttrs), html.EscapeString(name))
		ew.printf("<DL><p>\n")
		for _, bm := range b.Bookmarks {
			writeBookmark(ew, bm, "  ")
		}
		ew.printf("</DL><p>")
	}
	ew.printf("\n</DL><p>\n")
	return ew.err
}

func (w *Writer) header(ew *errWriter) {
	ew.printf("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	ew.printf("<!-- This is an automatically generated file.\n")
	ew.printf("     It will be read and overwritten. Do Not Edit! -->\n")
	ew.printf("<TITLE>%s</TITLE>\n", html.EscapeString(w.title))
	ew.printf("<H1>Bookmarks</H1>\n")
	ew.printf("<DL><p>\n")
}

func writeFolderChildren(ew *errWriter, f *models.Folder, indent int) {
	ind := strings.Repeat("  ", indent)
	for _, child := range f.Children {
		switch child.Type {
		case models.NodeFolder:
			sub := child.Folder
			name := sub.Name
			if name == "" {
				name = "Untitled"
			}
			ew.printf("%s<DT><H3%s>%s</H3>\n", ind, attrString(sub.Attrs, folderAttrs), html.EscapeString(name))
			ew.printf("%s<DL><p>\n", ind)
			writeFolderChildren(ew, sub, indent+1)
			ew.printf("%s</DL><p>\n", ind)
		case models.NodeBookmark:
			writeBookmark(ew, child.Bookmark, ind)
		}
	}
}

func writeBookmark(ew *errWriter, bm *models.Bookmark, ind string) {
	title := bm.Title
	if title == "" {
		title = bm.Href
	}
	if title == "" {
		title = "Untitled"
	}
	// HREF is always emitted, even when empty.
	ew.printf("%s<DT><A HREF=\"%s\"%s>%s</A>\n",
		ind, html.EscapeString(bm.Href), attrString(bm.Attrs, bookmarkAttrs), html.EscapeString(title))
}

// attrString renders the recognized subset of attrs, uppercase names,
// with a leading space when non-empty.
func attrString(attrs models.Attrs, recognized []string) string {
	var b strings.Builder
	for _, key := range recognized {
		if v, ok := attrs.Get(key); ok {
			fmt.Fprintf(&b, " %s=\"%s\"", strings.ToUpper(key), html.EscapeString(v))
		}
	}
	return b.String()
}

// errWriter latches the first write error so serialization code stays
// free of per-line error checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
