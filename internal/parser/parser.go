package parser

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"bmtidy/internal/models"
)

// Parser builds a bookmark tree from a Netscape bookmark HTML export.
//
// It consumes the tokenizer's start/end/text events directly instead of
// a parsed DOM: the format's structure lives in the event order
// (<DT><H3> heading, then <DL> opening the folder's child list), and
// real exports are frequently too malformed for a strict tree parse.
type Parser struct{}

// New creates a new parser
func New() *Parser {
	return &Parser{}
}

type pendingFolder struct {
	name  string
	attrs models.Attrs
}

// Parse reads an export and returns the root folder. Construction is
// best effort: unexpected nesting, stray tags and missing attributes
// are tolerated silently. Only a reader failure is returned as an
// error.
func (p *Parser) Parse(r io.Reader) (*models.Folder, error) {
	root := models.NewRoot()
	stack := []*models.Folder{root}

	var (
		pending *pendingFolder
		collect string // "h3" or "a" while buffering text, "" otherwise
		attrs   models.Attrs
		text    strings.Builder
	)

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return root, nil

		case html.StartTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3", "a":
				collect = tok.Data
				attrs = tokenAttrs(tok)
				text.Reset()
			case "dl":
				// A child list opens: a pending heading becomes a real
				// folder now, not at heading time. A heading with no
				// following list never materializes.
				if pending != nil {
					folder := &models.Folder{Name: pending.name, Attrs: pending.attrs}
					top := stack[len(stack)-1]
					top.Children = append(top.Children, models.FolderNode(folder))
					stack = append(stack, folder)
					pending = nil
				}
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3":
				if collect == "h3" {
					pending = &pendingFolder{name: strings.TrimSpace(text.String()), attrs: attrs}
					collect, attrs = "", nil
					text.Reset()
				}
			case "a":
				if collect == "a" {
					href, _ := attrs.Get("href")
					bm := &models.Bookmark{
						Href:  href,
						Title: strings.TrimSpace(text.String()),
						Attrs: attrs,
					}
					top := stack[len(stack)-1]
					top.Children = append(top.Children, models.BookmarkNode(bm))
					collect, attrs = "", nil
					text.Reset()
				}
			case "dl":
				// Never pop the root, however unbalanced the input is.
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			}

		case html.TextToken:
			// Text matters only inside a heading or an anchor.
			if collect != "" {
				text.WriteString(z.Token().Data)
			}
		}
	}
}

// tokenAttrs copies a token's attributes into a case-insensitive map.
// The tokenizer already unescapes entities in attribute values.
func tokenAttrs(tok html.Token) models.Attrs {
	attrs := make(models.Attrs, len(tok.Attr))
	for _, a := range tok.Attr {
		attrs.Set(a.Key, a.Val)
	}
	return attrs
}
