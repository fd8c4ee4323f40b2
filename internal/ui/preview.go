// Package ui shows the result of a transform in a terminal UI before
// anything is written to disk.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bmtidy/internal/engine"
	"bmtidy/internal/models"
)

// Preview is a read-only browser over a transform result. The user
// either confirms writing the output file or aborts.
type Preview struct {
	app      *tview.Application
	tree     *tview.TreeView
	detail   *tview.TextView
	status   *tview.TextView
	accepted bool
}

// NewPreview creates a new preview instance
func NewPreview() *Preview {
	return &Preview{
		app:    tview.NewApplication(),
		tree:   tview.NewTreeView(),
		detail: tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		status: tview.NewTextView().SetDynamicColors(true),
	}
}

// RunTree previews a deduped folder tree. It returns true if the user
// chose to write the output.
func (p *Preview) RunTree(root *models.Folder, summary string) (bool, error) {
	top := tview.NewTreeNode("Bookmarks").SetColor(tcell.ColorYellow)
	addFolderChildren(top, root)
	return p.run(top, summary)
}

// RunBuckets previews a flattened bucket set.
func (p *Preview) RunBuckets(set *engine.BucketSet, summary string) (bool, error) {
	top := tview.NewTreeNode("Bookmarks").SetColor(tcell.ColorYellow)
	for _, b := range set.Buckets() {
		node := tview.NewTreeNode(fmt.Sprintf("%s (%d)", b.DisplayName, len(b.Bookmarks))).
			SetColor(tcell.ColorGreen)
		for _, bm := range b.Bookmarks {
			node.AddChild(bookmarkNode(bm))
		}
		top.AddChild(node)
	}
	return p.run(top, summary)
}

func addFolderChildren(node *tview.TreeNode, f *models.Folder) {
	for _, child := range f.Children {
		switch child.Type {
		case models.NodeFolder:
			sub := tview.NewTreeNode(child.Folder.Name).SetColor(tcell.ColorGreen)
			addFolderChildren(sub, child.Folder)
			node.AddChild(sub)
		case models.NodeBookmark:
			node.AddChild(bookmarkNode(child.Bookmark))
		}
	}
}

func bookmarkNode(bm *models.Bookmark) *tview.TreeNode {
	title := bm.Title
	if title == "" {
		title = bm.Href
	}
	return tview.NewTreeNode(title).SetReference(bm)
}

func (p *Preview) run(root *tview.TreeNode, summary string) (bool, error) {
	p.tree.SetRoot(root).SetCurrentNode(root)
	p.tree.SetBorder(true).SetTitle("Result")
	p.detail.SetBorder(true).SetTitle("Details")

	p.tree.SetChangedFunc(p.showDetails)
	p.tree.SetSelectedFunc(func(node *tview.TreeNode) {
		node.SetExpanded(!node.IsExpanded())
	})
	p.status.SetText("[::b]w[::r] write file  [::b]q[::r] abort  [::b]Enter[::r] expand/collapse — " + summary)

	cols := tview.NewFlex().
		AddItem(p.tree, 0, 2, true).
		AddItem(p.detail, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(cols, 0, 1, true).
		AddItem(p.status, 1, 0, false)

	p.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'w':
			p.accepted = true
			p.app.Stop()
			return nil
		case 'q':
			p.app.Stop()
			return nil
		}
		return event
	})

	if err := p.app.SetRoot(main, true).Run(); err != nil {
		return false, err
	}
	return p.accepted, nil
}

func (p *Preview) showDetails(node *tview.TreeNode) {
	bm, ok := node.GetReference().(*models.Bookmark)
	if !ok {
		p.detail.SetText("")
		return
	}
	text := fmt.Sprintf("[::b]%s[::-]\n\n%s", tview.Escape(bm.Title), tview.Escape(bm.Href))
	if v, ok := bm.Attrs.Get("add_date"); ok {
		text += fmt.Sprintf("\n\nAdded: %s", tview.Escape(v))
	}
	p.detail.SetText(text)
}
