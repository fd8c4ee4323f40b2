package models

import "strings"

// NodeType represents the type of a tree node (bookmark or folder)
type NodeType string

const (
	NodeBookmark NodeType = "bookmark"
	NodeFolder   NodeType = "folder"
)

// Attrs holds the extension attributes of a bookmark or folder heading
// (ADD_DATE, ICON, LAST_MODIFIED and so on). Keys are case-insensitive
// and stored lowercase; values keep their literal form.
type Attrs map[string]string

// Get looks up an attribute by name, case-insensitively.
func (a Attrs) Get(key string) (string, bool) {
	v, ok := a[strings.ToLower(key)]
	return v, ok
}

// Set stores an attribute under its lowercase name.
func (a Attrs) Set(key, value string) {
	a[strings.ToLower(key)] = value
}

// Clone returns an independent copy of the attribute map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Bookmark represents a single bookmark entry
type Bookmark struct {
	Href  string
	Title string
	Attrs Attrs
}

// Folder represents a bookmark folder with its children in document order
type Folder struct {
	Name     string
	Attrs    Attrs
	Children []Node
}

// Node is a tagged variant over Bookmark and Folder so traversal code
// switches on Type instead of doing runtime type inspection.
type Node struct {
	Type     NodeType
	Bookmark *Bookmark
	Folder   *Folder
}

// BookmarkNode wraps a bookmark as a tree node.
func BookmarkNode(b *Bookmark) Node {
	return Node{Type: NodeBookmark, Bookmark: b}
}

// FolderNode wraps a folder as a tree node.
func FolderNode(f *Folder) Node {
	return Node{Type: NodeFolder, Folder: f}
}

// NewRoot returns the designated root folder. The root holds the
// top-level entries of an export; it is never emitted and never pruned.
func NewRoot() *Folder {
	return &Folder{Name: "ROOT", Attrs: Attrs{}}
}
