package engine

import (
	"bmtidy/internal/models"
	"bmtidy/internal/normalize"
)

// Prune returns a copy of root with duplicate bookmarks removed and
// folders that end up empty dropped. Traversal is depth-first in
// document order; a bookmark survives if its normalized URL is
// non-empty and not yet in seen. The root itself is never pruned, even
// when it ends up empty.
func Prune(root *models.Folder, seen Seen) (*models.Folder, Stats) {
	var stats Stats
	out := pruneFolder(root, seen, &stats)
	return out, stats
}

func pruneFolder(f *models.Folder, seen Seen, stats *Stats) *models.Folder {
	out := &models.Folder{Name: f.Name, Attrs: f.Attrs.Clone()}
	for _, child := range f.Children {
		switch child.Type {
		case models.NodeBookmark:
			key := normalize.URL(child.Bookmark.Href)
			if key != "" && !seen.Has(key) {
				seen.Add(key)
				out.Children = append(out.Children, child)
				stats.URLsKept++
			} else {
				stats.URLsRemoved++
			}
		case models.NodeFolder:
			sub := pruneFolder(child.Folder, seen, stats)
			if len(sub.Children) > 0 {
				out.Children = append(out.Children, models.FolderNode(sub))
			} else {
				// Emptied folders vanish; they do not count toward the
				// URL counters.
				stats.FoldersPruned++
			}
		}
	}
	return out
}
