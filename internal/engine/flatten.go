package engine

import (
	"bmtidy/internal/models"
	"bmtidy/internal/normalize"
)

// unsortedKey is the reserved bucket key for bookmarks that belong to
// no named folder: direct children of the root and folders whose name
// normalizes to the empty string.
const unsortedKey = "__unsorted__"

// Bucket merges the direct bookmarks of every folder in the tree that
// shares one normalized name. Display name and heading attributes come
// from the first folder discovered under that name.
type Bucket struct {
	DisplayName string
	Attrs       models.Attrs
	Bookmarks   []*models.Bookmark
}

// BucketSet holds buckets in discovery order. Go maps are unordered,
// and emission order must follow first discovery, so the order is kept
// in an explicit key slice.
type BucketSet struct {
	order   []string
	buckets map[string]*Bucket
}

// Flatten walks the whole tree and groups every folder's direct
// bookmarks into buckets keyed by normalized folder name. Subfolders
// are not inlined into their parents: each folder is its own walk step
// and feeds its own bucket. unsortedName is the display name of the
// reserved catch-all bucket, which is always discovered first.
func Flatten(root *models.Folder, unsortedName string) *BucketSet {
	set := &BucketSet{buckets: make(map[string]*Bucket)}
	set.bucket(unsortedKey, unsortedName, models.Attrs{})

	var walk func(f *models.Folder, isRoot bool)
	walk = func(f *models.Folder, isRoot bool) {
		var b *Bucket
		if isRoot {
			b = set.bucket(unsortedKey, unsortedName, models.Attrs{})
		} else {
			key := normalize.FolderName(f.Name)
			if key == "" {
				key = unsortedKey
			}
			name := f.Name
			if name == "" {
				name = unsortedName
			}
			b = set.bucket(key, name, f.Attrs)
		}
		for _, child := range f.Children {
			if child.Type == models.NodeBookmark {
				b.Bookmarks = append(b.Bookmarks, child.Bookmark)
			}
		}
		for _, child := range f.Children {
			if child.Type == models.NodeFolder {
				walk(child.Folder, false)
			}
		}
	}
	walk(root, true)
	return set
}

// bucket registers or merges a bucket for key. The first discovery
// fixes the display name; heading attributes stick on the first
// non-empty set seen.
func (s *BucketSet) bucket(key, displayName string, attrs models.Attrs) *Bucket {
	b, ok := s.buckets[key]
	if !ok {
		b = &Bucket{DisplayName: displayName, Attrs: attrs.Clone()}
		s.buckets[key] = b
		s.order = append(s.order, key)
		return b
	}
	if len(b.Attrs) == 0 && len(attrs) > 0 {
		b.Attrs = attrs.Clone()
	}
	return b
}

// Dedupe removes every bookmark whose normalized URL was already seen
// in any bucket, walking buckets in discovery order and bookmarks in
// append order. The survivor set is therefore fixed by document order,
// not by folder.
func (s *BucketSet) Dedupe(seen Seen) Stats {
	var stats Stats
	for _, key := range s.order {
		b := s.buckets[key]
		var kept []*models.Bookmark
		for _, bm := range b.Bookmarks {
			k := normalize.URL(bm.Href)
			if k != "" && !seen.Has(k) {
				seen.Add(k)
				kept = append(kept, bm)
				stats.URLsKept++
			} else {
				stats.URLsRemoved++
			}
		}
		b.Bookmarks = kept
		if len(kept) > 0 {
			stats.FoldersKept++
		}
	}
	return stats
}

// Buckets returns the non-empty buckets in discovery order.
func (s *BucketSet) Buckets() []*Bucket {
	out := make([]*Bucket, 0, len(s.order))
	for _, key := range s.order {
		if b := s.buckets[key]; len(b.Bookmarks) > 0 {
			out = append(out, b)
		}
	}
	return out
}
