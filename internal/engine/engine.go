// Package engine implements the two bookmark transforms: structure
// preserving dedupe-and-prune and flatten-and-merge. Both are pure with
// respect to the input tree and thread a single global seen-set so that
// the first occurrence of a URL in document order wins across the whole
// file, regardless of which folder it lives in.
package engine

// Seen tracks the normalized URLs already kept during one run.
type Seen map[string]struct{}

// NewSeen creates an empty seen-set.
func NewSeen() Seen {
	return make(Seen)
}

// Has reports whether key was already kept.
func (s Seen) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add marks key as kept.
func (s Seen) Add(key string) {
	s[key] = struct{}{}
}

// Stats accumulates the counters reported after a run.
type Stats struct {
	URLsKept      int
	URLsRemoved   int
	FoldersPruned int // dedupe mode: folders dropped because they ended empty
	FoldersKept   int // flatten mode: buckets with at least one survivor
}
