package domain

import "github.com/cespare/xxhash/v2"

// SeenSet is a membership set over byte strings with insert-on-miss
// semantics: the first lookup of a value records it and reports false, every
// later lookup reports true. Entries are never removed.
//
// The hash is only a bucket selector; chain entries are compared by full byte
// content so a hash collision can never produce a false "seen".
//
// SeenSet is not safe for concurrent use. Each pipeline run owns its own
// instances.
type SeenSet struct {
	buckets map[uint64][]string
	size    int
}

// NewSeenSet creates an empty SeenSet.
func NewSeenSet() *SeenSet {
	return &SeenSet{buckets: make(map[uint64][]string)}
}

// Seen reports whether b was looked up before, inserting an owned copy on a
// miss. The caller may reuse or mutate b after the call.
func (s *SeenSet) Seen(b []byte) bool {
	h := xxhash.Sum64(b)
	for _, e := range s.buckets[h] {
		if e == string(b) {
			return true
		}
	}
	s.buckets[h] = append(s.buckets[h], string(b))
	s.size++
	return false
}

// Len returns the number of distinct entries recorded so far.
func (s *SeenSet) Len() int {
	return s.size
}
