package client

import "sort"

// TagSet is an immutable set of tag labels. The zero value is empty and
// ready to use.
type TagSet struct {
	m map[string]struct{}
}

// NewTagSet builds a set from tags; duplicates collapse.
func NewTagSet(tags ...string) TagSet {
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{m: m}
}

func (s TagSet) Has(tag string) bool {
	_, ok := s.m[tag]
	return ok
}

func (s TagSet) Len() int {
	return len(s.m)
}

// Toggle returns a copy of s with tag added if absent or removed if present.
func (s TagSet) Toggle(tag string) TagSet {
	m := make(map[string]struct{}, len(s.m)+1)
	for t := range s.m {
		m[t] = struct{}{}
	}
	if _, ok := m[tag]; ok {
		delete(m, tag)
	} else {
		m[tag] = struct{}{}
	}
	return TagSet{m: m}
}

// Sorted returns the members in ascending order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same members.
func (s TagSet) Equal(other TagSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for t := range s.m {
		if !other.Has(t) {
			return false
		}
	}
	return true
}
