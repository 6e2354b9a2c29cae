// Package dedupe records which keys have already been seen.
package dedupe

import "sort"

// Deduper records keys and reports repeats.
type Deduper interface {
	// SeenAndRecord reports whether key was seen before and records it if not.
	SeenAndRecord(key string) bool

	// Keys returns the recorded keys in first-seen order.
	Keys() []string

	// Sorted returns the recorded keys in ascending byte order.
	Sorted() []string

	Size() int
}

// inMemoryDeduper keeps a map for membership and a slice for order.
// It is not safe for concurrent use.
type inMemoryDeduper struct {
	seen  map[string]struct{}
	order []string
}

// NewInMemoryDeduper creates an empty deduper.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	return d
}

// SeenAndRecord reports whether key was already recorded.
func (d *inMemoryDeduper) SeenAndRecord(key string) bool {
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	d.order = append(d.order, key)
	return false
}

func (d *inMemoryDeduper) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *inMemoryDeduper) Sorted() []string {
	out := d.Keys()
	sort.Strings(out)
	return out
}

// Size returns the number of distinct keys recorded.
func (d *inMemoryDeduper) Size() int {
	return len(d.order)
}

// Distinct returns the sorted unique values of in.
func Distinct(in []string) []string {
	d := NewInMemoryDeduper(WithCapacity(len(in)))
	for _, v := range in {
		d.SeenAndRecord(v)
	}
	return d.Sorted()
}
