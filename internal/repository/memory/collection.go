package memory

import (
	"github.com/pkg/errors"

	"fleetrent-backend/internal/domain"
)

// collection is an ordered, key-addressed backing store. Insertion
// order is preserved for iteration; replacing an entity keeps its
// original position. It is not synchronized: each repository guards
// its collection and the snapshot write with a single mutex so that a
// mutation and its persistence form one critical section.
type collection[T any] struct {
	key   func(*T) string
	items map[string]*T
	order []string
}

func newCollection[T any](key func(*T) string) *collection[T] {
	return &collection[T]{
		key:   key,
		items: make(map[string]*T),
	}
}

// put inserts the entity, or atomically replaces the prior entity with
// the same key.
func (c *collection[T]) put(v *T) {
	k := c.key(v)
	if _, exists := c.items[k]; !exists {
		c.order = append(c.order, k)
	}
	c.items[k] = v
}

func (c *collection[T]) get(k string) (*T, bool) {
	v, ok := c.items[k]
	return v, ok
}

func (c *collection[T]) all() []*T {
	out := make([]*T, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.items[k])
	}
	return out
}

func (c *collection[T]) filter(pred func(*T) bool) []*T {
	out := []*T{}
	for _, k := range c.order {
		if pred(c.items[k]) {
			out = append(out, c.items[k])
		}
	}
	return out
}

// paginate applies filter -> skip(page*size) -> take(size) over the
// insertion-ordered sequence. A nil pred selects everything. Negative
// page or non-positive size is a caller error; a page past the end is
// an empty result.
func (c *collection[T]) paginate(page, size int, pred func(*T) bool) ([]*T, error) {
	if page < 0 {
		return nil, errors.Wrapf(domain.ErrInvalidArgument, "page index %d must not be negative", page)
	}
	if size <= 0 {
		return nil, errors.Wrapf(domain.ErrInvalidArgument, "page size %d must be positive", size)
	}

	matched := c.all()
	if pred != nil {
		matched = c.filter(pred)
	}

	start := page * size
	if start >= len(matched) {
		return []*T{}, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (c *collection[T]) count(pred func(*T) bool) int {
	if pred == nil {
		return len(c.items)
	}
	n := 0
	for _, v := range c.items {
		if pred(v) {
			n++
		}
	}
	return n
}

func (c *collection[T]) remove(k string) bool {
	if _, ok := c.items[k]; !ok {
		return false
	}
	delete(c.items, k)
	for i, existing := range c.order {
		if existing == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// replaceAll swaps the whole collection for the loaded snapshot.
func (c *collection[T]) replaceAll(items []*T) {
	c.items = make(map[string]*T, len(items))
	c.order = c.order[:0]
	for _, v := range items {
		c.put(v)
	}
}
