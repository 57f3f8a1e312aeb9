// Package expand tracks which single item of a collection is expanded.
package expand

// Controller holds at most one expanded id. The zero value has nothing
// expanded. Whether an id refers to a real item is the caller's concern.
type Controller[K comparable] struct {
	id  K
	set bool
}

// Toggle collapses id if it is the expanded item, otherwise expands it and
// implicitly collapses whatever was expanded before.
func (c *Controller[K]) Toggle(id K) {
	if c.set && c.id == id {
		var zero K
		c.id, c.set = zero, false
		return
	}
	c.id, c.set = id, true
}

// Expanded returns the expanded id, if any.
func (c Controller[K]) Expanded() (K, bool) {
	return c.id, c.set
}

// IsExpanded reports whether id is the expanded item.
func (c Controller[K]) IsExpanded(id K) bool {
	return c.set && c.id == id
}
