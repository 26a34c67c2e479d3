package Trees

// Node is a cell in a binary ownership tree: it holds a value and owns up
// to two children. Exactly one owner exists per node, either a parent slot
// or the external root handle. The zero value is a leaf holding the zero
// value of T.
type Node[T any] struct {
	V    T
	l, r *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{V: v}
}

// AttachLeft gives u ownership of c as its left child. Returning true if
// successful, false if the slot is already occupied. The caller must not
// retain its own reference to c afterwards and must only attach roots of
// disjoint trees, keeping the structure acyclic and single-owner.
func (u *Node[T]) AttachLeft(c *Node[T]) bool {
	if u.l != nil {
		return false
	}
	u.l = c
	return true
}

// AttachRight gives u ownership of c as its right child. Returning true if
// successful, false if the slot is already occupied.
func (u *Node[T]) AttachRight(c *Node[T]) bool {
	if u.r != nil {
		return false
	}
	u.r = c
	return true
}

// TakeLeft detaches and returns the left child, nil if there is none.
// Returning the child and emptying the slot happen as one step, so two
// owners of the child can never coexist.
func (u *Node[T]) TakeLeft() *Node[T] {
	c := u.l
	u.l = nil
	return c
}

// TakeRight detaches and returns the right child, nil if there is none.
func (u *Node[T]) TakeRight() *Node[T] {
	c := u.r
	u.r = nil
	return c
}

// Left returns the left child without detaching it.
func (u *Node[T]) Left() *Node[T] {
	return u.l
}

// Right returns the right child without detaching it.
func (u *Node[T]) Right() *Node[T] {
	return u.r
}
