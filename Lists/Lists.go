package Lists

// Node is a cell in a singly linked ownership chain. Each cell owns at most
// one successor; releasing a cell releases everything it still owns.
// The zero value is a chain of length 1 holding the zero value of T.
type Node[T any] struct {
	V    T
	next *Node[T]
}

// NewNode returns a chain of length 1 holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{V: v}
}

// Prepend returns a new head owning the old chain. head may be nil.
// Time: O(1); Space: O(1)
func Prepend[T any](head *Node[T], v T) *Node[T] {
	return &Node[T]{v, head}
}

// Next returns the cell owned by u, nil if u is the tail.
func (u *Node[T]) Next() *Node[T] {
	return u.next
}

// Take detaches and returns u's successor, leaving u the tail. Detaching and
// clearing the slot happen as one step so no two owners of the successor can
// coexist.
func (u *Node[T]) Take() *Node[T] {
	c := u.next
	u.next = nil
	return c
}

// Free releases every cell of the chain headed by head, head first, calling
// drop once with each released value. A nil drop only severs the links.
// head may be nil. The chain may be arbitrarily long: no recursion is used,
// each iteration severs exactly one link and leaves the released cell
// unreachable from the rest of the chain.
// Time: O(n); Space: O(1)
func Free[T any](head *Node[T], drop func(T)) {
	if drop == nil {
		drop = func(T) {}
	}
	for cur := head; cur != nil; {
		next := cur.Take()
		drop(cur.V)
		cur = next
	}
}
