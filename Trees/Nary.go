package Trees

// NaryNode is a cell in an ordered n-ary ownership tree: it holds a value
// and owns any number of children in insertion order. The first and last
// positions play the roles Node's left and right play for Free; the last
// position is the cheap one to detach from. The zero value is a childless
// node holding the zero value of T.
type NaryNode[T any] struct {
	V T
	c []*NaryNode[T]
}

// NewNaryNode returns a childless node holding v.
func NewNaryNode[T any](v T) *NaryNode[T] {
	return &NaryNode[T]{V: v}
}

// Append gives u ownership of child as its new last child. The caller must
// not retain its own reference to child afterwards and must only attach
// roots of disjoint trees.
func (u *NaryNode[T]) Append(child *NaryNode[T]) {
	u.c = append(u.c, child)
}

// Len returns the number of children u owns.
func (u *NaryNode[T]) Len() int {
	return len(u.c)
}

// Child returns the i-th child in insertion order without detaching it.
func (u *NaryNode[T]) Child(i int) *NaryNode[T] {
	return u.c[i]
}

// takeLast detaches and returns the last child, nil if there is none.
func (u *NaryNode[T]) takeLast() *NaryNode[T] {
	n := len(u.c)
	if n == 0 {
		return nil
	}
	c := u.c[n-1]
	u.c[n-1] = nil
	u.c = u.c[:n-1]
	return c
}

// FreeNary releases every node of the tree rooted at u, calling drop once
// with each released value. The n-ary analogue of Free: the walk detaches
// the last child; a detached child with fewer than two children of its own
// is released after splicing its children onto the end of the walk node's
// sequence, and a bushier one instead trades places with the walk node in a
// single rotation, reusing the detached shell to sink the walk node's prior
// value and remaining children one level down (prepended under the new
// first child). No recursion; the only growth is the walk node's own child
// sequence, which splicing extends by at most one slot at a time. Carries
// the same observed-linear caveat as Free.
// Time: O(n) observed; Space: O(1)
func FreeNary[T any](u *NaryNode[T], drop func(T)) {
	if u == nil {
		return
	}
	if drop == nil {
		drop = func(T) {}
	}
	for cur := u; ; {
		last := cur.takeLast()
		if last == nil {
			drop(cur.V)
			return
		}
		if len(cur.c) == 0 {
			drop(cur.V)
			cur = last
		} else if len(last.c) < 2 {
			cur.c = append(cur.c, last.c...)
			last.c = nil
			drop(last.V)
		} else {
			cur.V, last.V = last.V, cur.V
			cur.c, last.c = last.c, cur.c
			f := cur.c[0]
			f.c = append(f.c, nil)
			copy(f.c[1:], f.c)
			f.c[0] = last
		}
	}
}
