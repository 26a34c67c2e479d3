package Trees

import (
	"golang.org/x/exp/constraints"
)

// HNode is a Node that additionally carries the height of the subtree
// rooted at it: 0 for a leaf, otherwise 1+max(child heights). The height
// exists solely to guide FreeGuided and is kept consistent by every attach
// and take on the node itself; because nodes hold no parent link, trees
// must be assembled bottom up (attach a subtree only while its parent is
// still a root) for heights above the mutation to stay correct. S is the
// unsigned type storing heights, so the additional memory cost is
// size(S)*n; S only needs to hold the tree's depth, not its size.
type HNode[T any, S constraints.Unsigned] struct {
	V    T
	l, r *HNode[T, S]
	h    S
}

// NewHNode returns a leaf holding v, of height 0.
func NewHNode[T any, S constraints.Unsigned](v T) *HNode[T, S] {
	return &HNode[T, S]{V: v}
}

// Height of the subtree rooted at u. 0 for a leaf.
// Time: O(1); Space: O(1)
func (u *HNode[T, S]) Height() S {
	return u.h
}

// fix recomputes u's height from its children.
func (u *HNode[T, S]) fix() {
	var h S
	if u.l != nil {
		h = u.l.h + 1
	}
	if u.r != nil && u.r.h+1 > h {
		h = u.r.h + 1
	}
	u.h = h
}

// AttachLeft gives u ownership of c as its left child and updates u's
// height. Returning true if successful, false if the slot is occupied.
func (u *HNode[T, S]) AttachLeft(c *HNode[T, S]) bool {
	if u.l != nil {
		return false
	}
	u.l = c
	u.fix()
	return true
}

// AttachRight gives u ownership of c as its right child and updates u's
// height. Returning true if successful, false if the slot is occupied.
func (u *HNode[T, S]) AttachRight(c *HNode[T, S]) bool {
	if u.r != nil {
		return false
	}
	u.r = c
	u.fix()
	return true
}

// TakeLeft detaches and returns the left child, nil if there is none, and
// updates u's height. Returning the child and emptying the slot happen as
// one step.
func (u *HNode[T, S]) TakeLeft() *HNode[T, S] {
	c := u.l
	u.l = nil
	u.fix()
	return c
}

// TakeRight detaches and returns the right child, nil if there is none, and
// updates u's height.
func (u *HNode[T, S]) TakeRight() *HNode[T, S] {
	c := u.r
	u.r = nil
	u.fix()
	return c
}

// Left returns the left child without detaching it.
func (u *HNode[T, S]) Left() *HNode[T, S] {
	return u.l
}

// Right returns the right child without detaching it.
func (u *HNode[T, S]) Right() *HNode[T, S] {
	return u.r
}

// FreeGuided releases every node of the tree rooted at u, calling drop once
// with each released value. The walk stays iterative along one-child nodes
// and, at a two-child node, keeps walking the higher side while recursing
// into the lower one. A nested call therefore enters a subtree strictly
// lower than the current one and leaves behind a disjoint sibling at least
// as high, which bounds native recursion by sqrt(2n) for every shape and by
// log2(n)+1 whenever sibling sizes are within a constant factor of each
// other (balanced trees; a chain recurses zero times). No auxiliary heap
// memory. Heights must be consistent on entry, which holds whenever the
// tree was built through HNode's attach/take ops at root level.
// Time: O(n); Space: O(log n) stack typical, O(sqrt n) worst case
func FreeGuided[T any, S constraints.Unsigned](u *HNode[T, S], drop func(T)) {
	if drop == nil {
		drop = func(T) {}
	}
	freeGuided(u, drop)
}

func freeGuided[T any, S constraints.Unsigned](cur *HNode[T, S], drop func(T)) {
	for cur != nil {
		l, r := cur.l, cur.r
		cur.l, cur.r = nil, nil
		drop(cur.V)
		if l == nil {
			cur = r
		} else if r == nil {
			cur = l
		} else if l.h <= r.h {
			freeGuided(l, drop)
			cur = r
		} else {
			freeGuided(r, drop)
			cur = l
		}
	}
}
