package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// FreeRecursive releases every node of the tree rooted at u in post-order,
// calling drop once with each released value. Recursive: it spends one
// native frame per tree level, which is exactly the cascading teardown the
// other variants exist to avoid. Only use it when the tree's depth is known
// to be logarithmic in its size; on a degenerate chain the frames grow the
// goroutine stack linearly until the runtime kills the process.
// Time: O(n); Space: O(depth) native stack
func FreeRecursive[T any](u *Node[T], drop func(T)) {
	if drop == nil {
		drop = func(T) {}
	}
	freeRecursive(u, drop)
}

func freeRecursive[T any](u *Node[T], drop func(T)) {
	if u == nil {
		return
	}
	freeRecursive(u.TakeLeft(), drop)
	freeRecursive(u.TakeRight(), drop)
	drop(u.V)
}

// FreeWorklist releases every node of the tree rooted at u, calling drop
// once with each released value. It flattens the recursion into an explicit
// LIFO worklist: each popped node has its children detached onto the list
// before its own release, so every node is visited exactly once. Release
// order is unspecified and must not be relied upon. The worklist grows up
// to the largest simultaneous frontier, O(n) on a complete tree: this
// variant trades a bounded native stack for an unbounded heap surrogate and
// serves as the correctness baseline for the allocation-free ones.
// Time: O(n); Space: O(1) native stack, O(frontier) heap
func FreeWorklist[T any](u *Node[T], drop func(T)) {
	if u == nil {
		return
	}
	if drop == nil {
		drop = func(T) {}
	}
	wl := arraystack.New()
	wl.Push(u)
	for !wl.Empty() {
		v, _ := wl.Pop()
		cur := v.(*Node[T])
		if c := cur.TakeLeft(); c != nil {
			wl.Push(c)
		}
		if c := cur.TakeRight(); c != nil {
			wl.Push(c)
		}
		drop(cur.V)
	}
}

// Free releases every node of the tree rooted at u, calling drop once with
// each released value. It needs no recursion, no worklist and no stored
// metadata: a node with no left child is released and the walk moves to its
// right child; a node with a left child is right-rotated so the left child
// takes its place on the spine, pushing the extra branch one level down
// instead of onto a call stack. Each rotation is O(1) and allocation free,
// and shortens the left spine under the walk by one, so the loop always
// terminates. Step counts measure linear in n on every shape tried,
// degenerate chains and alternating-heavy trees included, but a closed form
// bound hasn't been established; FreeGuided is the variant with a proven
// stack bound.
// Time: O(n) observed; Space: O(1)
func Free[T any](u *Node[T], drop func(T)) {
	if drop == nil {
		drop = func(T) {}
	}
	for cur := u; cur != nil; {
		if cur.l == nil {
			r := cur.TakeRight()
			drop(cur.V)
			cur = r
		} else {
			l := cur.l
			cur.l = l.r
			l.r = cur
			cur = l
		}
	}
}
