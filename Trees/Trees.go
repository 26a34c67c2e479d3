// Package Trees provides teardown routines for owner-linked trees whose
// shape carries no balance guarantee. Destroying such a tree by letting the
// release of each node cascade into its children spends one native stack
// frame per level, so a degenerate (near linear) tree of depth n needs
// stack proportional to n. Every Free* variant here bounds that cost:
//
//	FreeRecursive  the cascading baseline, O(depth) stack. Safe only for
//	               shapes with a known logarithmic depth bound.
//	FreeWorklist   explicit LIFO worklist, O(1) stack, O(frontier) heap.
//	FreeGuided     recursion only into the provably lower child of an
//	               HNode, O(log n) stack, no auxiliary heap.
//	Free           rotation based, O(1) stack, O(1) auxiliary memory, no
//	               stored metadata.
//	FreeNary       Free generalized to ordered n-ary nodes.
//
// All variants take a drop func(T) called exactly once with each released
// value; nil drop only severs links. A destructor consumes the root: after
// it returns, no node of the tree is reachable from any other, and no node
// has been read or written after its own drop ran. Release order is only
// specified where a variant's doc says so.
package Trees
