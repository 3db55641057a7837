package treemap

import "golang.org/x/exp/constraints"

// Number covers the payload types Sum can total.
type Number interface {
	constraints.Integer | constraints.Float
}

// Reduce folds combine over every file in the subtree rooted at n,
// passing each file's name alongside its value. Traversal is depth-first
// pre-order: children in insertion order, a subdirectory exhausted before
// the next sibling. Directories themselves contribute nothing.
//
// Folds are package functions rather than methods because the accumulator
// type is independent of the payload type.
func Reduce[V, T any](n *Node[V], seed T, combine func(T, string, V) T) T {
	if value, ok := n.Value(); ok {
		return combine(seed, n.name, value)
	}
	acc := seed
	for _, child := range n.children {
		acc = Reduce(child, acc, combine)
	}
	return acc
}

// ReduceValues is Reduce without the name argument.
func ReduceValues[V, T any](n *Node[V], seed T, combine func(T, V) T) T {
	return Reduce(n, seed, func(acc T, _ string, value V) T {
		return combine(acc, value)
	})
}

// SumValues totals every file value in the subtree rooted at n.
func SumValues[V Number](n *Node[V]) V {
	return ReduceValues(n, V(0), func(acc, value V) V {
		return acc + value
	})
}

// Sum totals every file value in the tree.
func Sum[V Number](t *TreeMap[V]) V {
	return SumValues(t.Root())
}
