// Package arr provides the slice-level counterparts of package enumerable.
//
// Every helper takes a plain []T and, where it produces a sequence, returns a
// freshly allocated slice. The input is never modified. Because a slice
// already offers random access, no helper copies its input just to index
// into it:
//
//	last, _ := arr.ElementAt([]int{1, 2, 3}, -1, enumerable.IndexCyclic) // → 3
//	arr.RotateLeft([]int{1, 2, 3, 4, 5}, 2)                             // → [3 4 5 1 2]
//	arr.Without([]string{"a", "b", "a"}, "a")                           // → [b]
//
// # Nil slices
//
// Unlike an absent iter.Seq, a nil slice is an ordinary empty slice in Go,
// so no helper here rejects it. Numeric arguments are still validated and
// failures wrap the enumerable sentinels: [enumerable.ErrInvalidArgument],
// [enumerable.ErrEmptySequence] and [enumerable.ErrIndexOutOfRange].
package arr
