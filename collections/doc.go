// Package collections provides a fluent, generic Collection type on top of
// packages arr and enumerable.
//
// # Overview
//
// [Collection][T] wraps a slice of T and exposes the enumerable operations
// as chainable methods:
//
//	c := collections.New(1, 2, 3, 4, 5)
//
//	c.RotateLeft(1).All()                   // → [2 3 4 5 1]
//	c.ElementAt(-1, enumerable.IndexCyclic) // → 5
//	c.CountsMin(-1)                         // → true (negative minimums are allowed)
//
// # Immutability
//
// All reordering and filtering methods return a *new* Collection, leaving
// the original unchanged.
//
// # Package-level functions
//
// Go methods cannot introduce type parameters, so operations that need one
// are package-level functions: [Without], [IndexOf], [MinBy], [MaxBy] and
// [WithIndex].
//
// # Sequences
//
// [Collection.Values] returns an iter.Seq, and [Collect] builds a
// Collection from one, so any function in package enumerable can be used
// in between.
package collections
