// Package enumerable provides stateless helper operations over Go 1.23+
// iterators ([iter.Seq]): bounded counting, indexed access with wraparound
// policies, rotation, uniform random selection and a handful of lookups.
//
// # Sequences
//
// Every function accepts an [iter.Seq][T]. A nil sequence is treated as an
// absent argument and rejected with [ErrInvalidArgument], except by the
// lookup helpers that are documented to report "not found" instead
// ([IsNullOrEmpty], [TryGetFirst], [TryGetLast] and their Func variants).
//
// Single-pass sources are fine. Operations that need random access or more
// than one traversal ([ElementAt], the rotation family, [TryGetLast])
// collect the source into a private snapshot first.
//
//	seq := slices.Values([]int{1, 2, 3, 4, 5})
//
//	last, _ := enumerable.ElementAt(seq, -1, enumerable.IndexCyclic) // → 5
//	left, _ := enumerable.RotateLeft(seq, 1)
//	fmt.Println(slices.Collect(left))                                // → [2 3 4 5 1]
//
// # Laziness
//
// Sequence-returning operations ([Without], [WhereNotNull], [WithIndex],
// [Rotate], [RotateLeft], [RotateRight]) validate their arguments eagerly and
// return a restartable view. No element is produced until the caller ranges
// over the result.
//
// # Randomness
//
// [Random] draws from the process-wide math/rand/v2 generator. Use a
// [Sampler] built from [SamplerOptions] with a Seed for reproducible picks.
//
// # Errors
//
// All failures are reported through the sentinels [ErrInvalidArgument],
// [ErrEmptySequence] and [ErrIndexOutOfRange], wrapped with the name of the
// offending parameter. No operation has side effects before it fails.
package enumerable
