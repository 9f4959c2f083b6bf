package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-enumerable/arr"
	"github.com/hasbyte1/go-enumerable/enumerable"
)

func benchItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func BenchmarkRotateLeft(b *testing.B) {
	items := benchItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.RotateLeft(items, 3_333)
	}
}

func BenchmarkElementAtCyclic(b *testing.B) {
	items := benchItems(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.ElementAt(items, -i, enumerable.IndexCyclic)
	}
}

func BenchmarkRandom(b *testing.B) {
	items := benchItems(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.Random(items)
	}
}
