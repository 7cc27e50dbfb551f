package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/arbelos/arbelos/sorting"
)

func benchSort(b *testing.B, fn func([]int), n int) {
	r := rand.New(rand.NewSource(1))
	in := make([]int, n)
	for i := range in {
		in[i] = r.Int()
	}
	buf := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, in)
		fn(buf)
	}
}

func BenchmarkShell_10k(b *testing.B)     { benchSort(b, sorting.Shell[int], 10_000) }
func BenchmarkMerge_10k(b *testing.B)     { benchSort(b, sorting.Merge[int], 10_000) }
func BenchmarkMergeBU_10k(b *testing.B)   { benchSort(b, sorting.MergeBU[int], 10_000) }
func BenchmarkQuick_10k(b *testing.B)     { benchSort(b, sorting.Quick[int], 10_000) }
func BenchmarkQuick3Way_10k(b *testing.B) { benchSort(b, sorting.Quick3Way[int], 10_000) }
