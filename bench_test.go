package segtree

import (
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, n int) *Tree[int] {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(1000)
	}
	tree, err := New[int](plus{}, values...)
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	return tree
}

func BenchmarkBuild(b *testing.B) {
	values := make([]int, 1<<14)
	for i := range values {
		values[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New[int](plus{}, values...)
	}
}

func BenchmarkUpdate(b *testing.B) {
	tree := benchTree(b, 1<<14)
	n := tree.Len()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Update(i%n, i)
	}
}

func BenchmarkQuery(b *testing.B) {
	tree := benchTree(b, 1<<14)
	n := tree.Len()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := i % (n / 2)
		_, _ = tree.Query(lo, lo+n/2)
	}
}
