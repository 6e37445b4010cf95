package cache

import "testing"

func BenchmarkMemoHit(b *testing.B) {
	m := NewMemo[rune, int](128)
	for r := 'a'; r <= 'z'; r++ {
		m.GetOrCreate(r, func() int { return int(r) })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetOrCreate('m', func() int { return 0 })
	}
}

func BenchmarkMemoMiss(b *testing.B) {
	m := NewMemo[int, int](b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.GetOrCreate(i, func() int { return i })
	}
}
