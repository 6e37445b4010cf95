// Package cache provides the insert-if-absent memo table behind the glyph
// cache.
//
// # Memo[K, V]
//
// A map that computes each value at most once and never evicts. Misses are
// memoized like any other value, typically by choosing a V that can express
// absence:
//
//	m := cache.NewMemo[rune, *Glyph](128)
//	g := m.GetOrCreate('a', func() *Glyph { return load('a') })
//
// # Thread Safety
//
// Memo is owned by a single goroutine. Callers that need concurrency shard
// instances instead of sharing one.
package cache
