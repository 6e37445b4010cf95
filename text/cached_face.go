package text

import "github.com/vectorui/bui/internal/cache"

// CacheOption configures CachedFace creation.
type CacheOption func(*cacheConfig)

// cacheConfig holds configuration for CachedFace.
type cacheConfig struct {
	capacityHint int
}

// defaultCacheConfig returns the default cache configuration.
func defaultCacheConfig() cacheConfig {
	return cacheConfig{
		capacityHint: 128, // ASCII plus some headroom
	}
}

// WithCapacityHint preallocates room for n glyphs.
// The cache still grows past n; nothing is ever evicted.
func WithCapacityHint(n int) CacheOption {
	return func(c *cacheConfig) {
		c.capacityHint = n
	}
}

// CacheStats holds glyph cache statistics.
type CacheStats struct {
	// Len is the number of memoized runes, misses included.
	Len int

	// Hits and Misses count Glyph lookups served from and added to the
	// cache.
	Hits   uint64
	Misses uint64
}

// HitRate returns the fraction of lookups served from the cache.
func (s CacheStats) HitRate() float64 {
	return cache.Stats{Len: s.Len, Hits: s.Hits, Misses: s.Misses}.HitRate()
}

// CachedFace memoizes glyph outlines per rune on top of a Face.
//
// The first lookup of a rune resolves its glyph id and extracts its outline;
// every later lookup of that rune, including lookups of runes the face
// cannot resolve, is answered from the cache without calling the face.
//
// CachedFace owns its face and is not safe for concurrent use.
type CachedFace struct {
	face   Face
	glyphs *cache.Memo[rune, *Glyph]
}

// NewCachedFace wraps face in a glyph cache.
func NewCachedFace(face Face, opts ...CacheOption) *CachedFace {
	cfg := defaultCacheConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &CachedFace{
		face:   face,
		glyphs: cache.NewMemo[rune, *Glyph](cfg.capacityHint),
	}
}

// Glyph returns the outline for r. ok is false when the face has no glyph
// for r or the glyph has no outline.
//
// The returned glyph is a copy the caller may modify.
func (c *CachedFace) Glyph(r rune) (*Glyph, bool) {
	g := c.glyphs.GetOrCreate(r, func() *Glyph {
		return c.load(r)
	})
	if g == nil {
		return nil, false
	}
	return g.Clone(), true
}

// load extracts the glyph for r from the face. A nil result is memoized as
// a miss.
func (c *CachedFace) load(r rune) *Glyph {
	slogger().Debug("text: getting glyph id", "rune", string(r))
	gid, ok := c.face.GlyphIndex(r)
	if !ok {
		return nil
	}

	slogger().Debug("text: generating outline", "rune", string(r), "gid", gid)
	var b GlyphOutlineBuilder
	bounds, ok := c.face.Outline(gid, &b)
	if !ok {
		return nil
	}
	return b.Glyph(bounds)
}

// Face returns the underlying font face.
func (c *CachedFace) Face() Face {
	return c.face
}

// Len returns the number of memoized runes.
func (c *CachedFace) Len() int {
	return c.glyphs.Len()
}

// Stats returns cache statistics.
func (c *CachedFace) Stats() CacheStats {
	s := c.glyphs.Stats()
	return CacheStats{
		Len:    s.Len,
		Hits:   s.Hits,
		Misses: s.Misses,
	}
}
