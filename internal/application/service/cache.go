package service

import "context"

// Cache keys for the public read path. One key per list endpoint plus the
// profile singleton; mutations invalidate the matching key.
const (
	CacheKeyPortfolio = "cache:portfolio"
	CacheKeyEducation = "cache:education"
	CacheKeySkills    = "cache:skills"
	CacheKeyProfile   = "cache:profile"
)

type ContentCache interface {
	// Get unmarshals the cached value into dest and reports whether the key
	// was present.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}
