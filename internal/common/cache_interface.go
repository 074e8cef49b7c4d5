package common

import "time"

// CacheInterface is the contract both cache backends satisfy. Today its one
// consumer is the advisor tip cache; membership and schedule reads stay
// uncached so status changes are visible on the next login.
type CacheInterface interface {
	// Set stores a value under key for the given lifetime.
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and true, or nil and false on a miss.
	Get(key string) (interface{}, bool)

	// Delete drops the key. Missing keys are not an error.
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its
	// result for the given lifetime.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases backend connections. A no-op for the in-memory cache.
	Close() error
}
