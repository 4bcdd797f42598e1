// Package geo resolves free-text country names to standardized ISO 3166-1
// alpha-3 codes for the geography-keyed dataset views. Resolution is an
// external concern by contract: the pipeline only sees the Resolver
// interface, and an unresolved name is excluded from geographic output
// without ever failing a load.
package geo

import (
	"strings"
	"sync"
)

// Resolver maps a free-text country name to a standardized code.
type Resolver interface {
	Resolve(name string) (code string, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (string, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(name string) (string, bool) {
	return f(name)
}

// StaticResolver resolves against a fixed name-to-code table,
// case-insensitively on trimmed input.
type StaticResolver struct {
	codes map[string]string
}

// NewStaticResolver builds a resolver over the given table. Keys are
// normalized once at construction.
func NewStaticResolver(table map[string]string) *StaticResolver {
	codes := make(map[string]string, len(table))
	for name, code := range table {
		codes[normalize(name)] = code
	}
	return &StaticResolver{codes: codes}
}

// Resolve implements Resolver.
func (r *StaticResolver) Resolve(name string) (string, bool) {
	code, ok := r.codes[normalize(name)]
	return code, ok
}

// CachedResolver memoizes another resolver for the duration of a run.
// Lookups are deterministic within a run, so negative results are cached
// too. Safe for concurrent use.
type CachedResolver struct {
	inner Resolver

	mu    sync.RWMutex
	cache map[string]cached
}

type cached struct {
	code string
	ok   bool
}

// NewCachedResolver wraps inner with a per-run memoization layer.
func NewCachedResolver(inner Resolver) *CachedResolver {
	return &CachedResolver{inner: inner, cache: make(map[string]cached)}
}

// Resolve implements Resolver.
func (r *CachedResolver) Resolve(name string) (string, bool) {
	key := normalize(name)

	r.mu.RLock()
	hit, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return hit.code, hit.ok
	}

	code, resolved := r.inner.Resolve(name)
	r.mu.Lock()
	r.cache[key] = cached{code: code, ok: resolved}
	r.mu.Unlock()
	return code, resolved
}

// Len reports how many distinct names have been looked up.
func (r *CachedResolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
