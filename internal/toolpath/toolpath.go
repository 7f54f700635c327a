// Package toolpath resolves external dialog tools (zenity, kdialog,
// osascript) on PATH and caches the answer, found or not, for a while.
package toolpath

import (
	"os/exec"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Default expiration times
const (
	DefaultExpiration = 5 * time.Minute
	CleanupInterval   = 1 * time.Minute
)

// Cached lookup prefixes
const (
	prefixFound   = "found:"
	prefixMissing = "missing:"
)

// Resolver wraps go-cache around exec.LookPath.
type Resolver struct {
	c        *cache.Cache
	lookPath func(string) (string, error)
}

// New creates a resolver whose entries expire after ttl. A ttl <= 0 uses
// DefaultExpiration.
func New(ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &Resolver{
		c:        cache.New(ttl, CleanupInterval),
		lookPath: exec.LookPath,
	}
}

// NewWithLookup creates a resolver over a custom lookup function.
func NewWithLookup(ttl time.Duration, lookPath func(string) (string, error)) *Resolver {
	r := New(ttl)
	r.lookPath = lookPath
	return r
}

// Find returns the absolute path of tool and whether it exists.
func (r *Resolver) Find(tool string) (string, bool) {
	if v, ok := r.c.Get(prefixFound + tool); ok {
		if p, ok := v.(string); ok {
			return p, true
		}
	}
	if _, ok := r.c.Get(prefixMissing + tool); ok {
		return "", false
	}

	p, err := r.lookPath(tool)
	if err != nil || p == "" {
		r.c.SetDefault(prefixMissing+tool, true)
		return "", false
	}
	r.c.SetDefault(prefixFound+tool, p)
	return p, true
}

// FirstOf returns the first tool in names that exists.
func (r *Resolver) FirstOf(names ...string) (name, path string, ok bool) {
	for _, n := range names {
		if p, found := r.Find(n); found {
			return n, p, true
		}
	}
	return "", "", false
}

// Forget drops the cached answer for tool.
func (r *Resolver) Forget(tool string) {
	r.c.Delete(prefixFound + tool)
	r.c.Delete(prefixMissing + tool)
}

// Clear removes all cached answers.
func (r *Resolver) Clear() {
	r.c.Flush()
}

// ItemCount returns the number of cached answers.
func (r *Resolver) ItemCount() int {
	return r.c.ItemCount()
}

var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
)

// Default returns the process-wide resolver.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = New(DefaultExpiration)
	})
	return defaultResolver
}
