package engine

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry caches engines by extension. An extension is loaded from the
// Provider at most once; later lookups share the cached Engine.
// Failed loads are not cached. Safe for concurrent use.
type Registry struct {
	provider Provider
	mu       sync.RWMutex
	engines  map[string]Engine
	sf       singleflight.Group
}

// NewRegistry creates a Registry backed by provider. A nil provider makes
// every miss fail with ErrEngineNotFound.
func NewRegistry(provider Provider) *Registry {
	if provider == nil {
		provider = StaticProvider(nil)
	}
	return &Registry{
		provider: provider,
		engines:  make(map[string]Engine),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide Registry over Builtin.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(Builtin())
	})
	return defaultRegistry
}

// Get returns the engine for ext (with or without the leading dot), loading it on first use.
func (r *Registry) Get(ext string) (Engine, error) {
	key := NormalizeExt(ext)
	if key == "" {
		return nil, fmt.Errorf("%w: empty extension", ErrEngineNotFound)
	}
	r.mu.RLock()
	e, ok := r.engines[key]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}
	v, err, _ := r.sf.Do(key, func() (any, error) {
		r.mu.RLock()
		e, ok := r.engines[key]
		r.mu.RUnlock()
		if ok {
			return e, nil
		}
		e, err := r.provider.Load(key[1:])
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, fmt.Errorf("%w: %q", ErrEngineNotFound, key[1:])
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		if cur, ok := r.engines[key]; ok {
			return cur, nil
		}
		r.engines[key] = e
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Engine), nil
}

// Set registers e for ext, replacing any cached engine.
func (r *Registry) Set(ext string, e Engine) {
	key := NormalizeExt(ext)
	if key == "" || e == nil {
		return
	}
	r.mu.Lock()
	r.engines[key] = e
	r.mu.Unlock()
}

// Extensions returns the cached extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.engines))
}
