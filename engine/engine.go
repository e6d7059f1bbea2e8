package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine operations.
var (
	ErrEngineNotFound = errors.New("engine: no engine registered for extension")
	ErrRender         = errors.New("engine: rendering failed")
)

// Engine renders the template file at path with data.
type Engine interface {
	Render(ctx context.Context, path string, data any) ([]byte, error)
}

// Func adapts a plain function to Engine.
type Func func(ctx context.Context, path string, data any) ([]byte, error)

// Render implements Engine.
func (f Func) Render(ctx context.Context, path string, data any) ([]byte, error) {
	return f(ctx, path, data)
}

// Provider obtains an Engine for an extension given without the leading dot (e.g. "tmpl").
type Provider interface {
	Load(ext string) (Engine, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ext string) (Engine, error)

// Load implements Provider.
func (f ProviderFunc) Load(ext string) (Engine, error) { return f(ext) }

// StaticProvider serves engines from a fixed map keyed by extension without the dot.
type StaticProvider map[string]Engine

// Load implements Provider.
func (s StaticProvider) Load(ext string) (Engine, error) {
	if e, ok := s[ext]; ok && e != nil {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrEngineNotFound, ext)
}

// NormalizeExt returns ext with exactly one leading dot. Empty stays empty.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	return "." + strings.TrimPrefix(ext, ".")
}
