package viewfind

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/skosovsky/viewfind/engine"
	"github.com/skosovsky/viewfind/prober"
)

// View is a named template bound to an extension and engine. Its file path is
// resolved once by ResolveMain and never changes afterwards.
// Safe for concurrent use.
type View struct {
	name   string
	ext    string
	file   string // name with ext appended when it lacked it
	roots  []string
	engine engine.Engine
	prober *prober.Prober
	logger *slog.Logger

	mu   sync.Mutex
	path string
}

// New creates a View for name. The extension comes from name, or from the
// default engine when name has none. The engine for that extension is loaded
// from the registry now; any failure is returned as *ConfigError.
func New(name string, opts ...Option) (*View, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, &ConfigError{View: name, Err: o.err}
	}
	if len(o.roots) == 0 {
		return nil, &ConfigError{View: name, Err: ErrNoRoots}
	}
	ext := extName(name)
	if ext == "" {
		if o.defaultEngine == "" {
			return nil, &ConfigError{View: name, Err: ErrNoEngine}
		}
		ext = engine.NormalizeExt(o.defaultEngine)
	}
	file := name
	if extName(name) != ext {
		file = name + ext
	}
	eng, err := o.engines.Get(ext)
	if err != nil {
		return nil, &ConfigError{View: name, Err: err}
	}
	return &View{
		name:   name,
		ext:    ext,
		file:   file,
		roots:  slices.Clone(o.roots),
		engine: eng,
		prober: o.prober,
		logger: o.logger,
	}, nil
}

// extName returns the extension of the last path element. A dotfile such as
// ".tmpl" has none, so it still needs a default engine.
func extName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == base || strings.Trim(base, ".") == "" {
		return ""
	}
	return ext
}

// NewFromConfig creates a View from cfg; opts are applied after cfg and win.
func NewFromConfig(name string, cfg Config, opts ...Option) (*View, error) {
	return New(name, append(cfg.Options(), opts...)...)
}

// Name returns the name the view was created with.
func (v *View) Name() string { return v.name }

// Ext returns the view extension with its leading dot.
func (v *View) Ext() string { return v.ext }

// Roots returns a copy of the search roots in priority order.
func (v *View) Roots() []string { return slices.Clone(v.roots) }

// Engine returns the engine bound to the view extension.
func (v *View) Engine() engine.Engine { return v.engine }

// Path returns the resolved file path, or "" before ResolveMain succeeds.
func (v *View) Path() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.path
}

// Resolved reports whether ResolveMain has succeeded.
func (v *View) Resolved() bool { return v.Path() != "" }

// ResolveMain finds the view file by searching roots in order and stops at the
// first match. It is a no-op once the path is known. If no root matches it
// returns *LookupError; probe failures stop the search and are returned as is.
func (v *View) ResolveMain(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.path != "" {
		return nil
	}
	v.logger.Debug("lookup", "view", v.file)
	for _, root := range v.roots {
		v.logger.Debug("looking up in root", "view", v.file, "root", root, "ext", v.ext)
		loc := v.file
		if !filepath.IsAbs(loc) {
			loc = filepath.Join(root, loc)
		}
		if v.prober.HostPaths() {
			abs, err := filepath.Abs(loc)
			if err != nil {
				return fmt.Errorf("viewfind: resolve %q against %q: %w", v.file, root, err)
			}
			loc = abs
		}
		path, err := resolveInDir(ctx, v.prober, filepath.Dir(loc), filepath.Base(loc), v.ext)
		if err != nil {
			return err
		}
		if path != "" {
			v.path = path
			return nil
		}
	}
	return &LookupError{View: v.name, Roots: slices.Clone(v.roots)}
}

// Render renders the resolved file with data. ResolveMain must have succeeded
// first, otherwise ErrUninitialized is returned. Engine errors pass through unchanged.
func (v *View) Render(ctx context.Context, data any) ([]byte, error) {
	path := v.Path()
	v.logger.Debug("render", "path", path)
	if path == "" {
		return nil, ErrUninitialized
	}
	return v.engine.Render(ctx, path, data)
}
