package viewfind

import (
	"fmt"
	"log/slog"

	"github.com/skosovsky/viewfind/engine"
	"github.com/skosovsky/viewfind/internal/cast"
	"github.com/skosovsky/viewfind/prober"
)

// DefaultRoot is the root directory used when none is configured.
const DefaultRoot = "views"

type options struct {
	roots         []string
	defaultEngine string
	engines       *engine.Registry
	prober        *prober.Prober
	logger        *slog.Logger
	err           error
}

func defaultOptions() options {
	return options{
		roots:   []string{DefaultRoot},
		engines: engine.Default(),
		prober:  prober.Default(),
		logger:  slog.Default(),
	}
}

// Option configures a View (functional options pattern).
type Option func(*options)

// WithRoots sets the ordered root directories searched for views. First match wins.
func WithRoots(roots ...string) Option {
	return func(o *options) {
		o.roots = roots
	}
}

// WithRoot sets roots from a loosely typed value: a string, []string or []any of strings.
func WithRoot(root any) Option {
	return func(o *options) {
		roots, ok := cast.ToStrings(root)
		if !ok {
			o.err = fmt.Errorf("root must be a string or a list of strings, got %T", root)
			return
		}
		if roots != nil {
			o.roots = roots
		}
	}
}

// WithDefaultEngine sets the extension used when the view name has none (e.g. "tmpl" or ".tmpl").
func WithDefaultEngine(ext string) Option {
	return func(o *options) {
		o.defaultEngine = ext
	}
}

// WithEngines sets the engine registry shared between views. Default is engine.Default().
func WithEngines(reg *engine.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.engines = reg
		}
	}
}

// WithProber sets the admission gate used for filesystem checks. Default is prober.Default().
func WithProber(p *prober.Prober) Option {
	return func(o *options) {
		if p != nil {
			o.prober = p
		}
	}
}

// WithLogger sets the logger for lookup and render debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
