package viewfind

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Renderer creates, resolves and renders views by name with shared options.
// Resolved paths are not cached between calls.
type Renderer struct {
	opts []Option
}

// NewRenderer creates a Renderer from cfg; opts are applied after cfg.
func NewRenderer(cfg Config, opts ...Option) *Renderer {
	return &Renderer{opts: append(cfg.Options(), opts...)}
}

// View creates and resolves the view for name.
func (r *Renderer) View(ctx context.Context, name string) (*View, error) {
	v, err := New(name, r.opts...)
	if err != nil {
		return nil, err
	}
	if err := v.ResolveMain(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// Render resolves name and renders it with data.
func (r *Renderer) Render(ctx context.Context, name string, data any) ([]byte, error) {
	v, err := r.View(ctx, name)
	if err != nil {
		return nil, err
	}
	return v.Render(ctx, data)
}

// RenderAll renders every view in views (name to data) concurrently.
// The first failure cancels the rest and is returned.
func (r *Renderer) RenderAll(ctx context.Context, views map[string]any) (map[string][]byte, error) {
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	out := make(map[string][]byte, len(views))
	for name, data := range views {
		g.Go(func() error {
			b, err := r.Render(ctx, name, data)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = b
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
