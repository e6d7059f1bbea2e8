package engine

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/skosovsky/viewfind/prober"
)

// readSource reads path from fsys, or from the host filesystem when fsys is nil.
func readSource(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return os.ReadFile(path) // #nosec G304 -- path comes from view resolution
	}
	return fs.ReadFile(fsys, prober.FSName(path))
}

// TextEngine renders files with text/template.
// Files are read from FS when set, otherwise from the host filesystem.
type TextEngine struct {
	FS fs.FS
}

// Render implements Engine.
func (e TextEngine) Render(ctx context.Context, path string, data any) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	src, err := readSource(e.FS, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	tpl, err := texttemplate.New(filepath.Base(path)).Funcs(defaultFuncs()).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, path, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, path, err)
	}
	return buf.Bytes(), nil
}

// HTMLEngine renders files with html/template, escaping data for HTML output.
// Files are read from FS when set, otherwise from the host filesystem.
type HTMLEngine struct {
	FS fs.FS
}

// Render implements Engine.
func (e HTMLEngine) Render(ctx context.Context, path string, data any) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	src, err := readSource(e.FS, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	tpl, err := htmltemplate.New(filepath.Base(path)).Funcs(defaultFuncs()).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, path, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, path, err)
	}
	return buf.Bytes(), nil
}

// Builtin returns a Provider for the standard-library engines:
// tmpl, gotmpl and txt use TextEngine; html and gohtml use HTMLEngine.
func Builtin() Provider {
	return BuiltinFS(nil)
}

// BuiltinFS is Builtin with engines that read templates from fsys,
// for views resolved through prober.FS(fsys).
func BuiltinFS(fsys fs.FS) Provider {
	return StaticProvider{
		"tmpl":   TextEngine{FS: fsys},
		"gotmpl": TextEngine{FS: fsys},
		"txt":    TextEngine{FS: fsys},
		"html":   HTMLEngine{FS: fsys},
		"gohtml": HTMLEngine{FS: fsys},
	}
}
