package viewfind

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skosovsky/viewfind/prober"
)

type statFunc func(string) (fs.FileInfo, error)

func (f statFunc) Stat(name string) (fs.FileInfo, error) { return f(name) }

func TestResolveInDir_DirectFile(t *testing.T) {
	t.Parallel()
	rec, p := memViews(t, map[string]string{"/v/user.tmpl": "u"})
	path, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.NoError(t, err)
	assert.Equal(t, "/v/user.tmpl", path)
	assert.Equal(t, []string{"/v/user.tmpl"}, rec.probed())
}

func TestResolveInDir_IndexFallback(t *testing.T) {
	t.Parallel()
	rec, p := memViews(t, map[string]string{"/v/user/index.tmpl": "idx"})
	path, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.NoError(t, err)
	assert.Equal(t, "/v/user/index.tmpl", path)
	assert.Equal(t, []string{"/v/user.tmpl", "/v/user/index.tmpl"}, rec.probed())
}

func TestResolveInDir_DirectoryNamedLikeFileFallsThrough(t *testing.T) {
	t.Parallel()
	_, p := memViews(t, map[string]string{"/v/user.tmpl/keep": "", "/v/user/index.tmpl": "idx"})
	path, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.NoError(t, err)
	assert.Equal(t, "/v/user/index.tmpl", path)
}

func TestResolveInDir_NoMatch(t *testing.T) {
	t.Parallel()
	_, p := memViews(t, nil)
	path, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestResolveInDir_IndexIsDirectory(t *testing.T) {
	t.Parallel()
	_, p := memViews(t, map[string]string{"/v/user/index.tmpl/keep": ""})
	_, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.ErrorIs(t, err, ErrProbe)
	var pe *ProbeError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "/v/user/index.tmpl", pe.Path)
}

func TestResolveInDir_FirstProbeErrorStops(t *testing.T) {
	t.Parallel()
	denied := errors.New("permission denied")
	var calls []string
	p := prober.New(prober.WithFilesystem(statFunc(func(name string) (fs.FileInfo, error) {
		calls = append(calls, name)
		return nil, denied
	})))
	_, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.ErrorIs(t, err, denied)
	assert.Equal(t, []string{"/v/user.tmpl"}, calls)
}

func TestResolveInDir_SecondProbeError(t *testing.T) {
	t.Parallel()
	denied := errors.New("permission denied")
	mfs := memfs.New()
	p := prober.New(prober.WithFilesystem(statFunc(func(name string) (fs.FileInfo, error) {
		if name == "/v/user/index.tmpl" {
			return nil, denied
		}
		return mfs.Stat(name)
	})))
	_, err := resolveInDir(context.Background(), p, "/v", "user.tmpl", ".tmpl")
	require.ErrorIs(t, err, denied)
	require.ErrorIs(t, err, ErrProbe)
}
