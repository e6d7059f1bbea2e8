package viewfind

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeViews(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
	return dir
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()
	dir := writeViews(t, map[string]string{
		"home.tmpl":        "Home {{ .user }}",
		"users/index.html": "<p>{{ .user }}</p>",
	})
	r := NewRenderer(Config{Root: dir, DefaultEngine: "tmpl"})
	ctx := context.Background()

	out, err := r.Render(ctx, "home", map[string]any{"user": "tobi"})
	require.NoError(t, err)
	assert.Equal(t, "Home tobi", string(out))

	out, err = r.Render(ctx, "users.html", map[string]any{"user": "<tobi>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;tobi&gt;</p>", string(out))

	_, err = r.Render(ctx, "missing", nil)
	require.ErrorIs(t, err, ErrLookup)
}

func TestRenderer_RenderAll(t *testing.T) {
	t.Parallel()
	files := map[string]string{}
	views := map[string]any{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		files[name+".tmpl"] = "{{ .n }}-" + name
		views[name] = map[string]any{"n": 1}
	}
	dir := writeViews(t, files)
	r := NewRenderer(Config{Root: []any{t.TempDir(), dir}, DefaultEngine: "tmpl"})

	out, err := r.RenderAll(context.Background(), views)
	require.NoError(t, err)
	require.Len(t, out, len(views))
	assert.Equal(t, "1-a", string(out["a"]))
	assert.Equal(t, "1-l", string(out["l"]))
}

func TestRenderer_RenderAllFailure(t *testing.T) {
	t.Parallel()
	dir := writeViews(t, map[string]string{"ok.tmpl": "ok"})
	r := NewRenderer(Config{Root: dir, DefaultEngine: "tmpl"})
	_, err := r.RenderAll(context.Background(), map[string]any{"ok": nil, "absent": nil})
	require.ErrorIs(t, err, ErrLookup)
}
