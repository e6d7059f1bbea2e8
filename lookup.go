package viewfind

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/skosovsky/viewfind/prober"
)

var errNotRegular = errors.New("not a regular file")

// resolveInDir returns dir/file when it is a regular file, else
// dir/{file without ext}/index{ext}. An empty path with nil error means
// neither exists. The second candidate is only probed after the first misses.
func resolveInDir(ctx context.Context, p *prober.Prober, dir, file, ext string) (string, error) {
	path := filepath.Join(dir, file)
	res, err := p.Probe(ctx, path)
	if err != nil {
		return "", err
	}
	if res.IsFile {
		return path, nil
	}

	path = filepath.Join(dir, strings.TrimSuffix(file, ext), "index"+ext)
	res, err = p.Probe(ctx, path)
	switch {
	case err != nil:
		return "", err
	case !res.Exists:
		return "", nil
	case res.IsFile:
		return path, nil
	default:
		return "", &ProbeError{Path: path, Err: errNotRegular}
	}
}
