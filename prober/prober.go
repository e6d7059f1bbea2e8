package prober

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultCeiling is the number of probes the default Prober allows in flight.
const DefaultCeiling = 10

// ErrProbe is the sentinel for existence checks that failed for a reason
// other than the path not existing.
var ErrProbe = errors.New("prober: stat failed")

// Error reports a failed existence check for Path.
// Use errors.Is(err, ErrProbe) to detect it and errors.As to read Path.
type Error struct {
	Path string
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("prober: stat %q: %v", e.Path, e.Err)
}

// Unwrap returns both the sentinel and the cause.
func (e *Error) Unwrap() []error { return []error{ErrProbe, e.Err} }

var _ error = (*Error)(nil)

// Filesystem is the stat capability a Prober checks paths against.
// billy.Filesystem from go-billy satisfies it.
type Filesystem interface {
	Stat(name string) (fs.FileInfo, error)
}

type osFilesystem struct{}

func (osFilesystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// OS is the Filesystem backed by the host operating system.
var OS Filesystem = osFilesystem{}

type ioFilesystem struct {
	fsys fs.FS
}

// FS adapts an fs.FS (e.g. embed.FS) into a Filesystem. Absolute and
// dot-prefixed names are made relative because fs.FS rejects them.
func FS(fsys fs.FS) Filesystem {
	return ioFilesystem{fsys: fsys}
}

func (f ioFilesystem) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(f.fsys, FSName(name))
}

// HostPaths reports false: names are relative to the wrapped fs.FS.
func (ioFilesystem) HostPaths() bool { return false }

// FSName converts a slash or dot prefixed path into a name valid for fs.FS.
func FSName(name string) string {
	name = filepath.ToSlash(filepath.Clean(name))
	name = strings.TrimLeft(name, "/")
	if name == "" {
		name = "."
	}
	return name
}

// Result is the outcome of a successful probe.
// Exists is false when the path does not exist; IsFile reports a regular file.
type Result struct {
	Exists bool
	IsFile bool
}

// Prober admits at most ceiling concurrent Stat calls. Excess callers wait
// in a FIFO queue and are dispatched in submission order as slots free up.
// Safe for concurrent use.
type Prober struct {
	fsys     Filesystem
	ceiling  int64
	sem      *semaphore.Weighted
	inFlight atomic.Int64
	logger   *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithCeiling sets the maximum number of in-flight probes. Values below 1 become 1.
func WithCeiling(n int) Option {
	return func(p *Prober) {
		if n < 1 {
			n = 1
		}
		p.ceiling = int64(n)
	}
}

// WithFilesystem sets the Filesystem probed. Default is OS.
func WithFilesystem(fsys Filesystem) Option {
	return func(p *Prober) {
		if fsys != nil {
			p.fsys = fsys
		}
	}
}

// WithLogger sets the logger for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Prober. Default ceiling is DefaultCeiling over the OS filesystem.
func New(opts ...Option) *Prober {
	p := &Prober{
		fsys:    OS,
		ceiling: DefaultCeiling,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.sem = semaphore.NewWeighted(p.ceiling)
	return p
}

var (
	defaultOnce   sync.Once
	defaultProber *Prober
)

// Default returns the process-wide Prober (ceiling DefaultCeiling, OS filesystem).
func Default() *Prober {
	defaultOnce.Do(func() {
		defaultProber = New()
	})
	return defaultProber
}

// Ceiling returns the configured maximum of in-flight probes.
func (p *Prober) Ceiling() int { return int(p.ceiling) }

// HostPaths reports whether names are host filesystem paths, so relative
// roots may be made absolute against the working directory. A Filesystem can
// opt out by implementing HostPaths() bool.
func (p *Prober) HostPaths() bool {
	if h, ok := p.fsys.(interface{ HostPaths() bool }); ok {
		return h.HostPaths()
	}
	return true
}

// InFlight returns the number of probes currently admitted.
func (p *Prober) InFlight() int { return int(p.inFlight.Load()) }

// Probe stats path once admitted. A missing path yields a zero Result and nil error;
// any other stat failure is returned as *Error. If ctx is done while the request
// is still queued, ctx.Err() is returned and no stat is issued.
func (p *Prober) Probe(ctx context.Context, path string) (Result, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	p.inFlight.Add(1)
	defer func() {
		p.inFlight.Add(-1)
		p.sem.Release(1)
	}()
	info, err := p.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("probe miss", "path", path)
			return Result{}, nil
		}
		return Result{}, &Error{Path: path, Err: err}
	}
	return Result{Exists: true, IsFile: info.Mode().IsRegular()}, nil
}
