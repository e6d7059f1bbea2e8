package viewfind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skosovsky/viewfind/prober"
)

// Sentinel errors for view construction, lookup and rendering.
// All use prefix "viewfind:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrConfig        = errors.New("viewfind: invalid view configuration")
	ErrNoEngine      = errors.New("viewfind: no default engine was specified and no extension was provided")
	ErrNoRoots       = errors.New("viewfind: no root directories configured")
	ErrLookup        = errors.New("viewfind: view not found")
	ErrUninitialized = errors.New("viewfind: view has not been fully initialized yet")
	// ErrProbe matches filesystem checks that failed for a reason other than absence.
	ErrProbe = prober.ErrProbe
)

// ProbeError reports a failed existence check during lookup.
type ProbeError = prober.Error

// ConfigError wraps a construction failure with the view name.
// errors.Is(err, ErrConfig) holds for every ConfigError.
type ConfigError struct {
	View string
	Err  error
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("viewfind: view %q: %v", e.View, e.Err)
}

// Unwrap returns ErrConfig and the cause for errors.Is/errors.As.
func (e *ConfigError) Unwrap() []error { return []error{ErrConfig, e.Err} }

// LookupError reports that no root contained the view.
type LookupError struct {
	View  string
	Roots []string
}

// Error implements error.
func (e *LookupError) Error() string {
	return fmt.Sprintf("viewfind: failed to lookup view %q in views %s", e.View, describeRoots(e.Roots))
}

// Unwrap returns ErrLookup.
func (e *LookupError) Unwrap() error { return ErrLookup }

// describeRoots formats roots as `directory "a"` or `directories "a", "b" or "c"`.
func describeRoots(roots []string) string {
	if len(roots) <= 1 {
		return fmt.Sprintf("directory %q", strings.Join(roots, ""))
	}
	quoted := make([]string, len(roots))
	for i, r := range roots {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return "directories " + strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

var (
	_ error = (*ConfigError)(nil)
	_ error = (*LookupError)(nil)
)
