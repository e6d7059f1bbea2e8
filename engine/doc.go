// Package engine defines the rendering capability a view hands its resolved
// file to, and the extension-keyed Registry that loads each engine once and
// shares it. Builtin provides text/template and html/template engines.
package engine
