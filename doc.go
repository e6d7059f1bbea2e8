// Package viewfind resolves logical template names to files on disk and renders
// them with an engine chosen by file extension. A View searches an ordered list
// of root directories, trying {root}/{name}{ext} and then {root}/{name}/index{ext},
// and stops at the first match. Filesystem checks go through a shared prober.Prober
// that bounds how many run concurrently across all views.
package viewfind
