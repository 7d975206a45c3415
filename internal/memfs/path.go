package memfs

import (
	"path"
	"strings"
)

// Clean normalises p to the store's canonical form: absolute, slash
// separated, no trailing slash, no dot segments.
func Clean(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// split returns the components of a cleaned path; the root has none.
func split(p string) []string {
	if p == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}

// Parent returns the parent of a cleaned path. The root is its own parent.
func Parent(p string) string {
	return path.Dir(Clean(p))
}

// Base returns the last element of the path.
func Base(p string) string {
	return path.Base(Clean(p))
}
