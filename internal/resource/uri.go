// Package resource provides the location values every sandbox resource is
// addressed by. A URI is a scheme plus a slash-separated absolute path;
// derived locations are computed with JoinPath and never leave the subtree
// of the location they were derived from.
package resource

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Well-known schemes.
const (
	SchemeFile     = "file"
	SchemeUserData = "vscode-userdata"
)

// URI is an immutable resource location.
type URI struct {
	Scheme string
	Path   string
}

// File returns a file URI for the given OS path. Backslash separators are
// normalised so Windows-style paths address the same tree.
func File(p string) URI {
	return URI{Scheme: SchemeFile, Path: cleanPath(p)}
}

// New returns a URI with the given scheme and path.
func New(scheme, p string) URI {
	return URI{Scheme: scheme, Path: cleanPath(p)}
}

func cleanPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// WithScheme returns a copy of u with a different scheme.
func (u URI) WithScheme(scheme string) URI {
	return URI{Scheme: scheme, Path: u.Path}
}

// String renders the URI as scheme://path.
func (u URI) String() string {
	return u.Scheme + "://" + u.Path
}

// FSPath renders the path with the host separator.
func (u URI) FSPath() string {
	return filepath.FromSlash(u.Path)
}

// IsZero reports whether u is the zero URI.
func (u URI) IsZero() bool {
	return u.Scheme == "" && u.Path == ""
}

// Contains reports whether other lies inside (or is equal to) u's subtree.
func (u URI) Contains(other URI) bool {
	if u.Scheme != other.Scheme {
		return false
	}
	if u.Path == "/" || u.Path == other.Path {
		return true
	}
	return strings.HasPrefix(other.Path, u.Path+"/")
}

// JoinPath appends relative segments to base. Empty segments are skipped,
// so JoinPath(u, "") == u. A segment that is absolute or walks upward is a
// programming error and panics.
func JoinPath(base URI, segments ...string) URI {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, base.Path)
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if err := CheckSuffix(seg); err != nil {
			panic(err)
		}
		parts = append(parts, strings.ReplaceAll(seg, `\`, "/"))
	}
	return URI{Scheme: base.Scheme, Path: path.Join(parts...)}
}

// CheckSuffix validates a relative suffix used to derive a location.
func CheckSuffix(seg string) error {
	s := strings.ReplaceAll(seg, `\`, "/")
	if strings.HasPrefix(s, "/") {
		return fmt.Errorf("resource: suffix %q must be relative", seg)
	}
	for _, part := range strings.Split(s, "/") {
		if part == ".." {
			return fmt.Errorf("resource: suffix %q escapes its root", seg)
		}
	}
	return nil
}
