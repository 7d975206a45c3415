package fs

import (
	"path"
	"strings"
)

// storePath maps a path inside the mount to the store path it shows.
func (v *View) storePath(p string) string {
	if p == "/" {
		return v.root
	}
	return path.Join(v.root, p)
}

// childPath joins a validated entry name onto a mount path.
func childPath(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return dir + "/" + name
}

// validName reports whether name can be a single directory entry.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, "/\x00")
}
