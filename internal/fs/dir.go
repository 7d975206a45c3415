package fs

import (
	"context"
	"os"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"sandboxenv/internal/logging"
	"sandboxenv/internal/memfs"
)

var (
	dirLogger = logging.GetLogger().WithPrefix("dir")
)

// Dir is a directory of the view. path is relative to the mount root and
// always absolute.
type Dir struct {
	view *View
	path string
}

// Attr implements the Node interface, returning directory attributes.
func (d *Dir) Attr(_ context.Context, a *fuse.Attr) error {
	dirLogger.Trace("Getting attributes for directory: %q", d.path)

	entry, err := d.view.store.Stat(d.view.storePath(d.path))
	if err != nil {
		return ToFuseError(err)
	}

	a.Mode = os.ModeDir | 0555
	a.Mtime = entry.ModTime
	a.Atime = entry.ModTime
	a.Ctime = entry.ModTime
	a.Uid = d.view.uid
	a.Gid = d.view.gid
	return nil
}

// Lookup implements the NodeStringLookuper interface, finding a child node.
func (d *Dir) Lookup(_ context.Context, name string) (fusefs.Node, error) {
	dirLogger.Debug("Looking up %q in directory %q", name, d.path)
	if !validName(name) {
		return nil, ToFuseError(newError(OpLookup, name, ErrInvalidPath))
	}

	child := childPath(d.path, name)
	entry, err := d.view.store.Stat(d.view.storePath(child))
	if err != nil {
		dirLogger.Debug("Path not found: %q", child)
		return nil, ToFuseError(err)
	}

	if entry.IsDir() {
		return &Dir{view: d.view, path: child}, nil
	}
	return &File{view: d.view, path: child}, nil
}

// ReadDirAll implements the HandleReadDirAller interface, listing directory contents.
func (d *Dir) ReadDirAll(_ context.Context) ([]fuse.Dirent, error) {
	dirLogger.Debug("Reading directory contents: %q", d.path)

	children, err := d.view.store.ReadDir(d.view.storePath(d.path))
	if err != nil {
		return nil, ToFuseError(err)
	}

	entries := make([]fuse.Dirent, 0, len(children)+2)
	entries = append(entries, fuse.Dirent{Name: ".", Type: fuse.DT_Dir})
	entries = append(entries, fuse.Dirent{Name: "..", Type: fuse.DT_Dir})
	for _, child := range children {
		typ := fuse.DT_File
		if child.Kind == memfs.KindDirectory {
			typ = fuse.DT_Dir
		}
		entries = append(entries, fuse.Dirent{Name: child.Name, Type: typ})
	}

	dirLogger.Debug("Directory %q contains %d entries", d.path, len(entries))
	return entries, nil
}

func (d *Dir) readOnly(op, name string) error {
	dirLogger.Warn("Rejected %s of %q in %q: read-only", op, name, d.path)
	target := d.path
	if name != "." {
		target = childPath(d.path, name)
	}
	return ToFuseError(readOnlyError(op, target))
}

// Setattr implements the NodeSetattrer interface.
func (d *Dir) Setattr(_ context.Context, _ *fuse.SetattrRequest, _ *fuse.SetattrResponse) error {
	return d.readOnly(OpSetattr, ".")
}

// Mkdir implements the NodeMkdirer interface.
func (d *Dir) Mkdir(_ context.Context, req *fuse.MkdirRequest) (fusefs.Node, error) {
	return nil, d.readOnly(OpMkdir, req.Name)
}

// Create implements the NodeCreater interface.
func (d *Dir) Create(_ context.Context, req *fuse.CreateRequest, _ *fuse.CreateResponse) (fusefs.Node, fusefs.Handle, error) {
	return nil, nil, d.readOnly(OpCreate, req.Name)
}

// Remove implements the NodeRemover interface.
func (d *Dir) Remove(_ context.Context, req *fuse.RemoveRequest) error {
	return d.readOnly(OpRemove, req.Name)
}

// Rename implements the NodeRenamer interface.
func (d *Dir) Rename(_ context.Context, req *fuse.RenameRequest, _ fusefs.Node) error {
	return d.readOnly(OpRename, req.OldName)
}
