package fs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"sandboxenv/internal/logging"
	"sandboxenv/internal/memfs"
)

var (
	viewLogger = logging.GetLogger().WithPrefix("fuse")
)

// View exposes a subtree of the in-memory store as a read-only FUSE
// filesystem. It never writes to the store.
type View struct {
	store *memfs.Store
	root  string // store path shown at the mount root
	uid   uint32
	gid   uint32
	conn  *fuse.Conn
}

var _ fusefs.FS = (*View)(nil)

// NewView creates a view of store rooted at root.
func NewView(store *memfs.Store, root string) (*View, error) {
	root = memfs.Clean(root)
	entry, err := store.Stat(root)
	if err != nil {
		return nil, err
	}
	if !entry.IsDir() {
		return nil, newError(OpLookup, root, ErrNotDirectory)
	}

	uid := safeIntToUint32(os.Getuid())
	gid := safeIntToUint32(os.Getgid())

	if puidStr := os.Getenv("PUID"); puidStr != "" {
		if puid, err := strconv.ParseUint(puidStr, 10, 32); err == nil {
			uid = uint32(puid)
			viewLogger.Debug("Using PUID from environment: %d", uid)
		}
	}
	if pgidStr := os.Getenv("PGID"); pgidStr != "" {
		if pgid, err := strconv.ParseUint(pgidStr, 10, 32); err == nil {
			gid = uint32(pgid)
			viewLogger.Debug("Using PGID from environment: %d", gid)
		}
	}

	viewLogger.Debug("Created view of %q (uid=%d, gid=%d)", root, uid, gid)
	return &View{store: store, root: root, uid: uid, gid: gid}, nil
}

// Root implements fusefs.FS.
func (v *View) Root() (fusefs.Node, error) {
	viewLogger.Trace("Getting root directory node")
	return &Dir{view: v, path: "/"}, nil
}

func waitForMount(mountpoint string) error {
	for i := 0; i < 30; i++ {
		info, err := os.Stat(mountpoint)
		if err == nil && info.IsDir() {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("mount point not available after 3 seconds")
}

// Mount attaches the view at mountpoint and serves it until Unmount. The
// returned channel receives the serve error, if any, and is then closed.
func (v *View) Mount(mountpoint, fsName string) (<-chan error, error) {
	viewLogger.Info("Mounting %q at %s", v.root, mountpoint)

	c, err := fuse.Mount(mountpoint,
		fuse.FSName(fsName),
		fuse.Subtype(fsName),
		fuse.ReadOnly(),
		fuse.DefaultPermissions(),
		fuse.AsyncRead(),
	)
	if err != nil {
		return nil, fmt.Errorf("mount failed: %w", err)
	}
	v.conn = c

	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer c.Close()
		if err := fusefs.Serve(c, v); err != nil {
			viewLogger.Error("FUSE server error: %v", err)
			done <- err
		}
		viewLogger.Debug("FUSE server stopped")
	}()

	if err := waitForMount(mountpoint); err != nil {
		c.Close()
		viewLogger.Error("Mount point not ready: %v", err)
		return nil, fmt.Errorf("mount point failed to initialize: %w", err)
	}

	viewLogger.Info("Filesystem mounted successfully")
	return done, nil
}

// Unmount detaches the view. The serve loop started by Mount then returns
// and closes the connection.
func (v *View) Unmount(mountpoint string) error {
	if v.conn == nil {
		return nil
	}
	viewLogger.Info("Unmounting filesystem from: %s", mountpoint)
	if err := fuse.Unmount(mountpoint); err != nil {
		viewLogger.Error("Unmount failed: %v", err)
		return err
	}
	viewLogger.Info("Unmount completed successfully")
	return nil
}
