package fs

import (
	"context"
	"encoding/hex"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
	"github.com/zeebo/blake3"

	"sandboxenv/internal/logging"
)

var (
	fileLogger = logging.GetLogger().WithPrefix("file")
)

// XattrDigest holds the hex BLAKE3 digest of a file's content.
const XattrDigest = "user.sandbox.blake3"

// File is a regular file of the view.
type File struct {
	view *View
	path string
}

func (f *File) read() ([]byte, error) {
	return f.view.store.ReadFile(f.view.storePath(f.path))
}

// Attr implements the Node interface, returning the file's attributes.
func (f *File) Attr(_ context.Context, a *fuse.Attr) error {
	fileLogger.Trace("Getting attributes for file: %q", f.path)

	entry, err := f.view.store.Stat(f.view.storePath(f.path))
	if err != nil {
		return ToFuseError(err)
	}
	if entry.IsDir() {
		return syscall.EISDIR
	}

	a.Mode = 0444
	a.Size = safeInt64ToUint64(entry.Size)
	a.Mtime = entry.ModTime
	a.Atime = entry.ModTime // We don't track access time
	a.Ctime = entry.ModTime // We don't track change time
	a.Uid = f.view.uid
	a.Gid = f.view.gid
	a.BlockSize = 4096
	a.Blocks = safeInt64ToUint64((entry.Size + 511) / 512)
	return nil
}

// Setattr implements the NodeSetattrer interface.
func (f *File) Setattr(_ context.Context, _ *fuse.SetattrRequest, _ *fuse.SetattrResponse) error {
	fileLogger.Warn("Rejected setattr on %q: read-only", f.path)
	return ToFuseError(readOnlyError(OpSetattr, f.path))
}

// Open implements the NodeOpener interface. The handle reads a snapshot of
// the content taken at open time.
func (f *File) Open(_ context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fusefs.Handle, error) {
	fileLogger.Debug("Opening file %q with flags %v", f.path, req.Flags)

	if !req.Flags.IsReadOnly() {
		fileLogger.Warn("Attempted write access to read-only file: %q", f.path)
		return nil, ToFuseError(readOnlyError(OpOpen, f.path))
	}

	data, err := f.read()
	if err != nil {
		return nil, ToFuseError(err)
	}

	resp.Flags |= fuse.OpenKeepCache
	return &FileHandle{data: data, path: f.path}, nil
}

// Getxattr implements the NodeGetxattrer interface.
func (f *File) Getxattr(_ context.Context, req *fuse.GetxattrRequest, resp *fuse.GetxattrResponse) error {
	fileLogger.Debug("Getting xattr %q for file %q", req.Name, f.path)
	if req.Name != XattrDigest {
		return fuse.ErrNoXattr
	}

	data, err := f.read()
	if err != nil {
		return ToFuseError(err)
	}
	sum := blake3.Sum256(data)
	resp.Xattr = []byte(hex.EncodeToString(sum[:]))
	return nil
}

// Listxattr implements the NodeListxattrer interface.
func (f *File) Listxattr(_ context.Context, _ *fuse.ListxattrRequest, resp *fuse.ListxattrResponse) error {
	resp.Append(XattrDigest)
	return nil
}

// FileHandle is an open file.
type FileHandle struct {
	data []byte
	path string // For logging purposes
}

// ReadAll implements the HandleReadAller interface.
func (fh *FileHandle) ReadAll(_ context.Context) ([]byte, error) {
	fileLogger.Trace("Reading all %d bytes of %q", len(fh.data), fh.path)
	return fh.data, nil
}

// Read implements the HandleReader interface, reading data from the file.
func (fh *FileHandle) Read(_ context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	fileLogger.Trace("Reading %d bytes from file %q at offset %d", req.Size, fh.path, req.Offset)

	if req.Offset < 0 {
		return syscall.EINVAL
	}
	if req.Offset >= int64(len(fh.data)) {
		resp.Data = nil
		return nil
	}
	end := req.Offset + int64(req.Size)
	if end > int64(len(fh.data)) {
		end = int64(len(fh.data))
	}
	resp.Data = fh.data[req.Offset:end]
	return nil
}

// Release implements the HandleReleaser interface.
func (fh *FileHandle) Release(_ context.Context, _ *fuse.ReleaseRequest) error {
	fileLogger.Debug("Closing file %q", fh.path)
	fh.data = nil
	return nil
}
