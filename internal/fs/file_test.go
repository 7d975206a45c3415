package fs

import (
	"context"
	"encoding/hex"
	"os"
	"syscall"
	"testing"

	"bazil.org/fuse"
	"github.com/zeebo/blake3"

	"sandboxenv/internal/workspace"
)

func lookupFile(t *testing.T, view *View, names ...string) *File {
	t.Helper()
	ctx := context.Background()
	var node interface{} = rootDir(t, view)
	for _, name := range names {
		dir, ok := node.(*Dir)
		if !ok {
			t.Fatalf("%q is not below a directory", name)
		}
		next, err := dir.Lookup(ctx, name)
		if err != nil {
			t.Fatalf("Failed to lookup %q: %v", name, err)
		}
		node = next
	}
	file, ok := node.(*File)
	if !ok {
		t.Fatalf("Expected a File, got %T", node)
	}
	return file
}

func TestFileOperations(t *testing.T) {
	view, _ := setupTestView(t)
	ctx := context.Background()
	sample, _ := workspace.Sample().Lookup("src/extension.ts")
	content := []byte(sample.Content)

	t.Run("FileAttributes", func(t *testing.T) {
		file := lookupFile(t, view, "src", "extension.ts")

		attr := &fuse.Attr{}
		if err := file.Attr(ctx, attr); err != nil {
			t.Fatalf("Failed to get file attributes: %v", err)
		}
		if attr.Mode&os.ModeDir != 0 {
			t.Error("File should not be a directory")
		}
		if attr.Mode.Perm() != 0444 {
			t.Errorf("File permissions = %v, want 0444", attr.Mode.Perm())
		}
		if attr.Size != uint64(len(content)) {
			t.Errorf("File size = %d, want %d", attr.Size, len(content))
		}
		if attr.Mtime.IsZero() {
			t.Error("File mtime should be set")
		}
	})

	t.Run("ReadAll", func(t *testing.T) {
		file := lookupFile(t, view, "src", "extension.ts")

		handle, err := file.Open(ctx, &fuse.OpenRequest{Flags: fuse.OpenReadOnly}, &fuse.OpenResponse{})
		if err != nil {
			t.Fatalf("Failed to open file: %v", err)
		}
		fh := handle.(*FileHandle)
		defer fh.Release(ctx, &fuse.ReleaseRequest{})

		data, err := fh.ReadAll(ctx)
		if err != nil {
			t.Fatalf("ReadAll failed: %v", err)
		}
		if string(data) != sample.Content {
			t.Errorf("ReadAll returned %d bytes that differ from the seeded content", len(data))
		}
	})

	t.Run("ReadAtOffset", func(t *testing.T) {
		file := lookupFile(t, view, "src", "extension.ts")
		handle, err := file.Open(ctx, &fuse.OpenRequest{Flags: fuse.OpenReadOnly}, &fuse.OpenResponse{})
		if err != nil {
			t.Fatalf("Failed to open file: %v", err)
		}
		fh := handle.(*FileHandle)

		tests := []struct {
			name   string
			offset int64
			size   int
			want   []byte
		}{
			{name: "start", offset: 0, size: 6, want: content[:6]},
			{name: "middle", offset: 3, size: 4, want: content[3:7]},
			{name: "past end", offset: int64(len(content)) + 10, size: 4, want: nil},
			{name: "truncated", offset: int64(len(content)) - 2, size: 10, want: content[len(content)-2:]},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := &fuse.ReadResponse{}
				if err := fh.Read(ctx, &fuse.ReadRequest{Offset: tt.offset, Size: tt.size}, resp); err != nil {
					t.Fatalf("Read failed: %v", err)
				}
				if string(resp.Data) != string(tt.want) {
					t.Errorf("Read = %q, want %q", resp.Data, tt.want)
				}
			})
		}
	})

	t.Run("WriteAccessDenied", func(t *testing.T) {
		file := lookupFile(t, view, "package.json")

		for _, flags := range []fuse.OpenFlags{fuse.OpenWriteOnly, fuse.OpenReadWrite} {
			if _, err := file.Open(ctx, &fuse.OpenRequest{Flags: flags}, &fuse.OpenResponse{}); err != syscall.EROFS {
				t.Errorf("Open with %v error = %v, want EROFS", flags, err)
			}
		}
		if err := file.Setattr(ctx, &fuse.SetattrRequest{}, &fuse.SetattrResponse{}); err != syscall.EROFS {
			t.Errorf("Setattr error = %v, want EROFS", err)
		}
	})

	t.Run("DigestXattr", func(t *testing.T) {
		file := lookupFile(t, view, "src", "extension.ts")

		list := &fuse.ListxattrResponse{}
		if err := file.Listxattr(ctx, &fuse.ListxattrRequest{}, list); err != nil {
			t.Fatalf("Listxattr failed: %v", err)
		}
		if string(list.Xattr) != XattrDigest+"\x00" {
			t.Errorf("Listxattr = %q, want %q", list.Xattr, XattrDigest)
		}

		resp := &fuse.GetxattrResponse{}
		if err := file.Getxattr(ctx, &fuse.GetxattrRequest{Name: XattrDigest}, resp); err != nil {
			t.Fatalf("Getxattr failed: %v", err)
		}
		sum := blake3.Sum256(content)
		if string(resp.Xattr) != hex.EncodeToString(sum[:]) {
			t.Errorf("Getxattr = %s, want %x", resp.Xattr, sum)
		}

		if err := file.Getxattr(ctx, &fuse.GetxattrRequest{Name: "user.other"}, &fuse.GetxattrResponse{}); err != fuse.ErrNoXattr {
			t.Errorf("Getxattr(user.other) error = %v, want ErrNoXattr", err)
		}
	})
}
