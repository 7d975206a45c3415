package memfs

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createOverwrite = WriteOptions{Create: true, Overwrite: true}

func fixedClock() func() time.Time {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return ts }
}

func TestMkdir(t *testing.T) {
	s := NewWithClock(fixedClock())

	require.NoError(t, s.Mkdir("/a/b/c"))

	for _, p := range []string{"/a", "/a/b", "/a/b/c"} {
		entry, err := s.Stat(p)
		require.NoError(t, err, p)
		assert.True(t, entry.IsDir(), p)
	}

	t.Run("idempotent", func(t *testing.T) {
		require.NoError(t, s.Mkdir("/a/b/c"))
		require.NoError(t, s.Mkdir("/a"))
		require.NoError(t, s.Mkdir("/"))
	})

	t.Run("fails on existing file", func(t *testing.T) {
		require.NoError(t, s.WriteFile("/a/file", []byte("x"), createOverwrite))

		err := s.Mkdir("/a/file")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrExistsAsFile))

		var fsErr *Error
		require.True(t, errors.As(err, &fsErr))
		assert.Equal(t, OpMkdir, fsErr.Op)
		assert.Equal(t, "/a/file", fsErr.Path)
	})

	t.Run("fails below existing file", func(t *testing.T) {
		err := s.Mkdir("/a/file/sub")
		assert.True(t, errors.Is(err, ErrExistsAsFile))
	})
}

func TestWriteFile(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, s *Store)
		path    string
		opts    WriteOptions
		wantErr error
	}{
		{
			name:    "parent missing",
			path:    "/missing/file.txt",
			opts:    createOverwrite,
			wantErr: ErrParentMissing,
		},
		{
			name: "create in existing directory",
			setup: func(t *testing.T, s *Store) {
				require.NoError(t, s.Mkdir("/dir"))
			},
			path: "/dir/file.txt",
			opts: createOverwrite,
		},
		{
			name: "no create on missing file",
			setup: func(t *testing.T, s *Store) {
				require.NoError(t, s.Mkdir("/dir"))
			},
			path:    "/dir/file.txt",
			opts:    WriteOptions{Overwrite: true},
			wantErr: ErrNotFound,
		},
		{
			name: "existing file without overwrite",
			setup: func(t *testing.T, s *Store) {
				require.NoError(t, s.Mkdir("/dir"))
				require.NoError(t, s.WriteFile("/dir/file.txt", []byte("old"), createOverwrite))
			},
			path:    "/dir/file.txt",
			opts:    WriteOptions{Create: true},
			wantErr: ErrExistsNoOverwrite,
		},
		{
			name: "existing file with overwrite",
			setup: func(t *testing.T, s *Store) {
				require.NoError(t, s.Mkdir("/dir"))
				require.NoError(t, s.WriteFile("/dir/file.txt", []byte("old"), createOverwrite))
			},
			path: "/dir/file.txt",
			opts: WriteOptions{Overwrite: true},
		},
		{
			name: "target is a directory",
			setup: func(t *testing.T, s *Store) {
				require.NoError(t, s.Mkdir("/dir/sub"))
			},
			path:    "/dir/sub",
			opts:    createOverwrite,
			wantErr: ErrIsDirectory,
		},
		{
			name: "parent is a file",
			setup: func(t *testing.T, s *Store) {
				require.NoError(t, s.WriteFile("/file", []byte("x"), createOverwrite))
			},
			path:    "/file/child",
			opts:    createOverwrite,
			wantErr: ErrNotDirectory,
		},
		{
			name:    "root",
			path:    "/",
			opts:    createOverwrite,
			wantErr: ErrIsDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if tt.setup != nil {
				tt.setup(t, s)
			}

			err := s.WriteFile(tt.path, []byte("new"), tt.opts)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			data, err := s.ReadFile(tt.path)
			require.NoError(t, err)
			assert.Equal(t, "new", string(data))
		})
	}
}

func TestWriteFileCopiesData(t *testing.T) {
	s := New()
	buf := []byte("hello")
	require.NoError(t, s.WriteFile("/f", buf, createOverwrite))

	buf[0] = 'j'
	data, err := s.ReadFile("/f")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data[0] = 'm'
	again, err := s.ReadFile("/f")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(again))
}

func TestReadFileErrors(t *testing.T) {
	s := New()
	require.NoError(t, s.Mkdir("/dir"))

	_, err := s.ReadFile("/dir")
	assert.True(t, errors.Is(err, ErrIsDirectory))

	_, err = s.ReadFile("/nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, s.Exists("/nope"))
	assert.True(t, s.Exists("/dir"))
}

func TestReadDirAndWalk(t *testing.T) {
	s := NewWithClock(fixedClock())
	require.NoError(t, s.Mkdir("/w/src"))
	require.NoError(t, s.Mkdir("/w/test"))
	require.NoError(t, s.WriteFile("/w/b.txt", []byte("bb"), createOverwrite))
	require.NoError(t, s.WriteFile("/w/a.txt", []byte("a"), createOverwrite))
	require.NoError(t, s.WriteFile("/w/src/main.ts", []byte("code"), createOverwrite))

	entries, err := s.ReadDir("/w")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "src", "test"}, names)

	var walked []string
	require.NoError(t, s.Walk("/", func(e Entry) error {
		walked = append(walked, e.Path)
		return nil
	}))
	want := []string{"/", "/w", "/w/a.txt", "/w/b.txt", "/w/src", "/w/src/main.ts", "/w/test"}
	if diff := cmp.Diff(want, walked); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}

	_, err = s.ReadDir("/w/a.txt")
	assert.True(t, errors.Is(err, ErrNotDirectory))

	stop := errors.New("stop")
	err = s.Walk("/w", func(e Entry) error {
		if e.Name == "b.txt" {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
}

func TestStat(t *testing.T) {
	clock := fixedClock()
	s := NewWithClock(clock)
	require.NoError(t, s.Mkdir("/d"))
	require.NoError(t, s.WriteFile("/d/f", []byte("12345"), createOverwrite))

	entry, err := s.Stat("d/f")
	require.NoError(t, err)
	assert.Equal(t, Entry{Name: "f", Path: "/d/f", Kind: KindFile, Size: 5, ModTime: clock()}, entry)
	assert.Equal(t, "file", entry.Kind.String())

	root, err := s.Stat("/")
	require.NoError(t, err)
	assert.True(t, root.IsDir())
	assert.Equal(t, "directory", root.Kind.String())
}
