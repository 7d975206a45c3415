// Package workspace describes the sample workspace the sandbox opens and
// seeds it into the in-memory store.
package workspace

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path"
	"runtime"
	"strings"

	"github.com/tidwall/jsonc"
	"github.com/zeebo/blake3"

	"sandboxenv/internal/resource"
)

// ID is the fixed identifier of the sample workspace.
const ID = "4064f6ec-cb38-4ad0-af64-ee6467e63c82"

// Identifier names a single-folder workspace.
type Identifier struct {
	ID  string
	URI resource.URI
}

// Default returns the sample workspace identifier for the host platform.
func Default() Identifier {
	return identifierFor(runtime.GOOS)
}

func identifierFor(goos string) Identifier {
	folder := "/simpleWorkspace"
	if goos == "windows" {
		folder = `\simpleWorkspace`
	}
	return Identifier{ID: ID, URI: resource.File(folder)}
}

// File is one manifest entry. Path is relative to the workspace root and
// slash separated.
type File struct {
	Path    string
	Content string
}

// Dir returns the folder part of the path, "" for root-level files.
func (f File) Dir() string {
	d := path.Dir(f.Path)
	if d == "." {
		return ""
	}
	return d
}

// Name returns the last element of the path.
func (f File) Name() string {
	return path.Base(f.Path)
}

// Manifest is the ordered set of folders and files that make up a workspace.
type Manifest struct {
	Folders []string
	Files   []File
}

// Sample returns the manifest of the sample TypeScript extension project.
// The returned value is a copy and may be modified by the caller.
func Sample() Manifest {
	m := Manifest{
		Folders: make([]string, len(folders)),
		Files:   make([]File, len(sampleFiles)),
	}
	copy(m.Folders, folders)
	copy(m.Files, sampleFiles)
	return m
}

// Lookup returns the entry for rel, if the manifest has one.
func (m Manifest) Lookup(rel string) (File, bool) {
	for _, f := range m.Files {
		if f.Path == rel {
			return f, true
		}
	}
	return File{}, false
}

// Validate checks that every entry stays inside the workspace root, that
// every file lives in a declared folder, and that every .json file parses
// as JSON with comments.
func (m Manifest) Validate() error {
	declared := make(map[string]bool, len(m.Folders))
	for _, folder := range m.Folders {
		if folder != "" {
			if err := resource.CheckSuffix(folder); err != nil {
				return fmt.Errorf("invalid folder: %w", err)
			}
		}
		declared[folder] = true
	}

	seen := make(map[string]bool, len(m.Files))
	for _, f := range m.Files {
		if f.Path == "" || strings.HasSuffix(f.Path, "/") {
			return fmt.Errorf("invalid file path %q", f.Path)
		}
		if err := resource.CheckSuffix(f.Path); err != nil {
			return fmt.Errorf("invalid file: %w", err)
		}
		if seen[f.Path] {
			return fmt.Errorf("duplicate file %q", f.Path)
		}
		seen[f.Path] = true
		if !declared[f.Dir()] {
			return fmt.Errorf("file %q is outside the declared folders", f.Path)
		}
		if path.Ext(f.Path) == ".json" && !json.Valid(jsonc.ToJSON([]byte(f.Content))) {
			return fmt.Errorf("file %q is not valid JSON", f.Path)
		}
	}
	return nil
}

// Digest returns a BLAKE3 fingerprint of the manifest. Folder and file
// order are part of the digest, as is every byte of content.
func (m Manifest) Digest() string {
	h := blake3.New()
	writeField := func(s string) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}
	for _, folder := range m.Folders {
		writeField("d")
		writeField(folder)
	}
	for _, f := range m.Files {
		writeField("f")
		writeField(f.Path)
		writeField(f.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}
