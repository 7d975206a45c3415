package standin

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"sandboxenv/internal/capability"
	"sandboxenv/internal/future"
	"sandboxenv/internal/logging"
	"sandboxenv/internal/memfs"
	"sandboxenv/internal/resource"
)

var (
	textLogger = logging.GetLogger().WithPrefix("textfile")
)

const encodingUTF8 = "utf8"

// TextFiles reads and writes text through the in-memory store. All URIs
// address the same tree regardless of scheme.
type TextFiles struct {
	store *memfs.Store
}

var _ capability.TextFiles = (*TextFiles)(nil)

// NewTextFiles returns a text-file service over store.
func NewTextFiles(store *memfs.Store) *TextFiles {
	return &TextFiles{store: store}
}

// Encoding is always UTF-8.
func (t *TextFiles) Encoding() string {
	return encodingUTF8
}

// Read decodes the file at uri.
func (t *TextFiles) Read(uri resource.URI) *future.Future[capability.TextFileContent] {
	data, err := t.store.ReadFile(uri.Path)
	if err != nil {
		return future.Failed[capability.TextFileContent](err)
	}
	entry, err := t.store.Stat(uri.Path)
	if err != nil {
		return future.Failed[capability.TextFileContent](err)
	}
	return future.Resolved(capability.TextFileContent{
		Resource: uri,
		Value:    string(data),
		Encoding: encodingUTF8,
		Size:     entry.Size,
		ModTime:  entry.ModTime,
	})
}

// Write replaces or creates the file at uri. The parent directory must exist.
func (t *TextFiles) Write(uri resource.URI, value string) *future.Future[capability.TextFileStat] {
	return t.write(uri, value, memfs.WriteOptions{Create: true, Overwrite: true})
}

// Create creates the file at uri, replacing an existing one only when
// overwrite is set.
func (t *TextFiles) Create(uri resource.URI, value string, overwrite bool) *future.Future[capability.TextFileStat] {
	return t.write(uri, value, memfs.WriteOptions{Create: true, Overwrite: overwrite})
}

func (t *TextFiles) write(uri resource.URI, value string, opts memfs.WriteOptions) *future.Future[capability.TextFileStat] {
	textLogger.Debug("Writing %d bytes to %s", len(value), uri)
	if err := t.store.WriteFile(uri.Path, []byte(value), opts); err != nil {
		return future.Failed[capability.TextFileStat](err)
	}
	entry, err := t.store.Stat(uri.Path)
	if err != nil {
		return future.Failed[capability.TextFileStat](err)
	}
	return future.Resolved(capability.TextFileStat{
		Resource: uri,
		Size:     entry.Size,
		ModTime:  entry.ModTime,
	})
}

// Exists reports whether anything lives at uri.
func (t *TextFiles) Exists(uri resource.URI) *future.Future[bool] {
	return future.Resolved(t.store.Exists(uri.Path))
}

// IsDirty is always false; there are no unsaved editor models.
func (t *TextFiles) IsDirty(resource.URI) bool {
	return false
}

// ReadJSON decodes a JSON file that may contain comments and trailing
// commas, the way settings and tsconfig files are written.
func (t *TextFiles) ReadJSON(uri resource.URI, v any) error {
	data, err := t.store.ReadFile(uri.Path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("decode %s: %w", uri, err)
	}
	return nil
}
