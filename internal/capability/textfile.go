package capability

import (
	"time"

	"sandboxenv/internal/future"
	"sandboxenv/internal/resource"
)

// TextFileContent is the decoded content of a text file.
type TextFileContent struct {
	Resource resource.URI
	Value    string
	Encoding string
	Size     int64
	ModTime  time.Time
}

// TextFileStat describes a text file after a write.
type TextFileStat struct {
	Resource resource.URI
	Size     int64
	ModTime  time.Time
}

// TextFiles reads and writes text files in the workspace.
type TextFiles interface {
	Encoding() string
	Read(uri resource.URI) *future.Future[TextFileContent]
	Write(uri resource.URI, value string) *future.Future[TextFileStat]
	Create(uri resource.URI, value string, overwrite bool) *future.Future[TextFileStat]
	Exists(uri resource.URI) *future.Future[bool]
	IsDirty(uri resource.URI) bool
}
