package memfs

import (
	"sort"
	"sync"
	"time"

	"sandboxenv/internal/logging"
)

var (
	logger = logging.GetLogger().WithPrefix("memfs")
)

// Kind distinguishes directories from files.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// WriteOptions control WriteFile.
type WriteOptions struct {
	// Create allows the file to be created when it does not exist yet.
	Create bool
	// Overwrite allows an existing file to be replaced.
	Overwrite bool
}

// Entry describes one node of the store.
type Entry struct {
	Name    string
	Path    string
	Kind    Kind
	Size    int64
	ModTime time.Time
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

type node struct {
	kind     Kind
	data     []byte
	children map[string]*node
	modTime  time.Time
}

func newDir(now time.Time) *node {
	return &node{kind: KindDirectory, children: make(map[string]*node), modTime: now}
}

// Store is an in-memory tree of directories and files rooted at "/".
//
// File writes never create missing parent directories: a file can only be
// written below a directory made earlier with Mkdir. The mutex protects
// readers that run after the single bootstrap writer is done.
type Store struct {
	mu   sync.RWMutex
	root *node
	now  func() time.Time
}

// New creates an empty store containing only the root directory.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty store that stamps nodes with now().
func NewWithClock(now func() time.Time) *Store {
	logger.Debug("Creating new in-memory store")
	return &Store{root: newDir(now()), now: now}
}

// lookup walks to the node at a cleaned path. It returns ErrNotFound or
// ErrNotDirectory for the first offending component.
func (s *Store) lookup(p string) (*node, error) {
	cur := s.root
	for _, name := range split(p) {
		if cur.kind != KindDirectory {
			return nil, ErrNotDirectory
		}
		next, ok := cur.children[name]
		if !ok {
			return nil, ErrNotFound
		}
		cur = next
	}
	return cur, nil
}

// Mkdir ensures a directory exists at p, creating intermediate directories
// as needed. It is idempotent and fails only when p or one of its
// ancestors is a file.
func (s *Store) Mkdir(p string) error {
	p = Clean(p)
	logger.Trace("Mkdir %q", p)

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.root
	for _, name := range split(p) {
		next, ok := cur.children[name]
		if !ok {
			next = newDir(s.now())
			cur.children[name] = next
			cur.modTime = next.modTime
			logger.Debug("Created directory %q in %q", name, p)
		} else if next.kind != KindDirectory {
			return newError(OpMkdir, p, ErrExistsAsFile)
		}
		cur = next
	}
	return nil
}

// WriteFile stores data at p according to opts.
func (s *Store) WriteFile(p string, data []byte, opts WriteOptions) error {
	p = Clean(p)
	logger.Trace("WriteFile %q (%d bytes, create=%v, overwrite=%v)", p, len(data), opts.Create, opts.Overwrite)

	if p == "/" {
		return newError(OpWriteFile, p, ErrIsDirectory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parent, err := s.lookup(Parent(p))
	if err != nil {
		if err == ErrNotFound {
			return newError(OpWriteFile, p, ErrParentMissing)
		}
		return newError(OpWriteFile, p, err)
	}
	if parent.kind != KindDirectory {
		return newError(OpWriteFile, p, ErrNotDirectory)
	}

	name := Base(p)
	existing, exists := parent.children[name]
	switch {
	case exists && existing.kind == KindDirectory:
		return newError(OpWriteFile, p, ErrIsDirectory)
	case exists && !opts.Overwrite:
		return newError(OpWriteFile, p, ErrExistsNoOverwrite)
	case !exists && !opts.Create:
		return newError(OpWriteFile, p, ErrNotFound)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	now := s.now()
	parent.children[name] = &node{kind: KindFile, data: buf, modTime: now}
	parent.modTime = now
	return nil
}

// ReadFile returns a copy of the content stored at p.
func (s *Store) ReadFile(p string) ([]byte, error) {
	p = Clean(p)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := s.lookup(p)
	if err != nil {
		return nil, newError(OpReadFile, p, err)
	}
	if n.kind == KindDirectory {
		return nil, newError(OpReadFile, p, ErrIsDirectory)
	}
	out := make([]byte, len(n.data))
	copy(out, n.data)
	return out, nil
}

// Stat describes the node at p.
func (s *Store) Stat(p string) (Entry, error) {
	p = Clean(p)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := s.lookup(p)
	if err != nil {
		return Entry{}, newError(OpStat, p, err)
	}
	return entryFor(p, n), nil
}

// Exists reports whether any node lives at p.
func (s *Store) Exists(p string) bool {
	_, err := s.Stat(p)
	return err == nil
}

// ReadDir lists the children of the directory at p sorted by name.
func (s *Store) ReadDir(p string) ([]Entry, error) {
	p = Clean(p)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := s.lookup(p)
	if err != nil {
		return nil, newError(OpReadDir, p, err)
	}
	if n.kind != KindDirectory {
		return nil, newError(OpReadDir, p, ErrNotDirectory)
	}
	return listChildren(p, n), nil
}

// Walk visits p and everything below it depth-first in name order. An
// error returned by fn stops the walk and is returned.
func (s *Store) Walk(p string, fn func(Entry) error) error {
	p = Clean(p)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, err := s.lookup(p)
	if err != nil {
		return newError(OpStat, p, err)
	}
	return walk(p, n, fn)
}

func walk(p string, n *node, fn func(Entry) error) error {
	if err := fn(entryFor(p, n)); err != nil {
		return err
	}
	if n.kind != KindDirectory {
		return nil
	}
	for _, child := range listChildren(p, n) {
		if err := walk(child.Path, n.children[child.Name], fn); err != nil {
			return err
		}
	}
	return nil
}

func listChildren(p string, n *node) []Entry {
	entries := make([]Entry, 0, len(n.children))
	for name, child := range n.children {
		entries = append(entries, entryFor(join(p, name), child))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func entryFor(p string, n *node) Entry {
	name := Base(p)
	return Entry{
		Name:    name,
		Path:    p,
		Kind:    n.kind,
		Size:    int64(len(n.data)),
		ModTime: n.modTime,
	}
}

func join(dir, name string) string {
	if dir == "/" {
		return "/" + name
	}
	return dir + "/" + name
}
