package workspace

import (
	"sandboxenv/internal/logging"
	"sandboxenv/internal/memfs"
	"sandboxenv/internal/resource"
)

var (
	logger = logging.GetLogger().WithPrefix("workspace")
)

// Seeder writes a workspace into a store.
type Seeder struct {
	store *memfs.Store
	root  resource.URI
}

// NewSeeder returns a seeder for the workspace rooted at root.
func NewSeeder(store *memfs.Store, root resource.URI) *Seeder {
	return &Seeder{store: store, root: root}
}

// Root returns the workspace location.
func (s *Seeder) Root() resource.URI {
	return s.root
}

// CreateFolder ensures the folder rel exists below the workspace root. The
// empty name creates the root itself.
func (s *Seeder) CreateFolder(rel string) error {
	target := resource.JoinPath(s.root, rel)
	logger.Debug("Creating folder %s", target)
	return s.store.Mkdir(target.Path)
}

// CreateFile writes content to rel, replacing any previous content. The
// containing folder must already exist.
func (s *Seeder) CreateFile(rel, content string) error {
	target := resource.JoinPath(s.root, rel)
	logger.Debug("Creating file %s (%d bytes)", target, len(content))
	return s.store.WriteFile(target.Path, []byte(content), memfs.WriteOptions{Create: true, Overwrite: true})
}

// Seed creates every folder and then every file of m, in manifest order.
// Seeding the same manifest twice leaves the same tree.
func (s *Seeder) Seed(m Manifest) error {
	for _, folder := range m.Folders {
		if err := s.CreateFolder(folder); err != nil {
			return err
		}
	}
	for _, f := range m.Files {
		if err := s.CreateFile(f.Path, f.Content); err != nil {
			return err
		}
	}
	logger.Info("Seeded %d folders and %d files into %s", len(m.Folders), len(m.Files), s.root)
	return nil
}
