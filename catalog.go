package t3ui

import (
	"fmt"
	"io/fs"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Catalog lists the components available in a library.
// The library is any fs.FS whose immediate child directories are components.
type Catalog struct {
	fsys fs.FS
}

// NewCatalog opens a catalog over fsys.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("component library is nil")
	}
	return &Catalog{fsys: fsys}, nil
}

// Names returns the component names in directory listing order.
// Every child directory is a component; plain files at the top level are not.
// The list is computed on every call.
func (c *Catalog) Names() ([]string, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing component library: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Has reports whether name is a component in the catalog.
func (c *Catalog) Has(name string) (bool, error) {
	names, err := c.Names()
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Files returns the slash-separated paths of every file in the component,
// relative to the component directory.
func (c *Catalog) Files(name string) ([]string, error) {
	sub, err := fs.Sub(c.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("opening component %s: %w", name, err)
	}

	var files []string
	err = doublestar.GlobWalk(sub, "**", func(p string, _ fs.DirEntry) error {
		files = append(files, p)
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("walking component %s: %w", name, err)
	}

	return files, nil
}

// FS returns the component's directory as its own file system.
func (c *Catalog) FS(name string) (fs.FS, error) {
	return fs.Sub(c.fsys, name)
}
