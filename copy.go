package t3ui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ResolveDestination returns the absolute directory a component is copied
// to. Relative destinations are taken relative to root.
func ResolveDestination(root, destination, component string) (string, error) {
	if destination == "" {
		return "", &PathResolutionError{Destination: destination, Err: errors.New("destination is empty")}
	}

	p := destination
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	abs, err := filepath.Abs(filepath.Join(p, component))
	if err != nil {
		return "", &PathResolutionError{Destination: destination, Err: err}
	}
	return abs, nil
}

// CopyComponent copies every catalog file of component into dest, creating
// directories as needed and overwriting existing files. It returns the
// slash-separated paths copied. A failure leaves earlier files in place.
func CopyComponent(c *Catalog, component, dest string) ([]string, error) {
	src, err := c.FS(component)
	if err != nil {
		return nil, &CopyError{Component: component, Path: component, Err: err}
	}

	files, err := c.Files(component)
	if err != nil {
		return nil, &CopyError{Component: component, Path: component, Err: err}
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, &CopyError{Component: component, Path: dest, Err: err}
	}

	for _, f := range files {
		if err := copyFile(src, f, filepath.Join(dest, filepath.FromSlash(f))); err != nil {
			return nil, &CopyError{Component: component, Path: f, Err: err}
		}
	}

	return files, nil
}

func copyFile(src fs.FS, name, target string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return err
	}

	info, err := fs.Stat(src, name)
	if err != nil {
		return err
	}

	// Embedded files report 0444; copies must stay writable so a second
	// add can overwrite them.
	perm := fs.FileMode(0644)
	if info.Mode()&0111 != 0 {
		perm = 0755
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	return os.WriteFile(target, data, perm)
}
