// Package library bundles the components shipped with t3ui.
package library

import (
	"embed"
	"io/fs"
)

//go:embed all:components
var components embed.FS

// FS returns the bundled library rooted at the components directory.
func FS() fs.FS {
	sub, err := fs.Sub(components, "components")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return sub
}
