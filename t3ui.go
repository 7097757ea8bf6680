// Package t3ui copies bundled UI components into a Tailwind project.
//
// A component is a directory of front-end source files. t3ui records where
// components go in t3ui.config.json, checks that the project has a Tailwind
// config and the class-variance-authority package, and copies the chosen
// component verbatim.
//
// # Adding a component
//
//	result, err := t3ui.Add(ctx, t3ui.AddConfig{
//		ProjectRoot: ".",
//		Library:     library.FS(),
//		Prompter:    prompter,
//		Checker:     t3ui.CommandChecker{Manager: t3ui.DetectPackageManager("."), Dir: "."},
//	})
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/t3ui/cmd/t3ui@latest
package t3ui

// Public API:
// - Add(ctx, AddConfig) (*AddResult, error)
// - NewCatalog(fs.FS) (*Catalog, error)
// - LoadDestination / SaveDestination
// - Validator.Validate(ctx) (string, error)
// - ResolveDestination / CopyComponent
// - ContentGlobs / CoveredBy
// - GitIgnored
