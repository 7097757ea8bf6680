package t3ui

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultHelperPackage is the npm package every bundled component imports.
const DefaultHelperPackage = "class-variance-authority"

// TailwindConfigPattern matches both recognized Tailwind config names.
const TailwindConfigPattern = "tailwind.config.{ts,js}"

// PackageChecker reports whether an npm package is installed in a project.
type PackageChecker interface {
	HasPackage(ctx context.Context, name string) bool
}

// PackageManager describes how to ask a package manager about one package.
type PackageManager struct {
	Name     string
	ListArgs []string // arguments before the package name
}

// Supported package managers, keyed by binary name.
var PackageManagers = map[string]PackageManager{
	"npm":  {Name: "npm", ListArgs: []string{"list"}},
	"pnpm": {Name: "pnpm", ListArgs: []string{"list"}},
	"yarn": {Name: "yarn", ListArgs: []string{"list", "--pattern"}},
	"bun":  {Name: "bun", ListArgs: []string{"pm", "ls"}},
}

// lockfiles maps a lockfile to the package manager that writes it.
// Checked in order; npm is the fallback.
var lockfiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"bun.lock", "bun"},
}

// DetectPackageManager picks a package manager from the lockfile in root.
func DetectPackageManager(root string) PackageManager {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, lf.file)); err == nil {
			return PackageManagers[lf.manager]
		}
	}
	return PackageManagers["npm"]
}

// LookupPackageManager returns the package manager registered under name.
func LookupPackageManager(name string) (PackageManager, error) {
	pm, ok := PackageManagers[name]
	if !ok {
		return PackageManager{}, fmt.Errorf("unsupported package manager %q", name)
	}
	return pm, nil
}

// CommandChecker asks a package manager binary whether a package is installed.
// Only the exit code is consumed: zero means installed.
type CommandChecker struct {
	Manager PackageManager
	Dir     string
}

// HasPackage runs the manager's list command. A missing binary, a non-zero
// exit or any other failure counts as not installed.
func (c CommandChecker) HasPackage(ctx context.Context, name string) bool {
	args := append(append([]string{}, c.Manager.ListArgs...), name)
	cmd := exec.CommandContext(ctx, c.Manager.Name, args...)
	cmd.Dir = c.Dir
	return cmd.Run() == nil
}

// Validator checks a project for Tailwind and the helper package.
type Validator struct {
	Root          string
	FS            fs.FS // project files; os.DirFS(Root) when nil
	HelperPackage string
	Checker       PackageChecker
}

// Validate runs the Tailwind config check, then the package check.
// It returns the Tailwind config file name on success. Every failure is a
// *PrerequisiteError.
func (v Validator) Validate(ctx context.Context) (string, error) {
	fsys := v.FS
	if fsys == nil {
		fsys = os.DirFS(v.Root)
	}
	tailwindConfig, err := findTailwindConfig(fsys)
	if err != nil {
		return "", &PrerequisiteError{Check: MissingTailwindConfig, Detail: err.Error()}
	}
	if tailwindConfig == "" {
		return "", &PrerequisiteError{
			Check:  MissingTailwindConfig,
			Detail: "tailwind.config.js or tailwind.config.ts not found in root of project directory",
		}
	}

	pkg := v.HelperPackage
	if pkg == "" {
		pkg = DefaultHelperPackage
	}
	if v.Checker == nil || !v.Checker.HasPackage(ctx, pkg) {
		return "", &PrerequisiteError{
			Check:  MissingPackage,
			Detail: fmt.Sprintf("npm package %s not found", pkg),
		}
	}

	return tailwindConfig, nil
}

// FindTailwindConfig returns the first Tailwind config name present in root,
// preferring TypeScript, or "" when neither exists.
func FindTailwindConfig(root string) (string, error) {
	return findTailwindConfig(os.DirFS(root))
}

func findTailwindConfig(fsys fs.FS) (string, error) {
	matches, err := doublestar.Glob(fsys, TailwindConfigPattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return "", fmt.Errorf("looking for tailwind config: %w", err)
	}
	for _, name := range []string{"tailwind.config.ts", "tailwind.config.js"} {
		for _, m := range matches {
			if m == name {
				return name, nil
			}
		}
	}
	return "", nil
}
