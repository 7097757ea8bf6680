package t3ui

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Add and the catalog.
var (
	ErrEmptyCatalog     = errors.New("component library is empty")
	ErrUnknownComponent = errors.New("unknown component")
)

// PrerequisiteCheck names the project check that failed.
type PrerequisiteCheck string

// Prerequisite checks, in the order they run.
const (
	MissingTailwindConfig PrerequisiteCheck = "missing_tailwind_config"
	MissingPackage        PrerequisiteCheck = "missing_package"
)

// ConfigParseError reports a t3ui.config.json that exists but is not valid JSON.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// PrerequisiteError reports a project that lacks Tailwind or the helper package.
type PrerequisiteError struct {
	Check  PrerequisiteCheck
	Detail string
}

func (e *PrerequisiteError) Error() string {
	return e.Detail
}

// PathResolutionError reports a destination that cannot be turned into an absolute path.
type PathResolutionError struct {
	Destination string
	Err         error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("could not resolve destination path %q: %v", e.Destination, e.Err)
}

func (e *PathResolutionError) Unwrap() error { return e.Err }

// CopyError reports a failure partway through copying a component.
// Files copied before the failure are left in place.
type CopyError struct {
	Component string
	Path      string
	Err       error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("could not copy component %s (%s): %v", e.Component, e.Path, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
