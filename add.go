package t3ui

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Prompter asks the operator questions. Implementations may be interactive
// terminals or scripted answers in tests.
type Prompter interface {
	AskText(msg string) (string, error)
	AskChoice(msg string, options []string) (string, error)
}

// Prompt messages shown by Add.
const (
	DestinationPrompt = "Where do you want to add this component?"
	ComponentPrompt   = "Which component do you want to add?"
)

// AddConfig holds everything Add needs. Nothing is read from ambient process
// state; the CLI fills these fields in.
type AddConfig struct {
	ProjectRoot   string         // directory holding t3ui.config.json and the Tailwind config
	Library       fs.FS          // component library
	Prompter      Prompter       // destination and component questions
	Checker       PackageChecker // helper package lookup
	HelperPackage string         // defaults to DefaultHelperPackage
	Component     string         // preselected component; prompt when empty
	Destination   string         // overrides the stored destination for this run without saving it
	SkipChecks    bool           // skip the prerequisite validator
	Logger        *log.Logger    // diagnostics; discarded when nil
}

// AddResult describes a completed add.
type AddResult struct {
	Component     string
	Destination   string   // absolute component directory
	Files         []string // slash-separated paths copied, relative to Destination
	ConfigCreated bool     // t3ui.config.json was written on this run
	Warnings      []string
}

// Message is the confirmation printed after a successful add.
func (r *AddResult) Message() string {
	return fmt.Sprintf("Component %s was added to %s", r.Component, r.Destination)
}

// Add is the main entry point: it establishes the destination, validates the
// project, asks for a component and copies it. Any failure aborts the run.
func Add(ctx context.Context, config AddConfig) (*AddResult, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	result := &AddResult{}

	// 1. Destination
	destination, created, err := establishDestination(config, logger)
	if err != nil {
		return nil, err
	}
	result.ConfigCreated = created

	// 2. Prerequisites
	tailwindConfig := ""
	if config.SkipChecks {
		logger.Warn("skipping prerequisite checks")
	} else {
		logger.Info("checking prerequisites", "package", helperPackage(config))
		v := Validator{
			Root:          config.ProjectRoot,
			HelperPackage: config.HelperPackage,
			Checker:       config.Checker,
		}
		tailwindConfig, err = v.Validate(ctx)
		if err != nil {
			return nil, err
		}
		logger.Debug("prerequisites satisfied", "tailwind", tailwindConfig)
	}

	// 3. Component
	catalog, err := NewCatalog(config.Library)
	if err != nil {
		return nil, err
	}
	component, err := chooseComponent(catalog, config)
	if err != nil {
		return nil, err
	}
	result.Component = component

	// 4. Paths
	dest, err := ResolveDestination(config.ProjectRoot, destination, component)
	if err != nil {
		return nil, err
	}
	result.Destination = dest
	logger.Debug("resolved destination", "component", component, "path", dest)

	// 5. Copy
	files, err := CopyComponent(catalog, component, dest)
	if err != nil {
		return nil, err
	}
	result.Files = files
	logger.Debug("copied component", "files", len(files))

	if rel, ok := projectRelative(config.ProjectRoot, dest); ok {
		if tailwindConfig != "" {
			if w := coverageWarning(config.ProjectRoot, tailwindConfig, rel, files, logger); w != "" {
				result.Warnings = append(result.Warnings, w)
			}
		}
		if w := gitIgnoreWarning(config.ProjectRoot, rel, files); w != "" {
			result.Warnings = append(result.Warnings, w)
		}
	}

	return result, nil
}

// establishDestination returns the destination for this run and whether the
// config record was created by it.
func establishDestination(config AddConfig, logger *log.Logger) (string, bool, error) {
	if config.Destination != "" {
		logger.Debug("using destination override", "destination", config.Destination)
		return config.Destination, false, nil
	}

	destination, found, err := LoadDestination(config.ProjectRoot)
	if err != nil {
		return "", false, err
	}
	if found {
		logger.Debug("loaded destination", "file", ConfigFileName, "destination", destination)
		return destination, false, nil
	}

	destination, err = config.Prompter.AskText(DestinationPrompt)
	if err != nil {
		return "", false, fmt.Errorf("reading destination: %w", err)
	}
	if err := SaveDestination(config.ProjectRoot, destination); err != nil {
		return "", false, err
	}
	logger.Info("saved destination", "file", ConfigFileName, "destination", destination)
	return destination, true, nil
}

func chooseComponent(catalog *Catalog, config AddConfig) (string, error) {
	names, err := catalog.Names()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", ErrEmptyCatalog
	}

	if config.Component != "" {
		for _, n := range names {
			if n == config.Component {
				return n, nil
			}
		}
		return "", fmt.Errorf("%w %q (available: %s)", ErrUnknownComponent, config.Component, strings.Join(names, ", "))
	}

	component, err := config.Prompter.AskChoice(ComponentPrompt, names)
	if err != nil {
		return "", fmt.Errorf("reading component: %w", err)
	}
	return component, nil
}

// projectRelative returns dest as a slash path relative to root.
// ok is false when dest lies outside root.
func projectRelative(root, dest string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// coverageWarning returns a warning when none of the copied files is matched
// by the Tailwind content globs. Configs without a content property are not
// checked.
func coverageWarning(root, tailwindConfig, rel string, files []string, logger *log.Logger) string {
	globs, err := ReadContentGlobs(filepath.Join(root, tailwindConfig))
	if err != nil {
		logger.Debug("could not read tailwind config", "err", err)
		return ""
	}
	if len(globs) == 0 {
		return ""
	}

	for _, f := range files {
		if CoveredBy(globs, path.Join(rel, f)) {
			return ""
		}
	}
	return fmt.Sprintf("content globs in %s do not match %s; Tailwind will not generate its classes", tailwindConfig, rel)
}

// gitIgnoreWarning returns a warning when the project's .gitignore matches a
// copied file.
func gitIgnoreWarning(root, rel string, files []string) string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = path.Join(rel, f)
	}
	if p, ok := GitIgnored(root, paths); ok {
		return fmt.Sprintf("%s is matched by %s and will not be committed", p, GitIgnoreFile)
	}
	return ""
}

func helperPackage(config AddConfig) string {
	if config.HelperPackage != "" {
		return config.HelperPackage
	}
	return DefaultHelperPackage
}
