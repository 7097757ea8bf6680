package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/t3ui"
	tui "github.com/yacobolo/t3ui/internal/t3ui"
	"github.com/yacobolo/t3ui/library"
)

var addCmd = &cobra.Command{
	Use:   "add [component]",
	Short: "Add a component to your project",
	Long: `Copy a component from the library into the destination directory.
Without an argument you are asked to pick one. Existing files are overwritten.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE:              runAdd,
	ValidArgsFunction: completeComponents,
}

func init() {
	f := addCmd.Flags()
	f.String("dir", "", "Destination directory for this run (t3ui.config.json is not changed)")
	f.String("package-manager", "", "Package manager used to look up the helper package: npm|pnpm|yarn|bun (default: from lockfile)")
	f.String("helper-package", t3ui.DefaultHelperPackage, "Package every component depends on")
	f.Bool("skip-checks", false, "Skip the Tailwind config and helper package checks")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s := buildSettings()

	root, err := filepath.Abs(s.Root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	lib, err := openLibrary(s.Library)
	if err != nil {
		return err
	}

	pm := t3ui.DetectPackageManager(root)
	if s.PackageManager != "" {
		if pm, err = t3ui.LookupPackageManager(s.PackageManager); err != nil {
			return err
		}
	}

	config := t3ui.AddConfig{
		ProjectRoot:   root,
		Library:       lib,
		Prompter:      newPrompter(cmd),
		Checker:       t3ui.CommandChecker{Manager: pm, Dir: root},
		HelperPackage: s.HelperPackage,
		Destination:   s.Destination,
		SkipChecks:    s.SkipChecks,
		Logger:        newLogger(cmd, s.Verbose),
	}
	if len(args) > 0 {
		config.Component = args[0]
	}

	result, err := t3ui.Add(cmd.Context(), config)
	if err != nil {
		return err
	}

	reporter := tui.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.Color, s.Quiet)
	for _, w := range result.Warnings {
		reporter.Warn(w)
	}
	reporter.Success(result.Message())
	return nil
}

// openLibrary returns the bundled library, or dir when set.
func openLibrary(dir string) (fs.FS, error) {
	if dir == "" {
		return library.FS(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening library: %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// newPrompter uses the terminal when the command is wired to real files and
// falls back to line prompts otherwise.
func newPrompter(cmd *cobra.Command) t3ui.Prompter {
	in, inOK := cmd.InOrStdin().(*os.File)
	out, outOK := cmd.OutOrStdout().(*os.File)
	if inOK && outOK {
		return tui.NewPrompter(in, out)
	}
	return tui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

func newLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "t3ui"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func completeComponents(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir, _ := cmd.Flags().GetString("library")
	lib, err := openLibrary(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	catalog, err := t3ui.NewCatalog(lib)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := catalog.Names()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
