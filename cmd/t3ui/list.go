package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/t3ui"
	tui "github.com/yacobolo/t3ui/internal/t3ui"
)

// listEntry is one component in `list --format json`.
type listEntry struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the components in the library",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := buildSettings()

		lib, err := openLibrary(s.Library)
		if err != nil {
			return err
		}
		catalog, err := t3ui.NewCatalog(lib)
		if err != nil {
			return err
		}
		names, err := catalog.Names()
		if err != nil {
			return err
		}

		format := getStringWithFallback("format", "list.format", "text")
		switch format {
		case "text":
			tui.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), s.Color, false).List(names)
			return nil
		case "json":
			entries := make([]listEntry, 0, len(names))
			for _, name := range names {
				files, err := catalog.Files(name)
				if err != nil {
					return err
				}
				entries = append(entries, listEntry{Name: name, Files: files})
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		default:
			return fmt.Errorf("unknown format %q (use text or json)", format)
		}
	},
}

func init() {
	listCmd.Flags().String("format", "text", "Output format: text|json")
}
