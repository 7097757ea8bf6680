package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/t3ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create t3ui.config.json",
	Long: `Record where components are added, without adding one.
Uses --dir when given and asks otherwise.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := buildSettings()
		force, _ := cmd.Flags().GetBool("force")
		// add.dir from the settings file does not apply here
		destination, _ := cmd.Flags().GetString("dir")

		root, err := filepath.Abs(s.Root)
		if err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}

		if _, err := os.Stat(t3ui.ConfigPath(root)); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", t3ui.ConfigFileName)
		}

		if destination == "" {
			if destination, err = newPrompter(cmd).AskText(t3ui.DestinationPrompt); err != nil {
				return fmt.Errorf("reading destination: %w", err)
			}
		}

		if err := t3ui.SaveDestination(root, destination); err != nil {
			return err
		}

		if !s.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", t3ui.ConfigFileName)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().String("dir", "", "Component destination directory")
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
