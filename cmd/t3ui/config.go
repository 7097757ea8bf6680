package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/t3ui"
)

// defaultSettingsFile holds tool settings. It is separate from
// t3ui.config.json, which only records the component destination.
const defaultSettingsFile = ".t3ui.yaml"

var k = koanf.New(".")

// settings are the resolved tool options for one invocation.
type settings struct {
	Root           string
	Library        string
	Destination    string
	PackageManager string
	HelperPackage  string
	SkipChecks     bool
	Verbose        bool
	Quiet          bool
	Color          bool
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultSettingsFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (T3UI_* prefix)
	if err := k.Load(env.Provider("T3UI_", ".", func(s string) string {
		// T3UI_VERBOSE -> verbose
		// T3UI_ADD__PACKAGE_MANAGER -> add.package-manager
		s = strings.ToLower(strings.TrimPrefix(s, "T3UI_"))
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ReplaceAll(s, "_", "-")
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildSettings resolves tool options from koanf state.
func buildSettings() settings {
	return settings{
		Root:           getStringWithFallback("root", "root", "."),
		Library:        getStringWithFallback("library", "library", ""),
		Destination:    getStringWithFallback("dir", "add.dir", ""),
		PackageManager: getStringWithFallback("package-manager", "add.package-manager", ""),
		HelperPackage:  getStringWithFallback("helper-package", "add.helper-package", t3ui.DefaultHelperPackage),
		SkipChecks:     getBoolWithFallback("skip-checks", "add.skip-checks", false),
		Verbose:        getBoolWithFallback("verbose", "verbose", false),
		Quiet:          getBoolWithFallback("quiet", "quiet", false),
		Color:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
