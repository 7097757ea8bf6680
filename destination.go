package t3ui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the per-project record of the component destination.
const ConfigFileName = "t3ui.config.json"

// destinationKey is the only key t3ui reads from ConfigFileName.
const destinationKey = "componentDirectory"

// ConfigPath returns the location of the destination record for a project root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}

// LoadDestination reads componentDirectory from the project's config file.
// found is false when the file does not exist. Unknown keys are ignored.
func LoadDestination(root string) (destination string, found bool, err error) {
	configPath := ConfigPath(root)

	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("checking %s: %w", configPath, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configPath), json.Parser()); err != nil {
		return "", true, &ConfigParseError{Path: configPath, Err: err}
	}

	return k.String(destinationKey), true, nil
}

// SaveDestination writes a fresh record with componentDirectory set to
// destination, replacing any existing file.
func SaveDestination(root, destination string) error {
	k := koanf.New(".")
	if err := k.Set(destinationKey, destination); err != nil {
		return fmt.Errorf("building config: %w", err)
	}

	data, err := k.Marshal(json.Parser())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	configPath := ConfigPath(root)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	return nil
}
