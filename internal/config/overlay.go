package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile merges a YAML configuration file on top of the current
// values. File values win over env defaults; fields absent from the file
// keep whatever was already loaded.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}
