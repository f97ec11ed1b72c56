package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const configFileHeader = `# Combo builder configuration.
# Values can be overridden with COMBOBUILDER_* environment variables,
# e.g. COMBOBUILDER_SERVER_ADDR or COMBOBUILDER_SHOP_DOMAIN.

`

// WriteConfigFile writes the configuration as TOML, sections in declaration
// order, with a short usage header.
func WriteConfigFile(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(configFileHeader)

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
