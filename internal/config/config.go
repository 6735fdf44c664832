package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// configuration parameter names as they appear in config.json; the leading
// '#' marks a value the platform stores encrypted.
const (
	KeyAddress    = "address"
	KeyAPIKey     = "#api_key"
	KeyStartBlock = "start_block"
	KeyEndBlock   = "end_block"
	KeyPage       = "page"
	KeyOffset     = "offset"
	KeySort       = "sort"
	KeyDebug      = "debug"
)

// Parameters holds the component's configuration as supplied by the hosting
// platform. Optional numeric fields are pointers so that an absent key can be
// told apart from a key explicitly set to zero.
type Parameters struct {
	Address    string  `json:"address"`
	APIKey     string  `json:"#api_key"`
	StartBlock *int    `json:"start_block"`
	EndBlock   *int    `json:"end_block"`
	Page       *int    `json:"page"`
	Offset     *int    `json:"offset"`
	Sort       *string `json:"sort"`
	Debug      bool    `json:"debug"`
}

// Config is the platform-supplied configuration file for one run.
type Config struct {
	Parameters Parameters `json:"parameters"`
}

// Load reads and decodes config.json from the root of the given data
// directory.
func Load(dataDir string) (*Config, error) {
	configPath := filepath.Join(dataDir, "config.json")

	configBytes, err := os.ReadFile(configPath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration at path '%s': %w", configPath, err)
	}

	var cfg Config
	if err := json.Unmarshal(configBytes, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration at path '%s': %w", configPath, err)
	}

	return &cfg, nil
}

// ValidateRequired checks that every mandatory parameter is present, reporting
// all missing parameters in a single message so a user can fix the
// configuration in one pass.
func (p *Parameters) ValidateRequired() error {
	var missing []string

	if p.Address == "" {
		missing = append(missing, KeyAddress)
	}

	if p.APIKey == "" {
		missing = append(missing, KeyAPIKey)
	}

	if len(missing) > 0 {
		return fmt.Errorf(
			"missing required configuration parameter(s): %s",
			strings.Join(missing, ", "),
		)
	}

	return nil
}

// OutTablePath resolves the path at which an output table of the given file
// name is to be written within the data directory.
func OutTablePath(dataDir string, fileName string) string {
	return filepath.Join(dataDir, "out", "tables", fileName)
}
