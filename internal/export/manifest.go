package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the sidecar metadata artifact describing an output table to the
// hosting platform.
type Manifest struct {
	Incremental bool     `json:"incremental"`
	PrimaryKey  []string `json:"primary_key"`
}

// WriteManifest writes the manifest for the table at the given path, as a
// sidecar file named '<table>.manifest'. Callers are expected to invoke this
// only after the table content has been fully written, so the platform never
// observes a manifest describing an incomplete table.
func WriteManifest(tablePath string, manifest Manifest) error {
	manifestBytes, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode manifest for table '%s': %w", tablePath, err)
	}

	manifestPath := tablePath + ".manifest"
	if err := os.WriteFile(manifestPath, manifestBytes, 0o600); err != nil {
		return fmt.Errorf("failed to write manifest at path '%s': %w", manifestPath, err)
	}

	return nil
}
