package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/etherscan"
)

// WriteCSV writes the given records to the writer as a UTF-8, comma-delimited
// CSV with a header row. The header is the union of all field names across
// the records, in first-seen order; for the uniform record sets the API
// returns, that is exactly the first record's field order. Fields missing
// from a record render as blank cells.
//
// An empty record set produces no output at all - a header-less, zero-row
// file is still a valid result.
func WriteCSV(writer io.Writer, records []etherscan.Record) error {
	if len(records) == 0 {
		return nil
	}

	header := headerFor(records)

	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(header))
	for _, record := range records {
		for i, fieldName := range header {
			// absent fields render blank
			row[i], _ = record.Get(fieldName)
		}

		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	csvWriter.Flush()

	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}

// WriteTableFile writes the records as a CSV file at the given path, creating
// parent directories as needed. Any existing file at the path is overwritten.
func WriteTableFile(tablePath string, records []etherscan.Record) error {
	if err := os.MkdirAll(filepath.Dir(tablePath), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory for table '%s': %w", tablePath, err)
	}

	tableFile, err := os.Create(tablePath) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to create output table at path '%s': %w", tablePath, err)
	}

	if err := WriteCSV(tableFile, records); err != nil {
		_ = tableFile.Close()

		return err
	}

	if err := tableFile.Close(); err != nil {
		return fmt.Errorf("failed to close output table at path '%s': %w", tablePath, err)
	}

	return nil
}

// headerFor computes the union of all field names across the records,
// preserving the order in which each name is first seen.
func headerFor(records []etherscan.Record) []string {
	var header []string

	seen := make(map[string]struct{})
	for _, record := range records {
		for _, fieldName := range record.Names() {
			if _, alreadySeen := seen[fieldName]; alreadySeen {
				continue
			}

			seen[fieldName] = struct{}{}
			header = append(header, fieldName)
		}
	}

	return header
}
