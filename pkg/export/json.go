package export

import (
	"encoding/json"
	"os"

	"github.com/dshills/floorplangen/pkg/floorplan"
)

// ExportJSON serializes a variant to JSON with indentation.
// Returns formatted JSON with 2-space indentation for readability.
func ExportJSON(variant *floorplan.Variant) ([]byte, error) {
	return json.MarshalIndent(variant, "", "  ")
}

// ExportJSONCompact serializes a variant to JSON without indentation.
// Returns compact JSON suitable for storage or transmission.
func ExportJSONCompact(variant *floorplan.Variant) ([]byte, error) {
	return json.Marshal(variant)
}

// ExportJSONVariants serializes a full batch of variants with indentation.
func ExportJSONVariants(variants []*floorplan.Variant) ([]byte, error) {
	return json.MarshalIndent(variants, "", "  ")
}

// SaveJSONToFile exports a variant to a JSON file with indentation.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveJSONToFile(variant *floorplan.Variant, filepath string) error {
	data, err := ExportJSON(variant)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONCompactToFile exports a variant to a compact JSON file.
// The file is created with 0644 permissions (readable by all, writable by owner).
func SaveJSONCompactToFile(variant *floorplan.Variant, filepath string) error {
	data, err := ExportJSONCompact(variant)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// SaveJSONVariantsToFile exports a full batch of variants to a single
// JSON file with indentation.
func SaveJSONVariantsToFile(variants []*floorplan.Variant, filepath string) error {
	data, err := ExportJSONVariants(variants)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
