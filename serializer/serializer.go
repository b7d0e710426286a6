// Package serializer renders inventory output for stdout consumption.
// JSON is the default and what orchestration tools expect; YAML is kept
// for humans inspecting the inventory by hand.
package serializer

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Format is an output format identifier
type Format string

// Supported output formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// IsValid reports whether the format is one of the supported ones
func (f Format) IsValid() bool {
	return f == FormatJSON || f == FormatYAML
}

// Marshal renders data in the given format. JSON output carries sorted
// keys and two-space indentation, matching the cache artifact format
func Marshal(f Format, data interface{}) ([]byte, error) {
	if f == FormatYAML {
		return yaml.Marshal(data)
	}
	return json.MarshalIndent(data, "", "  ")
}
