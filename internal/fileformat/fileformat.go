// Package fileformat normalizes JSON and YAML input files into JSON so that
// every loader can validate and decode a single representation.
package fileformat

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of an input file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FromPath picks a format from the file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ToJSON returns data re-encoded as JSON. JSON input is returned unchanged.
func ToJSON(data []byte, f Format) ([]byte, error) {
	if f != YAML {
		return data, nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	return out, nil
}

// ParseScalar interprets a command-line value the way YAML would:
// "true" becomes a bool, "12" an int, "0.5" a float, anything else a string.
func ParseScalar(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case bool, int, float64, string:
		return v
	default:
		return s
	}
}

// Number converts a decoded numeric value (any Go integer or float kind,
// or json.Number) to float64.
func Number(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
