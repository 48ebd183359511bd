package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Manifest is the typed view of the fields this tool cares about. Parse
// uses it for display purposes only; updates go through SetVersion so
// unknown fields are never dropped.
type Manifest struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version"`
}

// Parse reads a manifest file and returns its typed view.
func Parse(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// ReadVersion reads a manifest file and extracts its version field.
// A missing version key or a non-string value is an error.
func ReadVersion(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("parsing manifest %s: invalid JSON", path)
	}

	res := gjson.GetBytes(data, "version")
	if !res.Exists() {
		return "", fmt.Errorf("manifest %s has no version field", path)
	}
	if res.Type != gjson.String {
		return "", fmt.Errorf("manifest %s: version field is not a string", path)
	}
	return res.String(), nil
}

// SetVersion rewrites the version field of the manifest at path and writes
// the document back with two-space indentation, returning the value the
// field held before. All other fields keep their value bytes and their
// order. A manifest without a version field is an error; SetVersion never
// introduces the key.
func SetVersion(path, version string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("parsing manifest %s: invalid JSON", path)
	}
	prev := gjson.GetBytes(data, "version")
	if !prev.Exists() {
		return "", fmt.Errorf("manifest %s has no version field", path)
	}

	updated, err := sjson.SetBytes(data, "version", version)
	if err != nil {
		return "", fmt.Errorf("updating version in %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, updated, "", "  "); err != nil {
		return "", fmt.Errorf("formatting manifest %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return prev.String(), nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
