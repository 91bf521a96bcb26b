// Package encoding provides helpers for reading and writing JSON and plain
// files on disk.
package encoding

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads a JSON file and unmarshals it into a new T.
// Returns nil, nil if the file does not exist.
func LoadJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return ParseJSON[T](data)
}

// ParseJSON unmarshals JSON data into a new T.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}

// SaveJSON marshals value as indented JSON and replaces path atomically.
// Either the whole document lands or the previous file is left intact.
func SaveJSON[T any](path string, value T, perm os.FileMode) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return WriteFileAtomic(path, append(data, '\n'), perm)
}
