// Package encoding provides utilities for encoding and decoding data.
package encoding

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent is the indentation used for human-facing JSON documents.
const Indent = "  "

// ParseJSON unmarshals JSON data into the provided type.
// Returns an error if parsing fails.
func ParseJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}

// ToJSON marshals a value to compact JSON bytes.
func ToJSON[T any](value T) ([]byte, error) {
	return json.Marshal(value)
}

// ToJSONIndent marshals a value to JSON indented with two spaces.
func ToJSONIndent[T any](value T) ([]byte, error) {
	return json.MarshalIndent(value, "", Indent)
}

// SplitArray checks that data is a JSON array and returns its raw elements.
// Anything else, including null, is reported as an error.
func SplitArray(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("document is not a JSON array")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("failed to parse JSON array: %w", err)
	}

	if elems == nil {
		elems = []json.RawMessage{}
	}

	return elems, nil
}
