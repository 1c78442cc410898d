// Package jsonutil provides shared helpers for decoding JSON payloads with
// contextual error messages.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodyBytes bounds how much of a response body DecodeBody will read.
const MaxBodyBytes = 1 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeBody reads at most MaxBodyBytes from r and unmarshals it into v.
// An empty body is an error.
func DecodeBody(r io.Reader, v any, context string) error {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", context, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	return UnmarshalWithContext(data, v, context)
}

// Snippet returns the first n bytes of data as a string, for error messages.
func Snippet(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
