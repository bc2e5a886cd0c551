// Package parser isolates the extraction of a JSON object from a raw
// model reply. Models wrap their JSON in prose or code fences; every
// caller goes through this stage so the heuristic can be replaced by a
// stricter protocol without touching them.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoObject is returned when the reply contains no brace-delimited span.
var ErrNoObject = errors.New("no JSON object in reply")

// Object returns the first brace-delimited span of raw: everything from
// the first '{' through the last '}'. Greedy on purpose, so nested
// objects and fenced blocks survive intact.
func Object(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return "", ErrNoObject
	}
	return raw[start : end+1], nil
}

// Decode extracts the object span from raw and unmarshals it into v.
func Decode(raw string, v any) error {
	obj, err := Object(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("decode reply: %w", err)
	}
	return nil
}
