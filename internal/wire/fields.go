// Package wire decodes JSON objects one field at a time, so a field of the
// wrong type is reported and skipped without losing its siblings.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Fields is a JSON object split into its raw members.
type Fields map[string]json.RawMessage

// Parse splits data into fields. Empty input and null yield no fields;
// anything else that is not an object is an error.
func Parse(data []byte) (Fields, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Fields{}, nil
	}
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return Fields{}, err
	}
	if f == nil {
		f = Fields{}
	}
	return f, nil
}

// Raw returns the member or nil when it is absent or null.
func (f Fields) Raw(key string) json.RawMessage {
	raw, ok := f[key]
	if !ok || isNull(raw) {
		return nil
	}
	return raw
}

// Float decodes a number. Absent and null members are nil without error.
func (f Fields) Float(key string) (*float64, error) {
	var v float64
	ok, err := f.decode(key, &v)
	if !ok {
		return nil, err
	}
	return &v, nil
}

func (f Fields) Bool(key string) (*bool, error) {
	var v bool
	ok, err := f.decode(key, &v)
	if !ok {
		return nil, err
	}
	return &v, nil
}

// List decodes an array into its raw elements.
func (f Fields) List(key string) ([]json.RawMessage, error) {
	var v []json.RawMessage
	_, err := f.decode(key, &v)
	return v, err
}

func (f Fields) decode(key string, v any) (bool, error) {
	raw := f.Raw(key)
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return true, nil
}

// Errors collects field errors; Err joins them.
type Errors []error

func (e *Errors) Add(err error) {
	if err != nil {
		*e = append(*e, err)
	}
}

func (e Errors) Err() error {
	return errors.Join(e...)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
