package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ewhitmore/habitkit/internal/errs"
)

type document struct {
	Version int                        `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// JSONStore keeps all values in a single JSON document, rewritten whole on
// every mutation.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &errs.StorageError{Op: "init", Err: err}
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Values:  make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitkit init' first")
		}
		return &errs.StorageError{Op: "read", Err: err}
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return &errs.StorageError{Op: "parse", Err: err}
	}

	if s.doc.Values == nil {
		s.doc.Values = make(map[string]json.RawMessage)
	}

	// The document is written indented, which re-indents the stored values.
	// Compact them on the way in so Get always returns the bytes as Set
	// received them.
	for key, value := range s.doc.Values {
		compacted, err := compact(value)
		if err != nil {
			return &errs.StorageError{Op: "parse", Key: key, Err: err}
		}
		s.doc.Values[key] = compacted
	}

	return nil
}

func compact(value []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return &errs.StorageError{Op: "serialize", Err: err}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return &errs.StorageError{Op: "write", Err: err}
	}

	return nil
}

func (s *JSONStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.doc == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.doc.Values[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *JSONStore) Set(ctx context.Context, key string, value []byte) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	// Compact validates and normalizes, so Get round-trips byte-identically
	// for compact input.
	compacted, err := compact(value)
	if err != nil {
		return &errs.StorageError{Op: "set", Key: key, Err: fmt.Errorf("value is not valid JSON: %w", err)}
	}
	s.doc.Values[key] = compacted
	return s.save()
}

func (s *JSONStore) Delete(ctx context.Context, key string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.doc.Values, key)
	return s.save()
}

func (s *JSONStore) Clear(ctx context.Context) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Values = make(map[string]json.RawMessage)
	return s.save()
}

func (s *JSONStore) Path() string { return s.path }
