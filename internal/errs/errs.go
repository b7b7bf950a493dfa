// Package errs defines the error taxonomy shared across the habit engine.
package errs

import "fmt"

// ValidationError reports a malformed habit or profile input. Callers are
// expected to re-prompt; nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing a habit id that does not
// exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// StorageError wraps a failed persistence call. In-memory state may be ahead
// of durable state once one of these is returned.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// BackupFormatError reports a backup document that failed structural,
// provenance, or version validation. No restore happens past validation.
type BackupFormatError struct {
	Reason string
}

func (e *BackupFormatError) Error() string {
	return fmt.Sprintf("backup format error: %s", e.Reason)
}

// NetworkError wraps a failed call to a network collaborator.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network %s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
