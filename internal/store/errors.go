package store

import (
	"errors"
	"fmt"
)

var (
	// ErrPersistenceWrite is matched by every failure to open or write a store.
	ErrPersistenceWrite = errors.New("persistence write failure")
	// ErrPersistenceRead is matched by read failures other than a missing store.
	ErrPersistenceRead = errors.New("persistence read failure")
	// ErrMirrorWrite is matched when a snapshot mirror rejects a push.
	ErrMirrorWrite = errors.New("snapshot mirror failure")
)

// PersistError describes a failed file operation on one of the stores.
type PersistError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	switch target {
	case ErrPersistenceWrite:
		return e.Op == "write"
	case ErrPersistenceRead:
		return e.Op == "read"
	}
	return false
}

func writeError(path string, err error) error {
	return &PersistError{Op: "write", Path: path, Err: err}
}

func readError(path string, err error) error {
	return &PersistError{Op: "read", Path: path, Err: err}
}
