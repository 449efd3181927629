package interfaces

import "errors"

// ErrConflict is returned by conditional writes when the stored status no
// longer matches the caller's expectation. The entity itself still exists;
// callers re-read, re-validate and retry.
var ErrConflict = errors.New("conditional write conflict")

// ErrNotFound is returned by conditional writes when the record vanished
// between the caller's read and the write. Unlike ErrConflict there is
// nothing left to re-read, so retrying cannot help.
var ErrNotFound = errors.New("record not found")
