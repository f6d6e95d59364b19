package interfaces

import "errors"

// ErrConcurrentModification is returned by repositories when a conditional
// write is rejected because the record changed between the caller's read and
// its write. Callers may re-read and retry a bounded number of times.
var ErrConcurrentModification = errors.New("concurrent modification")

// ErrRecordNotFound is returned by repositories when an update targets a
// record that no longer exists (deleted between the caller's read and its
// write).
var ErrRecordNotFound = errors.New("record not found")
