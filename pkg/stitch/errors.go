package stitch

import "errors"

// Sentinel errors for the two fatal failure classes. Per-file parse and read
// failures never surface here; they are reported as Skip values instead.
var (
	// ErrDirectoryNotFound reports that the source path does not exist or is
	// not a directory.
	ErrDirectoryNotFound = errors.New("source directory not found")

	// ErrWrite reports that the output document or manifest could not be
	// created or fully written.
	ErrWrite = errors.New("write failed")
)
