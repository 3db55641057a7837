package treemap

import "errors"

// ErrNotFound is returned when a path segment does not exist.
var ErrNotFound = errors.New("not found")

// ErrExists is returned when inserting under a name the terminal directory
// already has a child for.
var ErrExists = errors.New("already exists")

// ErrNotDirectory is returned when a path traverses, or tries to create
// under, a node that is a file.
var ErrNotDirectory = errors.New("path is not a directory")

// ErrNotFile is returned when a file-only operation resolves to a directory.
var ErrNotFile = errors.New("path is not a file")
