package repository

import "errors"

// ErrNotFound is returned when an identifier does not resolve to a stored
// document. Invalid identifiers are treated the same way.
var ErrNotFound = errors.New("not found")
