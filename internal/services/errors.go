package services

import "errors"

// ErrNotFound is returned by read-by-id and update operations when no record
// with the given id exists. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")
