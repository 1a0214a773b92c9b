package repositories

import "errors"

// Sentinel errors separating the "not there" outcomes from real store
// faults. Anything else returned by a repository is a store fault and maps
// to a 500 upstream.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already exists")
)
