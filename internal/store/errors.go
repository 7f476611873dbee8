package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateAccount is returned when an insert hits the unique index on account.
var ErrDuplicateAccount = errors.New("duplicate account")
