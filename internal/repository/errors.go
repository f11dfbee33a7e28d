package repository

import "errors"

// ErrNotFound is returned when a requested product doesn't exist.
// This abstracts pgx.ErrNoRows so the service layer doesn't
// depend on driver internals.
var ErrNotFound = errors.New("not found")
