package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a unique key violation.
	ErrAlreadyExists = errors.New("already exists")
)
