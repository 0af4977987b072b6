package project

import "errors"

var (
	// ErrNotFound is returned when no project has the requested id.
	ErrNotFound = errors.New("project not found")

	// ErrInvalidFormat is returned when a document or record set is not a
	// sequence of project records.
	ErrInvalidFormat = errors.New("invalid project data")
)
