package core

import (
	"errors"

	"github.com/inovacc/projtrack/internal/auth"
	"github.com/inovacc/projtrack/internal/project"
)

var (
	// ErrEmptyName is returned when the project name is blank.
	ErrEmptyName = errors.New("project name is required")
	// ErrNothingToExport is returned when exporting an empty collection.
	ErrNothingToExport = errors.New("no projects to export")
	// ErrNotConfirmed is returned when a delete confirmation is declined.
	ErrNotConfirmed = errors.New("operation not confirmed")
	// ErrParseNumber is returned by ParseNumber for non-numeric input.
	ErrParseNumber = errors.New("not a number")
)

// Message returns the notification shown to the user for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyName):
		return "Please enter project name."
	case errors.Is(err, auth.ErrEmptyPassword):
		return "Enter password."
	case errors.Is(err, auth.ErrNotConfigured):
		return "No edit-password set. Please set password first."
	case errors.Is(err, auth.ErrDenied):
		return "Wrong password."
	case errors.Is(err, auth.ErrBusy):
		return "Another password prompt is already open."
	case errors.Is(err, auth.ErrCancelled):
		return "Cancelled."
	case errors.Is(err, project.ErrNotFound):
		return "Project not found."
	case errors.Is(err, project.ErrInvalidFormat):
		return "JSON does not contain valid projects array."
	case errors.Is(err, ErrNothingToExport):
		return "No projects to export."
	case errors.Is(err, ErrNotConfirmed):
		return "Cancelled."
	default:
		return "Action failed: " + err.Error()
	}
}
