package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/inovacc/projtrack/internal/auth"
	"github.com/inovacc/projtrack/internal/project"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEmptyName, "Please enter project name."},
		{auth.ErrEmptyPassword, "Enter password."},
		{auth.ErrNotConfigured, "No edit-password set. Please set password first."},
		{auth.ErrDenied, "Wrong password."},
		{fmt.Errorf("%w: 12", project.ErrNotFound), "Project not found."},
		{project.ErrInvalidFormat, "JSON does not contain valid projects array."},
		{ErrNothingToExport, "No projects to export."},
		{errors.New("disk full"), "Action failed: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
