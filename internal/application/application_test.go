package application

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetApplicationDirectory_HomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := GetApplicationDirectory()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestGetApplicationDirectory_Default(t *testing.T) {
	t.Setenv(EnvHome, "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := GetApplicationDirectory()
	require.NoError(t, err)
	assert.Equal(t, AppName, filepath.Base(got))
}
