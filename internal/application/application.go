package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "projtrack"

	// EnvPrefix prefixes every environment variable the application reads
	EnvPrefix = "PROJTRACK_"

	// EnvHome overrides the application directory
	EnvHome = EnvPrefix + "HOME"
)

// GetApplicationDirectory returns the projtrack data directory path.
// PROJTRACK_HOME wins when set; otherwise
// Linux: ~/.config/projtrack (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\projtrack (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(baseDir, AppName), nil
}
