package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// ConfigDir returns the platform config directory for app.
// It falls back to the executable dir, then the temp dir, when no home is available.
func ConfigDir(app string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, app)
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, app)
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		if execDir, execErr := GetExecutableDir(); execErr == nil {
			return execDir
		}
		return filepath.Join(os.TempDir(), app)
	}
	return filepath.Join(homeDir, ".config", app)
}

// ResolvePaths turns every entry of paths into an absolute path.
func ResolvePaths(paths []string) []string {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved = append(resolved, GetAbsolutePath(p))
	}
	return resolved
}
