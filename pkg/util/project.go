package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveProjectPath cleans a project path and makes it absolute.
// The resolved path is returned even when the error is non-nil; the error
// only says why the path is not a usable directory, so callers can warn and
// still hand the path to a detector.
func ResolveProjectPath(projectPath string) (string, error) {
	if projectPath == "" {
		projectPath = "."
	}
	projectPath = filepath.Clean(projectPath)

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		absPath = projectPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return absPath, fmt.Errorf("cannot access path '%s': %w", projectPath, err)
	}

	if !info.IsDir() {
		return absPath, fmt.Errorf("path '%s' is not a directory", projectPath)
	}

	return absPath, nil
}
