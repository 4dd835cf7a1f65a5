// Package manifest writes release versions into project manifest files.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer stores a version string in a manifest file
type Writer interface {
	SetVersion(path, version string) error
}

// FileWriter edits manifests on disk, choosing the format by extension.
// .yaml and .yml are YAML; everything else is treated as JSON with optional comments.
type FileWriter struct {
	// Root resolves relative paths. Empty means the current directory.
	Root string
}

// NewFileWriter creates a FileWriter resolving paths against root
func NewFileWriter(root string) *FileWriter {
	return &FileWriter{Root: root}
}

// SetVersion implements Writer
func (w *FileWriter) SetVersion(path, version string) error {
	full := path
	if !filepath.IsAbs(full) && w.Root != "" {
		full = filepath.Join(w.Root, full)
	}

	info, err := os.Stat(full)
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var updated []byte
	switch strings.ToLower(filepath.Ext(full)) {
	case ".yaml", ".yml":
		updated, err = setYAMLVersion(data, version)
	default:
		updated, err = setJSONVersion(data, version)
	}
	if err != nil {
		return fmt.Errorf("failed to update manifest %s: %w", path, err)
	}

	if err := os.WriteFile(full, updated, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
