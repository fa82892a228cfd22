package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Exported artifact file names.
const (
	HTMLFileName = "index.html"
	CSSFileName  = "style.css"
	JSFileName   = "script.js"
)

// WriteArtifacts writes the three artifacts into dir, creating it if needed.
func WriteArtifacts(dir string, artifact ParsedArtifact) error {
	if dir == "" {
		return errors.New("output directory cannot be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{name: HTMLFileName, content: artifact.HTML},
		{name: CSSFileName, content: artifact.CSS},
		{name: JSFileName, content: artifact.JS},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil { //nolint:gosec // Generated site files are meant to be readable
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	return nil
}
