package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	IndexFile      = "index.html"
	ManifestFile   = "manifest.json"
	StylesheetName = "styles.css"
)

func ValidateOutDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	cleaned := filepath.Clean(dir)
	if cleaned == string(filepath.Separator) {
		return fmt.Errorf("output directory cannot be the filesystem root")
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output directory cannot contain parent directory references")
	}

	return nil
}

type OutputPaths struct {
	Dir      string
	HTML     string
	CSS      string
	Manifest string
}

func CalculateOutputPaths(dir string, cssName string) OutputPaths {
	return OutputPaths{
		Dir:      dir,
		HTML:     filepath.Join(dir, IndexFile),
		CSS:      filepath.Join(dir, cssName),
		Manifest: filepath.Join(dir, ManifestFile),
	}
}

func AssetHref(name string, relative bool) string {
	name = strings.TrimPrefix(filepath.ToSlash(name), "/")
	if relative {
		return name
	}
	return "/" + name
}
