package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resumes are expected as plain text; anything else gets a warning
// upstream rather than a hard failure.
var plainTextExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".text":     true,
}

// ValidateInputFile checks that a resume file exists, is a regular
// file, is not empty, and can be opened for reading.
func ValidateInputFile(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	info, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		return fmt.Errorf("cannot access file %s: %w", filename, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filename)
	}

	if info.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return f.Close()
}

// ValidateOutputFile ensures the directory for the output file exists,
// creating it when needed. An empty filename means stdout and is
// always valid.
func ValidateOutputFile(filename string) error {
	if filename == "" {
		return nil
	}

	dir := filepath.Dir(filename)
	if dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}
	return nil
}

// IsTextFile reports whether the filename carries a plain-text
// extension. Binary formats such as PDF or DOCX are not parsed here.
func IsTextFile(filename string) bool {
	return plainTextExtensions[strings.ToLower(filepath.Ext(filename))]
}
