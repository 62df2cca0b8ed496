package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat checks the requested format against the formats
// the application is configured to emit. An empty list disables the
// check.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 || slices.Contains(supportedFormats, format) {
		return nil
	}
	return fmt.Errorf("unsupported output format %q, supported formats: %s",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats exposes the configured format list, used for
// shell completion of the --format flag.
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
