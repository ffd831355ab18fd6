// Package shared provides common utility functions used across
// multiple packages in the xacro-convert codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// ReplaceExt swaps a path's extension for ext (which must include the
// leading dot). A path without an extension gets ext appended.
func ReplaceExt(path string, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// SanitizeName replaces the characters Fusion allows in component
// names but ROS tooling chokes on (spaces, colons, parentheses) with
// underscores.
func SanitizeName(name string) string {
	replacer := strings.NewReplacer(" ", "_", ":", "_", "(", "_", ")", "_")
	return replacer.Replace(name)
}
