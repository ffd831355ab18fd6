package adapters

import (
	"os"
	"path/filepath"

	"xacro-convert/internal/ports"
)

// PackageFinderAdapter locates ROS package directories for
// $(find PACKAGE) substitution: starting at the including document's
// directory it walks toward the filesystem root, matching either the
// current directory's own name or a subdirectory of that name at each
// level. First match wins.
type PackageFinderAdapter struct{}

func NewPackageFinderAdapter() PackageFinderAdapter {
	return PackageFinderAdapter{}
}

func (a PackageFinderAdapter) FindPackageDir(name string, baseDir string) (string, bool) {
	current, err := filepath.Abs(baseDir)
	if err != nil {
		return "", false
	}
	for {
		if filepath.Base(current) == name {
			return current, true
		}
		candidate := filepath.Join(current, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

var _ ports.PackageFinderPort = PackageFinderAdapter{}
