package ports

// PackageFinderPort resolves $(find PACKAGE) tokens: given a package
// name and the directory of the including document, it locates the
// package directory on disk.
type PackageFinderPort interface {
	FindPackageDir(name string, baseDir string) (string, bool)
}

// ScaffoldPort materializes a ROS package directory from a template
// tree and rebrands its build manifests.
type ScaffoldPort interface {
	// CopyTemplate copies the template tree into targetDir,
	// overwriting existing files.
	CopyTemplate(templateDir string, targetDir string) error

	// SetPackageName rewrites the project() line in CMakeLists.txt and
	// the <name>/<description> lines in package.xml under targetDir.
	SetPackageName(targetDir string, packageName string) error
}
