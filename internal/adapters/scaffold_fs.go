package adapters

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xacro-convert/internal/ports"
)

// ScaffoldFSAdapter copies a ROS package template tree into place and
// rebrands its build manifests for the exported robot package.
type ScaffoldFSAdapter struct{}

func NewScaffoldFSAdapter() ScaffoldFSAdapter {
	return ScaffoldFSAdapter{}
}

func (a ScaffoldFSAdapter) CopyTemplate(templateDir string, targetDir string) error {
	info, err := os.Stat(templateDir)
	if err != nil || !info.IsDir() {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("template directory not found").
			WithCause(err)
	}
	err = filepath.WalkDir(templateDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(templateDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(targetDir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to copy template tree").
			WithCause(err)
	}
	// The exporter drops generated files into these even when the
	// template does not carry them.
	for _, dir := range []string{"launch", "urdf"} {
		if err := os.MkdirAll(filepath.Join(targetDir, dir), 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create package directory").
				WithCause(err)
		}
	}
	return nil
}

func (a ScaffoldFSAdapter) SetPackageName(targetDir string, packageName string) error {
	cmake := filepath.Join(targetDir, "CMakeLists.txt")
	if err := rewriteLines(cmake, func(line string) string {
		if strings.Contains(line, "project(fusion2urdf)") {
			return fmt.Sprintf("project(%s)", packageName)
		}
		return line
	}); err != nil {
		return err
	}

	manifest := filepath.Join(targetDir, "package.xml")
	return rewriteLines(manifest, func(line string) string {
		if strings.Contains(line, "<name>") {
			return fmt.Sprintf("  <name>%s</name>", packageName)
		}
		if strings.Contains(line, "<description>") {
			return fmt.Sprintf("<description>The %s package</description>", packageName)
		}
		return line
	})
}

func copyFile(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func rewriteLines(path string, rewrite func(string) string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read manifest").
			WithCause(err)
	}
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = rewrite(line)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to rewrite manifest").
			WithCause(err)
	}
	return nil
}

var _ ports.ScaffoldPort = ScaffoldFSAdapter{}
