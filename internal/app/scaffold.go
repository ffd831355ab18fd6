package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xacro-convert/internal/shared"
)

// Scaffold copies a ROS package template into the target directory and
// rebrands its CMakeLists.txt and package.xml for the named package.
// The exported URDF and launch files land in the urdf/ and launch/
// subdirectories the scaffold guarantees.
func (s Service) Scaffold(ctx context.Context, req ScaffoldRequest) (ScaffoldResult, error) {
	name := shared.SanitizeName(strings.TrimSpace(req.PackageName))
	if name == "" {
		return ScaffoldResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	if strings.TrimSpace(req.TemplateDir) == "" || strings.TrimSpace(req.TargetDir) == "" {
		return ScaffoldResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template and target directories are required")
	}

	if err := s.Scaffolder.CopyTemplate(req.TemplateDir, req.TargetDir); err != nil {
		return ScaffoldResult{}, err
	}
	if err := s.Scaffolder.SetPackageName(req.TargetDir, name); err != nil {
		return ScaffoldResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("target", req.TargetDir).
		Str("package", name).
		Msg("package scaffold created")
	return ScaffoldResult{TargetDir: req.TargetDir}, nil
}
