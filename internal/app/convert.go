package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xacro-convert/internal/core"
	"xacro-convert/internal/shared"
	"xacro-convert/internal/xmltree"
)

// Convert expands a xacro document into a self-contained URDF file.
// The whole pipeline runs in memory; the destination is written only
// after the tree is fully rendered, so no stage failure leaves a
// partial output file.
func (s Service) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	assert.NotEmpty(ctx, req.SourcePath, "source path must be set")

	source, err := filepath.Abs(req.SourcePath)
	if err != nil {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid source path").
			WithCause(err)
	}
	output := req.OutputPath
	if output == "" {
		output = shared.ReplaceExt(source, ".urdf")
	}
	output, err = filepath.Abs(output)
	if err != nil {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid output path").
			WithCause(err)
	}

	if info, statErr := os.Stat(source); statErr != nil || info.IsDir() {
		return ConvertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("xacro file not found: %s", source)).
			WithCause(statErr)
	}

	doc, err := s.Documents.Load(source)
	if err != nil {
		return ConvertResult{}, err
	}

	resolver := core.NewIncludeResolver(s.Documents, s.Finder)
	includes, err := resolver.Resolve(ctx, doc, filepath.Dir(source))
	if err != nil {
		return ConvertResult{}, err
	}
	if _, err := core.Expand(ctx, doc); err != nil {
		return ConvertResult{}, err
	}

	prependBanner(doc, filepath.Base(source))
	content := xmltree.Serialize(doc)
	if err := s.Output.WriteFile(output, []byte(content)); err != nil {
		return ConvertResult{}, err
	}

	log.Ctx(ctx).Info().
		Str("source", source).
		Str("output", output).
		Int("includes", len(includes)).
		Msg("xacro converted")
	return ConvertResult{OutputPath: output, Includes: includes}, nil
}

func prependBanner(doc *xmltree.Document, sourceName string) {
	separator := strings.Repeat("=", 83)
	banner := []xmltree.Node{
		&xmltree.Comment{Text: separator},
		&xmltree.Comment{Text: fmt.Sprintf(" Autogenerated from %s ", sourceName)},
		&xmltree.Comment{Text: " EDITING THIS FILE BY HAND IS NOT RECOMMENDED "},
		&xmltree.Comment{Text: separator},
	}
	doc.Children = append(banner, doc.Children...)
}
