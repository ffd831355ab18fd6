package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xacro-convert/internal/core"
	"xacro-convert/internal/types"
	"xacro-convert/internal/xmltree"
)

// Inspect runs the pipeline up to directive extraction and reports
// what the document defines: resolved includes in resolution order,
// properties with their values, and macro names. Nothing is written.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	source, err := filepath.Abs(strings.TrimSpace(req.SourcePath))
	if err != nil || req.SourcePath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source path is required").
			WithCause(err)
	}
	if info, statErr := os.Stat(source); statErr != nil || info.IsDir() {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("xacro file not found: %s", source)).
			WithCause(statErr)
	}

	doc, err := s.Documents.Load(source)
	if err != nil {
		return InspectResult{}, err
	}
	resolver := core.NewIncludeResolver(s.Documents, s.Finder)
	includes, err := resolver.Resolve(ctx, doc, filepath.Dir(source))
	if err != nil {
		return InspectResult{}, err
	}

	macros := core.ExtractMacros(ctx, doc)
	symbols := core.ExtractProperties(ctx, doc)

	report := types.DocumentReport{
		Source:   source,
		RootTag:  doc.Root().Tag,
		Includes: includes,
	}
	names := symbols.Names()
	sort.Strings(names)
	for _, name := range names {
		sym, lookupErr := symbols.Lookup(name)
		if lookupErr != nil {
			continue
		}
		info := types.PropertyInfo{Name: name, Value: sym.Literal}
		if sym.IsComplex() {
			info.Complex = true
			info.Value = xmltree.SerializeElement(sym.Subtree)
		}
		report.Properties = append(report.Properties, info)
	}
	for name := range macros {
		if strings.HasPrefix(name, types.XacroPrefix) {
			continue
		}
		report.Macros = append(report.Macros, name)
	}
	sort.Strings(report.Macros)

	return InspectResult{Report: report}, nil
}
