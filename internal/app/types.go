package app

import "xacro-convert/internal/types"

type ConvertRequest struct {
	SourcePath string
	OutputPath string
}

type ConvertResult struct {
	OutputPath string
	Includes   []string
}

type InspectRequest struct {
	SourcePath string
}

type InspectResult struct {
	Report types.DocumentReport
}

type ScaffoldRequest struct {
	TemplateDir string
	TargetDir   string
	PackageName string
}

type ScaffoldResult struct {
	TargetDir string
}
