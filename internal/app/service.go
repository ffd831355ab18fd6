package app

import (
	"xacro-convert/internal/adapters"
	"xacro-convert/internal/ports"
)

type Service struct {
	Documents  ports.DocumentPort
	Output     ports.OutputPort
	Finder     ports.PackageFinderPort
	Scaffolder ports.ScaffoldPort
}

func NewService() Service {
	return Service{
		Documents:  adapters.NewDocumentFileAdapter(),
		Output:     adapters.NewOutputFileAdapter(),
		Finder:     adapters.NewPackageFinderAdapter(),
		Scaffolder: adapters.NewScaffoldFSAdapter(),
	}
}
