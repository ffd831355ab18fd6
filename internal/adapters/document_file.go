package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xacro-convert/internal/ports"
	"xacro-convert/internal/xmltree"
)

// DocumentFileAdapter reads and parses XML documents from disk. Each
// load is a scoped acquisition: open, read fully, close.
type DocumentFileAdapter struct{}

func NewDocumentFileAdapter() DocumentFileAdapter {
	return DocumentFileAdapter{}
}

func (a DocumentFileAdapter) Load(path string) (*xmltree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read xml document").
			WithCause(err)
	}
	defer f.Close()

	doc, err := xmltree.Parse(f)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

var _ ports.DocumentPort = DocumentFileAdapter{}
