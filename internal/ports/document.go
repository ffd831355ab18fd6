// Package ports declares the interfaces between the expansion engine
// and its filesystem-facing adapters.
package ports

import "xacro-convert/internal/xmltree"

// DocumentPort loads and parses one XML document from a path.
type DocumentPort interface {
	Load(path string) (*xmltree.Document, error)
}
