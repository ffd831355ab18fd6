package core

import (
	"context"

	"xacro-convert/internal/xmltree"
)

// Substitute rewrites every attribute value and text node in document
// order, expanding ${...} spans against the symbol table. The walk is
// pre-order: an element's attributes first, then its children left to
// right. Comments are left untouched. Running it again with the same
// table is a no-op.
func Substitute(doc *xmltree.Document, symbols *SymbolTable) error {
	root := doc.Root()
	if root == nil {
		return nil
	}
	return substituteElement(root, symbols)
}

func substituteElement(el *xmltree.Element, symbols *SymbolTable) error {
	for i := range el.Attrs {
		value, err := EvalText(el.Attrs[i].Value, symbols)
		if err != nil {
			return err
		}
		el.Attrs[i].Value = value
	}
	for _, child := range el.Children {
		switch c := child.(type) {
		case *xmltree.Element:
			if err := substituteElement(c, symbols); err != nil {
				return err
			}
		case *xmltree.Text:
			content, err := EvalText(c.Content, symbols)
			if err != nil {
				return err
			}
			c.Content = content
		}
	}
	return nil
}

// Expand makes a document self-contained: macro definitions are
// stripped (never instantiated), property definitions populate the
// global table, and the remaining tree is substituted.
func Expand(ctx context.Context, doc *xmltree.Document) (*SymbolTable, error) {
	ExtractMacros(ctx, doc)
	symbols := ExtractProperties(ctx, doc)
	if err := Substitute(doc, symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}
