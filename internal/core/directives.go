package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"xacro-convert/internal/types"
	"xacro-convert/internal/xmltree"
)

// MacroTable maps macro names to their definition subtrees. Each macro
// is registered under its bare name and the xacro-prefixed alias. The
// table is never consulted for expansion; extracting it just removes
// macro markup from the output tree.
type MacroTable map[string]*xmltree.Element

// ExtractMacros removes every macro definition from the tree and
// records it by name.
func ExtractMacros(ctx context.Context, doc *xmltree.Document) MacroTable {
	macros := MacroTable{}
	if root := doc.Root(); root != nil {
		extractMacros(root, macros)
	}
	log.Ctx(ctx).Debug().Int("macros", len(macros)/2).Msg("macro definitions extracted")
	return macros
}

func extractMacros(el *xmltree.Element, macros MacroTable) {
	kept := el.Children[:0]
	for _, child := range el.Children {
		ce, ok := child.(*xmltree.Element)
		if ok && types.KindOfTag(ce.Tag) == types.TagMacro {
			name, _ := ce.Attr("name")
			macros[name] = ce
			macros[types.XacroPrefix+name] = ce
			continue
		}
		if ok {
			extractMacros(ce, macros)
		}
		kept = append(kept, child)
	}
	el.Children = kept
}

// ExtractProperties removes every property definition from the tree
// and builds the global symbol table. A definition with a value
// attribute stores the literal; one without stores its own subtree.
// Later definitions of a name win.
func ExtractProperties(ctx context.Context, doc *xmltree.Document) *SymbolTable {
	table := NewSymbolTable(nil)
	if root := doc.Root(); root != nil {
		extractProperties(root, table)
	}
	log.Ctx(ctx).Debug().Int("properties", table.Len()).Msg("property definitions extracted")
	return table
}

func extractProperties(el *xmltree.Element, table *SymbolTable) {
	kept := el.Children[:0]
	for _, child := range el.Children {
		ce, ok := child.(*xmltree.Element)
		if ok && types.KindOfTag(ce.Tag) == types.TagProperty {
			name, _ := ce.Attr("name")
			if value, has := ce.Attr("value"); has {
				table.Define(name, Symbol{Literal: value})
			} else {
				table.Define(name, Symbol{Subtree: ce})
			}
			continue
		}
		if ok {
			extractProperties(ce, table)
		}
		kept = append(kept, child)
	}
	el.Children = kept
}
