package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xacro-convert/internal/xmltree"
)

func parseDoc(t *testing.T, input string) *xmltree.Document {
	t.Helper()
	doc, err := xmltree.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return doc
}

func TestExtractMacrosRegistersBothSpellings(t *testing.T) {
	doc := parseDoc(t, `<robot xmlns:xacro="http://ros.org/wiki/xacro">`+
		`<xacro:macro name="wheel"><link name="w"/></xacro:macro>`+
		`<macro name="axle"/>`+
		`<link name="base"/>`+
		`</robot>`)

	macros := ExtractMacros(t.Context(), doc)

	for _, name := range []string{"wheel", "xacro:wheel", "axle", "xacro:axle"} {
		assert.Contains(t, macros, name)
	}
	assert.Same(t, macros["wheel"], macros["xacro:wheel"])

	// Definitions are gone from the tree; the rest is untouched.
	children := doc.Root().ChildElements()
	require.Len(t, children, 1)
	assert.Equal(t, "link", children[0].Tag)
}

func TestExtractMacrosNested(t *testing.T) {
	doc := parseDoc(t, `<robot><group><macro name="inner"/></group></robot>`)
	macros := ExtractMacros(t.Context(), doc)
	assert.Contains(t, macros, "inner")

	group := doc.Root().ChildElements()[0]
	assert.Empty(t, group.ChildElements())
}

func TestExtractPropertiesLiteralAndComplex(t *testing.T) {
	doc := parseDoc(t, `<robot>`+
		`<xacro:property name="radius" value="0.05"/>`+
		`<property name="inertia"><box size="1 1 1"/></property>`+
		`</robot>`)

	table := ExtractProperties(t.Context(), doc)

	sym, err := table.Lookup("radius")
	require.NoError(t, err)
	assert.False(t, sym.IsComplex())
	assert.Equal(t, "0.05", sym.Literal)

	sym, err = table.Lookup("inertia")
	require.NoError(t, err)
	assert.True(t, sym.IsComplex())
	require.NotNil(t, sym.Subtree)
	assert.Equal(t, "property", sym.Subtree.Tag)

	assert.Empty(t, doc.Root().ChildElements())
}

func TestExtractPropertiesLastWriteWins(t *testing.T) {
	doc := parseDoc(t, `<robot>`+
		`<property name="r" value="1"/>`+
		`<group><property name="r" value="2"/></group>`+
		`</robot>`)

	table := ExtractProperties(t.Context(), doc)
	sym, err := table.Lookup("r")
	require.NoError(t, err)
	assert.Equal(t, "2", sym.Literal)
}

// Definitions inside a macro body vanish with the macro; they never
// reach the property table.
func TestMacroBodiesAreStrippedBeforePropertyExtraction(t *testing.T) {
	doc := parseDoc(t, `<robot>`+
		`<macro name="m"><property name="hidden" value="1"/></macro>`+
		`</robot>`)

	ExtractMacros(t.Context(), doc)
	table := ExtractProperties(t.Context(), doc)
	_, err := table.Lookup("hidden")
	require.Error(t, err)
}
