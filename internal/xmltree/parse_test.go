package xmltree

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefixedTags(t *testing.T) {
	input := `<robot xmlns:xacro="http://ros.org/wiki/xacro">` +
		`<xacro:include filename="materials.xacro"/>` +
		`</robot>`
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "robot", root.Tag)
	value, ok := root.Attr("xmlns:xacro")
	require.True(t, ok)
	assert.Equal(t, "http://ros.org/wiki/xacro", value)

	children := root.ChildElements()
	require.Len(t, children, 1)
	assert.Equal(t, "xacro:include", children[0].Tag)
	filename, ok := children[0].Attr("filename")
	require.True(t, ok)
	assert.Equal(t, "materials.xacro", filename)
}

func TestParseUndeclaredPrefixPassesThrough(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<robot><xacro:property name="a" value="1"/></robot>`))
	require.NoError(t, err)
	children := doc.Root().ChildElements()
	require.Len(t, children, 1)
	assert.Equal(t, "xacro:property", children[0].Tag)
}

func TestParsePreservesAttributeOrderAndComments(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<!-- header --><a z="1" b="2"><!-- inner --></a>`))
	require.NoError(t, err)

	require.Len(t, doc.Children, 2)
	comment, ok := doc.Children[0].(*Comment)
	require.True(t, ok)
	assert.Equal(t, " header ", comment.Text)

	root := doc.Root()
	require.Len(t, root.Attrs, 2)
	assert.Equal(t, "z", root.Attrs[0].Name)
	assert.Equal(t, "b", root.Attrs[1].Name)

	inner, ok := root.Children[0].(*Comment)
	require.True(t, ok)
	assert.Equal(t, " inner ", inner.Text)
}

func TestParseMergesSplitCharData(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<a>one &amp; two</a>`))
	require.NoError(t, err)
	root := doc.Root()
	require.Len(t, root.Children, 1)
	text, ok := root.Children[0].(*Text)
	require.True(t, ok)
	assert.Equal(t, "one & two", text.Content)
}

func TestParseMalformedInput(t *testing.T) {
	_, err := Parse(strings.NewReader(`<a><b></a>`))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = Parse(strings.NewReader(``))
	require.Error(t, err)
}

func TestSetAttrUpdatesInPlace(t *testing.T) {
	el := &Element{Tag: "a", Attrs: []Attr{{Name: "x", Value: "1"}}}
	el.SetAttr("x", "2")
	el.SetAttr("y", "3")
	require.Len(t, el.Attrs, 2)
	assert.Equal(t, Attr{Name: "x", Value: "2"}, el.Attrs[0])
	assert.Equal(t, Attr{Name: "y", Value: "3"}, el.Attrs[1])
}
