package xmltree

import (
	"sort"
	"strings"
)

const indentStep = "  "

// Serialize renders the document with a stable layout: attributes
// sorted by name, elements whose only child is text rendered inline,
// childless elements self-closed, and text children dropped from
// mixed-content elements. The result ends with a newline.
func Serialize(doc *Document) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" ?>\n")
	for _, n := range doc.Children {
		writeNode(&b, n, "")
	}
	return b.String()
}

func writeNode(b *strings.Builder, n Node, indent string) {
	switch t := n.(type) {
	case *Element:
		writeElement(b, t, indent)
	case *Comment:
		b.WriteString(indent)
		b.WriteString("<!--")
		b.WriteString(t.Text)
		b.WriteString("-->\n")
	case *Text:
		b.WriteString(escapeText(t.Content))
	}
}

func writeElement(b *strings.Builder, e *Element, indent string) {
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.Tag)

	attrs := append([]Attr(nil), e.Attrs...)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=\"")
		b.WriteString(escapeAttr(a.Value))
		b.WriteString("\"")
	}

	if len(e.Children) == 0 {
		b.WriteString("/>\n")
		return
	}
	if len(e.Children) == 1 {
		if text, ok := e.Children[0].(*Text); ok {
			b.WriteString(">")
			b.WriteString(escapeText(text.Content))
			b.WriteString("</")
			b.WriteString(e.Tag)
			b.WriteString(">\n")
			return
		}
	}
	b.WriteString(">\n")
	for _, child := range e.Children {
		if _, ok := child.(*Text); ok {
			continue
		}
		writeNode(b, child, indent+indentStep)
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")
}

// SerializeElement renders a single element subtree without the
// document preamble. Used for inline rendering of complex property
// values and diagnostics.
func SerializeElement(e *Element) string {
	var b strings.Builder
	writeElement(&b, e, "")
	return strings.TrimSuffix(b.String(), "\n")
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\"", "&quot;")

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
