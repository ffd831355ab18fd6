// Package xmltree provides the mutable document tree the expansion
// pipeline operates on. Unlike encoding/xml's streaming decoder, the
// tree keeps prefixed tag names (xacro:include) and comment nodes, and
// every node is exclusively owned by its parent.
package xmltree

// Node is one of *Element, *Text, or *Comment.
type Node interface {
	node()
}

// Attr is a single attribute. Order of declaration is preserved in the
// tree; the serializer sorts by name on output.
type Attr struct {
	Name  string
	Value string
}

type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

type Text struct {
	Content string
}

type Comment struct {
	Text string
}

func (*Element) node() {}
func (*Text) node()    {}
func (*Comment) node() {}

// Document owns the whole tree: any leading comments plus one root
// element.
type Document struct {
	Children []Node
}

// Root returns the document's root element, or nil if the document has
// none.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	for _, n := range d.Children {
		if el, ok := n.(*Element); ok {
			return el
		}
	}
	return nil
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr updates the named attribute in place, appending it if absent.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// ChildElements returns the element children in document order,
// skipping text and comment nodes.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, n := range e.Children {
		if el, ok := n.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}
