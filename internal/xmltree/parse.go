package xmltree

import (
	"encoding/xml"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Parse reads a well-formed XML document into an owned tree. The
// stdlib decoder reports element names with the namespace URL in
// place of the declared prefix, so prefixed spellings (xacro:include)
// are reconstructed from the xmlns declarations in scope.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	var stack []*Element
	var scopes nsScopes

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("malformed xml").
				WithCause(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			scopes.push(t.Attr)
			el := &Element{Tag: scopes.elementName(t.Name)}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: scopes.attrName(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				doc.Children = append(doc.Children, el)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scopes.pop()
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			// The decoder splits character data around entity
			// references; merge so single-text content stays one node.
			if len(parent.Children) > 0 {
				if prev, ok := parent.Children[len(parent.Children)-1].(*Text); ok {
					prev.Content += string(t)
					continue
				}
			}
			parent.Children = append(parent.Children, &Text{Content: string(t)})
		case xml.Comment:
			comment := &Comment{Text: string(t)}
			if len(stack) == 0 {
				doc.Children = append(doc.Children, comment)
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, comment)
			}
		}
	}

	if doc.Root() == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed xml: no root element")
	}
	return doc, nil
}

// nsScopes tracks xmlns declarations per open element so namespace
// URLs can be mapped back to their declared prefixes.
type nsScopes struct {
	frames []map[string]string
}

func (s *nsScopes) push(attrs []xml.Attr) {
	frame := map[string]string{}
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			frame[a.Value] = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			frame[a.Value] = ""
		}
	}
	s.frames = append(s.frames, frame)
}

func (s *nsScopes) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *nsScopes) prefix(uri string) (string, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if p, ok := s.frames[i][uri]; ok {
			return p, true
		}
	}
	return "", false
}

func (s *nsScopes) elementName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if p, ok := s.prefix(n.Space); ok {
		if p == "" {
			return n.Local
		}
		return p + ":" + n.Local
	}
	// Undeclared prefixes are passed through verbatim by the decoder.
	return n.Space + ":" + n.Local
}

func (s *nsScopes) attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return s.elementName(n)
}
