package data

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// xmlNode — узел дерева атрибутов исходного документа. Порядок детей
// сохраняется как в файле: binder и fallback зависят от него.
type xmlNode struct {
	name     string
	attrs    []xmlAttr
	text     string
	children []*xmlNode
	line     int
}

type xmlAttr struct {
	name  string
	value string
}

// Name возвращает имя тега в нижнем регистре.
func (n *xmlNode) Name() string {
	return n.name
}

// Attr returns the raw attribute value and whether it was present.
// Attribute names are matched case-insensitively.
func (n *xmlNode) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if strings.EqualFold(a.name, name) {
			return a.value, true
		}
	}
	return "", false
}

// AttrDefault returns the attribute value or def when absent.
func (n *xmlNode) AttrDefault(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// Text returns the trimmed character data of the node.
func (n *xmlNode) Text() string {
	return strings.TrimSpace(n.text)
}

// parseXMLTree decodes a whole document into a node tree.
// Element names are lowered during decode so lookups stay case-insensitive.
func parseXMLTree(r io.Reader) (*xmlNode, error) {
	dec := xml.NewDecoder(r)
	var root *xmlNode
	var stack []*xmlNode
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, col := decoderPos(dec)
			return nil, fmt.Errorf("line %d col %d: %w", line, col, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := decoderPos(dec)
			node := &xmlNode{name: strings.ToLower(t.Name.Local), line: line}
			for _, a := range t.Attr {
				node.attrs = append(node.attrs, xmlAttr{name: a.Name.Local, value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("line %d: multiple document roots", line)
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) == 0 {
				line, col := decoderPos(dec)
				return nil, fmt.Errorf("line %d col %d: unbalanced end element", line, col)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unexpected end of document inside <%s>", stack[len(stack)-1].name)
	}
	return root, nil
}

func decoderPos(dec *xml.Decoder) (line, col int) {
	l, c := dec.InputPos()
	return l, c
}
