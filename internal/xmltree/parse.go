package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Parse builds the minimal DOM used by the metadata compiler from XML input.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{root: InvalidNode}
	if err := ParseInto(r, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseInto builds the minimal DOM into an existing document, allowing the
// arena to be reused across parses.
func ParseInto(r io.Reader, doc *Document) (err error) {
	if doc == nil {
		return fmt.Errorf("nil XML document")
	}

	doc.reset()
	defer func() {
		if err != nil {
			doc.reset()
		}
	}()

	decoder := xml.NewDecoder(r)

	type frame struct {
		id       NodeID
		children []NodeID
	}
	var stack []frame
	var attrsScratch []Attr
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("xml read: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			parent := InvalidNode
			if len(stack) > 0 {
				parent = stack[len(stack)-1].id
			}
			attrsScratch = attrsScratch[:0]
			for _, attr := range t.Attr {
				attrsScratch = append(attrsScratch, Attr{name: attr.Name.Local, value: attr.Value})
			}
			id := doc.addNode(t.Name.Local, attrsScratch, parent)
			if parent == InvalidNode {
				doc.root = id
			} else {
				top := &stack[len(stack)-1]
				top.children = append(top.children, id)
			}
			stack = append(stack, frame{id: id})

		case xml.EndElement:
			if len(stack) == 0 {
				return fmt.Errorf("unexpected end element %s", t.Name.Local)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			doc.sealChildren(top.id, top.children)
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) > 0 {
				doc.appendText(stack[len(stack)-1].id, []byte(t))
			}
		}
	}

	if doc.root == InvalidNode {
		return fmt.Errorf("document has no root element")
	}
	if len(stack) != 0 {
		return fmt.Errorf("document ended with %d unclosed elements", len(stack))
	}
	return nil
}
