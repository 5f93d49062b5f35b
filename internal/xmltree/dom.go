package xmltree

// NodeID identifies an element in the document arena.
type NodeID int

// InvalidNode represents an invalid node reference.
const InvalidNode NodeID = -1

// Document is a compact arena for a parsed numbering-plan document. The
// compiler only ever reads it: attribute existence and value, ordered child
// retrieval by tag name, and text content.
type Document struct {
	nodes    []node
	attrs    []Attr
	children []NodeID
	root     NodeID
}

type node struct {
	name        string
	text        []byte
	attrsOff    int
	attrsLen    int
	childrenOff int
	childrenLen int
	parent      NodeID
}

// Attr is a name/value attribute pair.
type Attr struct {
	name  string
	value string
}

// Name returns the attribute name.
func (a Attr) Name() string { return a.name }

// Value returns the attribute value.
func (a Attr) Value() string { return a.value }

func (d *Document) reset() {
	if d == nil {
		return
	}
	d.nodes = d.nodes[:0]
	d.attrs = d.attrs[:0]
	d.children = d.children[:0]
	d.root = InvalidNode
}

// Root returns the document root element.
func (d *Document) Root() NodeID {
	if d == nil {
		return InvalidNode
	}
	return d.root
}

func (d *Document) validNode(id NodeID) bool {
	return d != nil && id >= 0 && int(id) < len(d.nodes)
}

// Name returns the tag name of the given element.
func (d *Document) Name(id NodeID) string {
	if !d.validNode(id) {
		return ""
	}
	return d.nodes[id].name
}

// Parent returns the parent of id, or InvalidNode for the root.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.validNode(id) {
		return InvalidNode
	}
	return d.nodes[id].parent
}

// Attributes returns a read-only view of the element attributes.
// The returned slice aliases the document arena; do not modify or retain it.
func (d *Document) Attributes(id NodeID) []Attr {
	if !d.validNode(id) {
		return nil
	}
	n := d.nodes[id]
	if n.attrsLen == 0 {
		return nil
	}
	return d.attrs[n.attrsOff : n.attrsOff+n.attrsLen]
}

// Children returns a read-only view of the element children in document order.
// The returned slice aliases the document arena; do not modify or retain it.
func (d *Document) Children(id NodeID) []NodeID {
	if !d.validNode(id) {
		return nil
	}
	n := d.nodes[id]
	if n.childrenLen == 0 {
		return nil
	}
	return d.children[n.childrenOff : n.childrenOff+n.childrenLen]
}

// ChildrenByName returns the direct children with the given tag name, in
// document order.
func (d *Document) ChildrenByName(id NodeID, name string) []NodeID {
	var out []NodeID
	for _, child := range d.Children(id) {
		if d.nodes[child].name == name {
			out = append(out, child)
		}
	}
	return out
}

// DescendantsByName returns every element with the given tag name under id,
// in document order.
func (d *Document) DescendantsByName(id NodeID, name string) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(n NodeID) {
		for _, child := range d.Children(n) {
			if d.nodes[child].name == name {
				out = append(out, child)
			}
			walk(child)
		}
	}
	if d.validNode(id) {
		walk(id)
	}
	return out
}

// Text returns the text directly under the element, with surrounding
// whitespace preserved as parsed.
func (d *Document) Text(id NodeID) string {
	if !d.validNode(id) {
		return ""
	}
	return string(d.nodes[id].text)
}

// GetAttribute returns the value of the named attribute, or the empty string.
func (d *Document) GetAttribute(id NodeID, name string) string {
	for _, attr := range d.Attributes(id) {
		if attr.name == name {
			return attr.value
		}
	}
	return ""
}

// HasAttribute reports whether the element carries the named attribute.
func (d *Document) HasAttribute(id NodeID, name string) bool {
	for _, attr := range d.Attributes(id) {
		if attr.name == name {
			return true
		}
	}
	return false
}

// addNode appends an element to the arena and links it to its parent.
func (d *Document) addNode(name string, attrs []Attr, parent NodeID) NodeID {
	id := NodeID(len(d.nodes))
	n := node{
		name:     name,
		attrsOff: len(d.attrs),
		attrsLen: len(attrs),
		parent:   parent,
	}
	d.attrs = append(d.attrs, attrs...)
	d.nodes = append(d.nodes, n)
	return id
}

// appendText accumulates direct text content on an element.
func (d *Document) appendText(id NodeID, text []byte) {
	if !d.validNode(id) {
		return
	}
	d.nodes[id].text = append(d.nodes[id].text, text...)
}

// sealChildren records the child span for an element once all its children
// have been collected.
func (d *Document) sealChildren(id NodeID, children []NodeID) {
	if !d.validNode(id) {
		return
	}
	d.nodes[id].childrenOff = len(d.children)
	d.nodes[id].childrenLen = len(children)
	d.children = append(d.children, children...)
}
