package avmxml

import "github.com/avm2rt/avm2core/internal/avmname"

// NodeKind tags the variant a Node holds.
type NodeKind int

const (
	NodeElement NodeKind = iota
	NodeText
	NodeCDATA
	NodeComment
	NodeProcessingInstruction
)

// XMLNamespaceURI is the W3C-fixed URI the "xml" prefix is always bound
// to, regardless of declarations.
const XMLNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// Attribute is a single resolved attribute: name (with its namespace
// already resolved against the tag's own declarations) and raw value
// (entity-decoded).
type Attribute struct {
	Name  avmname.QName
	Value string
}

// Node is one XML tree node. Name is populated for NodeElement (the tag
// name) and NodeProcessingInstruction (the target); Text carries the
// textual payload for NodeText/NodeCDATA/NodeComment and the instruction
// data for NodeProcessingInstruction.
type Node struct {
	Kind       NodeKind
	Name       avmname.QName
	Attributes []Attribute
	Children   []*Node
	Text       string
	Line       int
}

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
