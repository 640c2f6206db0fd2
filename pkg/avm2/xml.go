package avm2

import "github.com/avm2rt/avm2core/internal/avmxml"

// XMLNode is one node of an E4X-style XML tree (§4.7).
type XMLNode = avmxml.Node

// XMLAttribute is a resolved, entity-decoded attribute.
type XMLAttribute = avmxml.Attribute

type XMLNodeKind = avmxml.NodeKind

const (
	XMLNodeElement               = avmxml.NodeElement
	XMLNodeText                  = avmxml.NodeText
	XMLNodeCDATA                 = avmxml.NodeCDATA
	XMLNodeComment               = avmxml.NodeComment
	XMLNodeProcessingInstruction = avmxml.NodeProcessingInstruction
)

// XMLParseError is the structured error a malformed document raises.
type XMLParseError = avmxml.ParseError

// ParseXMLList parses s as a sequence of top-level XML nodes.
func ParseXMLList(s string, defaultNS string) ([]*XMLNode, error) {
	return avmxml.ParseList(s, defaultNS)
}

// ParseXMLElement parses s as a single XML element.
func ParseXMLElement(s string, defaultNS string) (*XMLNode, error) {
	return avmxml.ParseSingleElement(s, defaultNS)
}
