package avmxml

import "testing"

func TestParseSimpleElementWithAttributes(t *testing.T) {
	root, err := ParseSingleElement(`<book id="1" title="Dune">text</book>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if root.Name.Local != "book" {
		t.Fatalf("expected local name book, got %q", root.Name.Local)
	}
	if v, ok := root.Attr("id"); !ok || v != "1" {
		t.Fatalf("expected id=1, got %q %v", v, ok)
	}
	if len(root.Children) != 1 || root.Children[0].Kind != NodeText || root.Children[0].Text != "text" {
		t.Fatalf("unexpected children: %+v", root.Children)
	}
}

func TestImplicitXMLPrefixBinding(t *testing.T) {
	root, err := ParseSingleElement(`<a xml:lang="en"/>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := root.Attr("lang"); !ok || v != "en" {
		t.Fatalf("expected xml:lang to resolve, got %q %v", v, ok)
	}
	if root.Attributes[0].Name.NS.URI != XMLNamespaceURI {
		t.Fatalf("expected xml prefix bound to the fixed W3C namespace, got %q", root.Attributes[0].Name.NS.URI)
	}
}

func TestDeferredAttributePrefixResolution(t *testing.T) {
	// the prefix "h" used on the element's own name is declared by an
	// attribute that appears later on the very same tag.
	root, err := ParseSingleElement(`<h:div xmlns:h="urn:html"/>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if root.Name.NS.URI != "urn:html" {
		t.Fatalf("expected deferred prefix resolution, got %q", root.Name.NS.URI)
	}
}

func TestUnboundPrefixRaises(t *testing.T) {
	_, err := ParseSingleElement(`<h:div/>`, "")
	pe, ok := err.(*ParseError)
	if !ok || pe.Code != ErrUnboundPrefix {
		t.Fatalf("expected ErrUnboundPrefix, got %v", err)
	}
}

func TestDuplicateAttributeRaises(t *testing.T) {
	_, err := ParseSingleElement(`<a x="1" x="2"/>`, "")
	pe, ok := err.(*ParseError)
	if !ok || pe.Code != ErrDuplicateAttribute {
		t.Fatalf("expected ErrDuplicateAttribute, got %v", err)
	}
	if pe.Code.String() != "XML_ATTRIBUTE_DUPLICATE" {
		t.Fatalf("expected error code to stringify as XML_ATTRIBUTE_DUPLICATE, got %s", pe.Code.String())
	}
}

func TestMismatchedCloseTagRaises(t *testing.T) {
	_, err := ParseSingleElement(`<a><b></c></a>`, "")
	pe, ok := err.(*ParseError)
	if !ok || pe.Code != ErrMismatchedCloseTag {
		t.Fatalf("expected ErrMismatchedCloseTag, got %v", err)
	}
}

func TestUnknownNamedEntityDegradesToLiteral(t *testing.T) {
	root, err := ParseSingleElement(`<a>&foo;&amp;</a>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if root.Children[0].Text != "&foo;&" {
		t.Fatalf("expected unknown entity to degrade to literal text, got %q", root.Children[0].Text)
	}
}

func TestNumericEntities(t *testing.T) {
	root, err := ParseSingleElement(`<a>&#65;&#x42;</a>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if root.Children[0].Text != "AB" {
		t.Fatalf("expected numeric entities decoded, got %q", root.Children[0].Text)
	}
}

func TestCDATASection(t *testing.T) {
	root, err := ParseSingleElement(`<a><![CDATA[<raw>&notanentity]]></a>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 || root.Children[0].Kind != NodeCDATA {
		t.Fatalf("expected one CDATA child, got %+v", root.Children)
	}
	if root.Children[0].Text != "<raw>&notanentity" {
		t.Fatalf("CDATA content must not be entity-decoded, got %q", root.Children[0].Text)
	}
}

func TestCommentAndPI(t *testing.T) {
	nodes, err := ParseList(`<?xml version="1.0"?><!-- hi --><a/>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if nodes[0].Kind != NodeProcessingInstruction || nodes[0].Name.Local != "xml" {
		t.Fatalf("expected a PI node first, got %+v", nodes[0])
	}
	if nodes[1].Kind != NodeComment {
		t.Fatalf("expected a comment node second, got %+v", nodes[1])
	}
}

func TestLineTrackingOnError(t *testing.T) {
	_, err := ParseSingleElement("<a>\n<b x=\"1\" x=\"2\"/>\n</a>", "")
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Fatalf("expected the error on line 2, got %d", pe.Line)
	}
}
