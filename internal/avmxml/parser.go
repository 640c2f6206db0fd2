package avmxml

import (
	"strings"

	"github.com/avm2rt/avm2core/internal/avmname"
)

// ParseList parses a fragment containing zero or more sibling top-level
// nodes (the common E4X "XMLList" shape). defaultNS is the namespace URI
// the unprefixed default binding resolves to at the root.
func ParseList(s string, defaultNS string) ([]*Node, error) {
	p := newParser(s, defaultNS)
	nodes, err := p.parseNodes("")
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// ParseSingleElement parses a fragment expected to contain exactly one
// top-level element, returning that element. Every other top-level node
// (text of any content, comments, processing instructions) is skipped.
func ParseSingleElement(s string, defaultNS string) (*Node, error) {
	nodes, err := ParseList(s, defaultNS)
	if err != nil {
		return nil, err
	}
	var found *Node
	for _, n := range nodes {
		if n.Kind == NodeText && strings.TrimSpace(n.Text) == "" {
			continue
		}
		if n.Kind != NodeElement {
			continue
		}
		if found != nil {
			return nil, newErr(ErrInvalidName, n.Line, "expected a single root element")
		}
		found = n
	}
	if found == nil {
		return nil, newErr(ErrUnexpectedEOF, 1, "no root element found")
	}
	return found, nil
}

type rawAttr struct {
	rawName string
	value   string
	line    int
}

type parser struct {
	src  []rune
	pos  int
	line int

	defaultNS string
	nsStack   []map[string]string
}

func newParser(s, defaultNS string) *parser {
	root := map[string]string{
		"xml": XMLNamespaceURI,
		"":    defaultNS,
	}
	return &parser{src: []rune(s), line: 1, defaultNS: defaultNS, nsStack: []map[string]string{root}}
}

func (p *parser) peekByte() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) peekAt(offset int) (rune, bool) {
	if p.pos+offset >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos+offset], true
}

func (p *parser) advance() rune {
	r := p.src[p.pos]
	p.pos++
	if r == '\n' {
		p.line++
	}
	return r
}

func (p *parser) startsWith(s string) bool {
	rs := []rune(s)
	if p.pos+len(rs) > len(p.src) {
		return false
	}
	for i, r := range rs {
		if p.src[p.pos+i] != r {
			return false
		}
	}
	return true
}

func (p *parser) skipN(n int) {
	for i := 0; i < n; i++ {
		p.advance()
	}
}

func isNameStart(r rune) bool {
	return r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || (r >= '0' && r <= '9')
}

func (p *parser) readName() string {
	start := p.pos
	if r, ok := p.peekByte(); ok && isNameStart(r) {
		p.advance()
		for {
			r, ok := p.peekByte()
			if !ok || !isNameChar(r) {
				break
			}
			p.advance()
		}
	}
	return string(p.src[start:p.pos])
}

func (p *parser) skipWhitespace() {
	for {
		r, ok := p.peekByte()
		if !ok || !(r == ' ' || r == '\t' || r == '\n' || r == '\r') {
			return
		}
		p.advance()
	}
}

// parseNodes parses sibling nodes until EOF or, when closeTagRaw != "", a
// matching close tag is consumed (and the namespace scope popped by the
// caller).
func (p *parser) parseNodes(closeTagRaw string) ([]*Node, error) {
	var nodes []*Node
	for {
		if p.pos >= len(p.src) {
			if closeTagRaw != "" {
				return nil, newErr(ErrUnterminatedTag, p.line, "unterminated element <%s>", closeTagRaw)
			}
			return nodes, nil
		}

		if closeTagRaw != "" && p.startsWith("</") {
			closed, err := p.parseCloseTag()
			if err != nil {
				return nil, err
			}
			if closed != closeTagRaw {
				return nil, newErr(ErrMismatchedCloseTag, p.line, "expected </%s>, found </%s>", closeTagRaw, closed)
			}
			return nodes, nil
		}

		node, err := p.parseOneNode()
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}
}

func (p *parser) parseCloseTag() (string, error) {
	startLine := p.line
	p.skipN(2) // "</"
	name := p.readName()
	p.skipWhitespace()
	r, ok := p.peekByte()
	if !ok || r != '>' {
		return "", newErr(ErrUnterminatedTag, startLine, "malformed close tag </%s", name)
	}
	p.advance()
	return name, nil
}

func (p *parser) parseOneNode() (*Node, error) {
	startLine := p.line

	switch {
	case p.startsWith("<!--"):
		return p.parseComment()
	case p.startsWith("<![CDATA["):
		return p.parseCDATA()
	case p.startsWith("<?"):
		return p.parseProcessingInstruction()
	case p.startsWith("</"):
		return nil, newErr(ErrMismatchedCloseTag, startLine, "unexpected close tag with no matching open tag")
	case p.startsWith("<"):
		return p.parseElement()
	default:
		return p.parseText()
	}
}

func (p *parser) parseText() (*Node, error) {
	startLine := p.line
	start := p.pos
	for {
		r, ok := p.peekByte()
		if !ok || r == '<' {
			break
		}
		p.advance()
	}
	raw := string(p.src[start:p.pos])
	return &Node{Kind: NodeText, Text: decodeEntities(raw), Line: startLine}, nil
}

func (p *parser) parseComment() (*Node, error) {
	startLine := p.line
	p.skipN(4) // "<!--"
	start := p.pos
	for {
		if p.pos >= len(p.src) {
			return nil, newErr(ErrUnterminatedComment, startLine, "unterminated comment")
		}
		if p.startsWith("-->") {
			text := string(p.src[start:p.pos])
			p.skipN(3)
			return &Node{Kind: NodeComment, Text: text, Line: startLine}, nil
		}
		p.advance()
	}
}

func (p *parser) parseCDATA() (*Node, error) {
	startLine := p.line
	p.skipN(9) // "<![CDATA["
	start := p.pos
	for {
		if p.pos >= len(p.src) {
			return nil, newErr(ErrUnterminatedCDATA, startLine, "unterminated CDATA section")
		}
		if p.startsWith("]]>") {
			text := string(p.src[start:p.pos])
			p.skipN(3)
			return &Node{Kind: NodeCDATA, Text: text, Line: startLine}, nil
		}
		p.advance()
	}
}

func (p *parser) parseProcessingInstruction() (*Node, error) {
	startLine := p.line
	p.skipN(2) // "<?"
	target := p.readName()
	p.skipWhitespace()
	start := p.pos
	for {
		if p.pos >= len(p.src) {
			return nil, newErr(ErrUnterminatedProcessingInstruction, startLine, "unterminated processing instruction")
		}
		if p.startsWith("?>") {
			data := string(p.src[start:p.pos])
			p.skipN(2)
			return &Node{
				Kind: NodeProcessingInstruction,
				Name: avmname.NewQName(avmname.Namespace{}, target),
				Text: data,
				Line: startLine,
			}, nil
		}
		p.advance()
	}
}

func (p *parser) parseElement() (*Node, error) {
	startLine := p.line
	p.advance() // consume '<'
	rawTagName := p.readName()
	if rawTagName == "" {
		return nil, newErr(ErrInvalidName, startLine, "element name expected")
	}

	var attrs []rawAttr
	for {
		p.skipWhitespace()
		r, ok := p.peekByte()
		if !ok {
			return nil, newErr(ErrUnterminatedTag, startLine, "unterminated start tag <%s>", rawTagName)
		}
		if r == '/' || r == '>' {
			break
		}
		attrLine := p.line
		name := p.readName()
		if name == "" {
			return nil, newErr(ErrInvalidName, attrLine, "attribute name expected in <%s>", rawTagName)
		}
		p.skipWhitespace()
		var value string
		if r, ok := p.peekByte(); ok && r == '=' {
			p.advance()
			p.skipWhitespace()
			v, err := p.readQuotedValue(attrLine)
			if err != nil {
				return nil, err
			}
			value = v
		}
		for _, a := range attrs {
			if a.rawName == name {
				return nil, newErr(ErrDuplicateAttribute, attrLine, "duplicate attribute %q on <%s>", name, rawTagName)
			}
		}
		attrs = append(attrs, rawAttr{rawName: name, value: value, line: attrLine})
	}

	selfClosing := false
	if r, _ := p.peekByte(); r == '/' {
		selfClosing = true
		p.advance()
	}
	r, ok := p.peekByte()
	if !ok || r != '>' {
		return nil, newErr(ErrUnterminatedTag, startLine, "unterminated start tag <%s>", rawTagName)
	}
	p.advance() // consume '>'

	scope := p.deriveScope(attrs)

	elementName, err := p.resolveElementName(rawTagName, scope, startLine)
	if err != nil {
		return nil, err
	}

	resolvedAttrs, err := p.resolveAttributes(attrs, scope)
	if err != nil {
		return nil, err
	}

	node := &Node{Kind: NodeElement, Name: elementName, Attributes: resolvedAttrs, Line: startLine}

	if selfClosing {
		return node, nil
	}

	p.nsStack = append(p.nsStack, scope)
	children, err := p.parseNodes(rawTagName)
	p.nsStack = p.nsStack[:len(p.nsStack)-1]
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

// deriveScope copies the current top-of-stack namespace scope and applies
// any xmlns / xmlns:prefix declarations found among attrs — processed
// before any name on this tag is resolved, so a prefix declared anywhere
// on the tag (even after its first use) still resolves (§4.7's deferred
// attribute-prefix resolution).
func (p *parser) deriveScope(attrs []rawAttr) map[string]string {
	top := p.nsStack[len(p.nsStack)-1]
	scope := make(map[string]string, len(top)+1)
	for k, v := range top {
		scope[k] = v
	}
	for _, a := range attrs {
		switch {
		case a.rawName == "xmlns":
			scope[""] = a.value
		case strings.HasPrefix(a.rawName, "xmlns:"):
			scope[a.rawName[len("xmlns:"):]] = a.value
		}
	}
	return scope
}

func (p *parser) resolveElementName(raw string, scope map[string]string, line int) (avmname.QName, error) {
	prefix, local := splitPrefix(raw)
	if prefix == "xml" {
		return avmname.NewQName(avmname.NewWithPrefix(XMLNamespaceURI, "xml"), local), nil
	}
	uri, ok := scope[prefix]
	if !ok {
		return avmname.QName{}, newErr(ErrUnboundPrefix, line, "unbound prefix %q", prefix)
	}
	return avmname.NewQName(avmname.NewWithPrefix(uri, prefix), local), nil
}

func (p *parser) resolveAttributes(attrs []rawAttr, scope map[string]string) ([]Attribute, error) {
	var resolved []Attribute
	for _, a := range attrs {
		if a.rawName == "xmlns" || strings.HasPrefix(a.rawName, "xmlns:") {
			continue // namespace declarations are not themselves attributes
		}
		prefix, local := splitPrefix(a.rawName)
		var ns avmname.Namespace
		if prefix == "xml" {
			ns = avmname.NewWithPrefix(XMLNamespaceURI, "xml")
		} else if prefix != "" {
			uri, ok := scope[prefix]
			if !ok {
				return nil, newErr(ErrUnboundPrefix, a.line, "unbound prefix %q", prefix)
			}
			ns = avmname.NewWithPrefix(uri, prefix)
		}
		// unprefixed attributes carry no namespace, per the XML namespaces
		// rule that the default namespace does not apply to attributes.
		qn := avmname.NewQName(ns, local)
		for _, r := range resolved {
			if r.Name.Equals(qn) {
				return nil, newErr(ErrDuplicateAttribute, a.line, "duplicate resolved attribute %q", qn.String())
			}
		}
		resolved = append(resolved, Attribute{Name: qn, Value: decodeEntities(a.value)})
	}
	return resolved, nil
}

func splitPrefix(name string) (prefix, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}

func (p *parser) readQuotedValue(line int) (string, error) {
	r, ok := p.peekByte()
	if !ok || (r != '"' && r != '\'') {
		return "", newErr(ErrInvalidName, line, "expected quoted attribute value")
	}
	quote := r
	p.advance()
	start := p.pos
	for {
		r, ok := p.peekByte()
		if !ok {
			return "", newErr(ErrUnterminatedTag, line, "unterminated attribute value")
		}
		if r == quote {
			value := string(p.src[start:p.pos])
			p.advance()
			return value, nil
		}
		p.advance()
	}
}
