package tidytree

import (
	"iter"
	"strings"

	"github.com/webfolk/tidytree/internal/orderedmap"
)

// Element is a named container node. The name is stored lower-cased:
// HTML tag and attribute names are case-insensitive, and folding once
// at creation keeps every later comparison a plain string match.
type Element struct {
	treeNode
	name  string
	attrs *orderedmap.Map[string, string]
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given name. Please note
// that elements created this way are orphan nodes. You normally want
// to create an element using the Document.CreateElement method, which
// also sets the owner document for the element.
func NewElement(name string) *Element {
	return &Element{
		name:  strings.ToLower(name),
		attrs: orderedmap.New[string, string](),
	}
}

func (*Element) Type() NodeType {
	return ElementNode
}

func (e *Element) Name() string {
	return e.name
}

func (e *Element) AddChild(child Node) error {
	if child == nil {
		return ErrNilNode
	}
	if child.Type() == DocumentNode {
		return ErrInvalidOperation
	}
	return addChild(e, child)
}

func (e *Element) AddContent(b []byte) error {
	return addContent(e, b)
}

func (e *Element) AddSibling(sibling Node) error {
	return addSibling(e, sibling)
}

// SetAttribute stores an attribute on the element. The name is folded
// to lower case. When the name is already present the stored value is
// kept and ErrDuplicateAttribute is returned: the first occurrence
// wins.
func (e *Element) SetAttribute(name, value string) error {
	if err := e.attrs.Set(strings.ToLower(name), value); err != nil {
		return ErrDuplicateAttribute
	}
	return nil
}

// Attribute returns the value of the named attribute. Lookup is
// case-insensitive.
func (e *Element) Attribute(name string) (string, bool) {
	return e.attrs.Get(strings.ToLower(name))
}

// Attributes yields the element's attributes in the order they were
// first set.
func (e *Element) Attributes() iter.Seq2[string, string] {
	return e.attrs.Range()
}

func (e *Element) AttributeCount() int {
	return e.attrs.Len()
}

// TextContent returns the concatenated text of every text node under
// the element, in document order.
func (e *Element) TextContent() string {
	return textContent(e)
}
