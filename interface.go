package tidytree

import "errors"

// NodeType identifies the concrete kind of a Node.
type NodeType int

const (
	DocumentNode NodeType = iota + 1
	ElementNode
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	}
	return "Unknown"
}

var (
	// ErrInvalidOperation is returned for tree mutations that are not
	// defined for the node kind, such as adding a child to a text node.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNilNode is returned when an operation receives a nil node.
	ErrNilNode = errors.New("nil node")

	// ErrDuplicateAttribute is returned by Element.SetAttribute when the
	// element already carries an attribute with that name.
	ErrDuplicateAttribute = errors.New("duplicate attribute")
)

// Node is implemented by every member of a document tree. The
// interface is closed: only the kinds defined in this package
// (Document, Element, Text, Comment) satisfy it, so code holding a
// Node deals with a fixed set of variants.
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	Type() NodeType

	// Name returns the node name: the tag name for an element, and
	// "#document", "#text", or "#comment" for the other kinds.
	Name() string

	// Content appends the content of the node to the provided byte
	// slice and returns the result. If dst is nil, a new slice is
	// allocated.
	Content(dst []byte) ([]byte, error)

	AddChild(Node) error
	AddContent([]byte) error
	AddSibling(Node) error

	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node
	Parent() Node
	OwnerDocument() *Document

	SetOwnerDocument(*Document) error
	SetParent(Node) error
}
