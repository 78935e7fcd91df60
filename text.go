package tidytree

// Text is a leaf node holding literal character data. The parser
// creates one text node per text fragment; adjacent runs are not
// merged.
type Text struct {
	treeNode
	content []byte
}

var _ Node = (*Text)(nil)

func NewText(content []byte) *Text {
	return &Text{
		content: content,
	}
}

func (*Text) Type() NodeType {
	return TextNode
}

func (*Text) Name() string {
	return "#text"
}

func (n *Text) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

// AddChild is not defined for text nodes.
func (n *Text) AddChild(Node) error {
	return ErrInvalidOperation
}

func (n *Text) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Text) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}
