package tidytree

// Comment is a leaf node holding a comment body, without the
// enclosing markup delimiters.
type Comment struct {
	treeNode
	content []byte
}

var _ Node = (*Comment)(nil)

func NewComment(content []byte) *Comment {
	return &Comment{
		content: content,
	}
}

func (*Comment) Type() NodeType {
	return CommentNode
}

func (*Comment) Name() string {
	return "#comment"
}

func (n *Comment) Content(dst []byte) ([]byte, error) {
	return append(dst, n.content...), nil
}

// AddChild is not defined for comment nodes.
func (n *Comment) AddChild(Node) error {
	return ErrInvalidOperation
}

func (n *Comment) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Comment) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}
