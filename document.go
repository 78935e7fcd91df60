package tidytree

// Document is the root of a parsed tree. Exactly one exists per
// parse, created before any fragment is processed. It doubles as the
// node factory: nodes made through the Create methods carry their
// owner document and can be attached anywhere under it.
type Document struct {
	treeNode
}

var _ Node = (*Document)(nil)

func NewDocument() *Document {
	doc := &Document{}
	doc.treeNode = treeNode{doc: doc}
	return doc
}

func (d *Document) CreateElement(name string) *Element {
	e := NewElement(name)
	_ = e.SetOwnerDocument(d)
	return e
}

func (d *Document) CreateText(content []byte) *Text {
	t := NewText(content)
	_ = t.SetOwnerDocument(d)
	return t
}

func (d *Document) CreateComment(content []byte) *Comment {
	c := NewComment(content)
	_ = c.SetOwnerDocument(d)
	return c
}

func (*Document) Type() NodeType {
	return DocumentNode
}

func (*Document) Name() string {
	return "#document"
}

func (d *Document) AddChild(cur Node) error {
	if cur == nil {
		return ErrNilNode
	}
	if cur.Type() == DocumentNode {
		return ErrInvalidOperation
	}
	return addChild(d, cur)
}

func (d *Document) AddContent(b []byte) error {
	return addContent(d, b)
}

// AddSibling is not defined for the document root.
func (d *Document) AddSibling(Node) error {
	return ErrInvalidOperation
}

// TextContent returns the concatenated text of every text node in the
// document, in document order.
func (d *Document) TextContent() string {
	return textContent(d)
}
