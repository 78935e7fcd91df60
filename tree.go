package tidytree

import "errors"

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (n *treeNode) SetOwnerDocument(doc *Document) error {
	if n == nil {
		return ErrNilNode
	}
	if doc == nil {
		return errors.New("cannot set nil document")
	}

	n.doc = doc
	return nil
}

func (n *treeNode) SetParent(p Node) error {
	if n == nil {
		return ErrNilNode
	}
	if p == nil {
		return errors.New("cannot set nil parent")
	}

	n.parent = p
	return nil
}

func addSibling(n, sibling Node) error {
	if n == nil || sibling == nil {
		return ErrNilNode
	}

	l := n
	lt := n.getTreeNode()
	for lt.next != nil {
		l = lt.next
		lt = l.getTreeNode()
	}

	st := sibling.getTreeNode()
	lt.next = sibling
	st.prev = l
	if lt.parent != nil {
		st.parent = lt.parent
		lt.parent.getTreeNode().lastChild = sibling
	}
	return nil
}

// addChild appends child as the last child of parent. Adjacent text
// nodes are kept separate; no merging happens here.
func addChild(parent, child Node) error {
	pt := parent.getTreeNode()
	ct := child.getTreeNode()

	l := pt.lastChild
	if l == nil { // no children yet
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}

	// addSibling handles setting the parent and the lastChild pointer
	return addSibling(l, child)
}

func addContent(n Node, content []byte) error {
	t := NewText(content)
	if doc := n.OwnerDocument(); doc != nil {
		_ = t.SetOwnerDocument(doc)
	}
	return n.AddChild(t)
}
