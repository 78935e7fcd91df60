package tidytree

import "github.com/webfolk/tidytree/internal/pool"

// WalkFunc is called once per node visited by Walk. Returning an
// error stops the walk and propagates the error to the caller.
type WalkFunc func(Node) error

// Walk visits n and its descendants depth-first, in document order.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}

	if err := f(n); err != nil {
		return err
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Walk(chld, f); err != nil {
			return err
		}
	}
	return nil
}

// textContent gathers the content of the text nodes under n. Comment
// bodies do not count as text.
func textContent(n Node) string {
	buf := pool.ByteSlice().Get()
	defer func() { pool.ByteSlice().Put(buf) }()

	_ = Walk(n, func(cur Node) error {
		if cur.Type() != TextNode {
			return nil
		}
		b, err := cur.Content(buf)
		if err != nil {
			return err
		}
		buf = b
		return nil
	})
	return string(buf)
}
