package tidytree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentCreate(t *testing.T) {
	doc := NewDocument()
	require.Equal(t, DocumentNode, doc.Type())
	require.Equal(t, "#document", doc.Name())

	e := doc.CreateElement("div")
	require.Equal(t, doc, e.OwnerDocument(), "created nodes carry their owner")

	txt := doc.CreateText([]byte("x"))
	require.Equal(t, doc, txt.OwnerDocument())

	cmt := doc.CreateComment([]byte("y"))
	require.Equal(t, doc, cmt.OwnerDocument())
}

func TestDocumentAddChild(t *testing.T) {
	doc := NewDocument()

	require.Equal(t, ErrNilNode, doc.AddChild(nil), "AddChild rejects nil")
	require.Equal(t, ErrInvalidOperation, doc.AddChild(NewDocument()), "a document cannot hold another document")
	require.Equal(t, ErrInvalidOperation, doc.AddSibling(NewDocument()), "the root has no siblings")

	e := doc.CreateElement("div")
	require.NoError(t, doc.AddChild(e))
	require.NoError(t, e.AddContent([]byte("hi")))
	require.Equal(t, "hi", doc.TextContent())
}

func TestWalkOrder(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("outer")
	inner := doc.CreateElement("inner")
	require.NoError(t, doc.AddChild(outer))
	require.NoError(t, outer.AddChild(inner))
	require.NoError(t, inner.AddContent([]byte("deep")))
	require.NoError(t, outer.AddChild(doc.CreateText([]byte("shallow"))))

	var names []string
	require.NoError(t, Walk(doc, func(n Node) error {
		names = append(names, n.Name())
		return nil
	}))
	require.Equal(t, []string{"#document", "outer", "inner", "#text", "#text"}, names, "walk is depth first in document order")

	require.Equal(t, ErrNilNode, Walk(nil, func(Node) error { return nil }))
}
