package tidytree

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lestrrat-go/pdebug"
	"golang.org/x/net/html"
)

// SpecialTagHandler reacts to special fragments: doctype
// declarations, processing instructions, and other markup opened with
// "<!" or "<?". The default parser has no handler and drops these
// fragments. A handler may return a node to append at the current
// position, nil to keep the fragment out of the tree, or an error to
// abort the parse.
type SpecialTagHandler interface {
	HandleSpecial(ctx context.Context, doc *Document, frag Fragment) (Node, error)
}

// SpecialTagHandlerFunc adapts a function to the SpecialTagHandler
// interface.
type SpecialTagHandlerFunc func(ctx context.Context, doc *Document, frag Fragment) (Node, error)

func (f SpecialTagHandlerFunc) HandleSpecial(ctx context.Context, doc *Document, frag Fragment) (Node, error) {
	return f(ctx, doc, frag)
}

// treeBuilder folds a fragment stream into a document tree. All of
// its state is local to one parse call.
type treeBuilder struct {
	doc     *Document
	reader  FragmentReader
	profile TagProfile
	special SpecialTagHandler
	stack   elementStack
	trace   *slog.Logger
}

func newTreeBuilder(ctx context.Context, doc *Document, rdr FragmentReader, profile TagProfile, special SpecialTagHandler) *treeBuilder {
	return &treeBuilder{
		doc:     doc,
		reader:  rdr,
		profile: profile,
		special: special,
		trace:   traceLoggerFrom(ctx),
	}
}

// container returns the node new content is appended to: the
// innermost open element, or the document when nothing is open.
func (b *treeBuilder) container() Node {
	if e := b.stack.Peek(); e != nil {
		return e
	}
	return b.doc
}

// process routes one fragment to its handler. Fragments of unknown
// type are dropped.
func (b *treeBuilder) process(ctx context.Context, frag Fragment) error {
	switch frag.Type {
	case TextFragment:
		return b.handleText(frag)
	case StartTagFragment:
		return b.handleStartTag(frag)
	case EndTagFragment:
		return b.handleEndTag(frag)
	case CommentFragment:
		return b.handleComment(frag)
	case SpecialFragment:
		return b.handleSpecial(ctx, frag)
	}
	b.trace.Debug("dropping fragment of unknown type", slog.Int("type", int(frag.Type)))
	return nil
}

func (b *treeBuilder) handleText(frag Fragment) error {
	return b.container().AddChild(b.doc.CreateText([]byte(frag.Data)))
}

func (b *treeBuilder) handleComment(frag Fragment) error {
	return b.container().AddChild(b.doc.CreateComment([]byte(frag.Data)))
}

func (b *treeBuilder) handleStartTag(frag Fragment) error {
	if pdebug.Enabled {
		g := pdebug.Marker("treeBuilder.handleStartTag %s", frag.Name)
		defer g.End()
	}

	name := strings.ToLower(frag.Name)

	// the lexer's flag and the tag table each suffice on their own
	selfClosing := frag.SelfClosing || b.profile.SelfClosing(name)

	if b.profile.RawText(name) && b.reader != nil {
		b.reader.EnterRawText(name)
	}

	if top := b.stack.Peek(); top != nil &&
		b.profile.OptionalClose(top.Name()) &&
		b.profile.ClosesPrevious(top.Name(), name) {
		b.trace.Debug("implicit close",
			slog.String("open", top.Name()), slog.String("incoming", name))
		b.stack.Pop()
	}

	e := b.doc.CreateElement(name)
	for _, attr := range frag.Attrs {
		// a repeated attribute name keeps the first value
		_ = e.SetAttribute(attr.Name, html.UnescapeString(attr.Value))
	}

	if err := b.container().AddChild(e); err != nil {
		return err
	}
	if !selfClosing {
		b.stack.Push(e)
	}
	return nil
}

func (b *treeBuilder) handleEndTag(frag Fragment) error {
	if pdebug.Enabled {
		g := pdebug.Marker("treeBuilder.handleEndTag %s", frag.Name)
		defer g.End()
	}

	name := strings.ToLower(frag.Name)
	if i := b.stack.IndexOf(name); i >= 0 {
		// closes the nearest open element of that name together with
		// everything still open inside it
		b.stack.Truncate(i)
		return nil
	}

	// nothing to close; keep the stray markup visible as text
	b.trace.Debug("orphan end tag", slog.String("name", name))
	return b.container().AddChild(b.doc.CreateText([]byte(frag.Raw)))
}

func (b *treeBuilder) handleSpecial(ctx context.Context, frag Fragment) error {
	if b.special == nil {
		return nil
	}
	n, err := b.special.HandleSpecial(ctx, b.doc, frag)
	if err != nil {
		return err
	}
	if n == nil {
		return nil
	}
	return b.container().AddChild(n)
}
