package tidytree

// FragmentType classifies one unit of lexer output.
type FragmentType int

const (
	TextFragment FragmentType = iota + 1
	StartTagFragment
	EndTagFragment
	CommentFragment
	SpecialFragment
)

func (t FragmentType) String() string {
	switch t {
	case TextFragment:
		return "Text"
	case StartTagFragment:
		return "StartTag"
	case EndTagFragment:
		return "EndTag"
	case CommentFragment:
		return "Comment"
	case SpecialFragment:
		return "Special"
	}
	return "Unknown"
}

// Attr is one attribute as it appeared in a start tag: the name as
// written, the value raw and undecoded. Repeated names are preserved
// here; they are resolved when the attribute set is materialized on
// an element.
type Attr struct {
	Name  string
	Value string
}

// Fragment is one classified unit of lexer output.
type Fragment struct {
	// Type discriminates which of the remaining fields carry meaning.
	Type FragmentType

	// Data holds the body: the text run, the comment body, or the
	// inside of a special tag.
	Data string

	// Name is the tag name as written, for start and end tags.
	Name string

	// Attrs lists the attributes of a start tag in source order.
	Attrs []Attr

	// SelfClosing reports whether a start tag was written in the
	// self-closing form.
	SelfClosing bool

	// Raw is the original markup of an end tag or special tag.
	Raw string
}

// FragmentReader produces the fragment stream consumed by the tree
// builder. Implementations are single-pass; a reader cannot be
// restarted.
type FragmentReader interface {
	// Next advances to the next fragment, reporting false once the
	// input is exhausted.
	Next() bool

	// Fragment returns the fragment Next advanced to.
	Fragment() Fragment

	// EnterRawText switches the lexer into raw text mode scoped to
	// the named tag: everything up to the matching end tag comes out
	// as a single text fragment. The mode ends on its own when the
	// end tag is reached.
	EnterRawText(name string)
}
