package tidytree

import (
	"bytes"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/strcursor"
)

// Reader lexes markup into fragments. It is the FragmentReader used
// by Parse unless a parser option installs another one.
//
// The lexer is deliberately forgiving: anything that does not look
// like a tag, comment, or directive is text, including stray '<'
// characters.
type Reader struct {
	src     []byte
	cursor  strcursor.Cursor
	off     int // byte offset of the cursor within src
	frag    Fragment
	rawName string // non-empty while in raw text mode
}

var _ FragmentReader = (*Reader)(nil)

func NewReader(src []byte) *Reader {
	return &Reader{
		src:    src,
		cursor: strcursor.NewRuneCursor(bytes.NewReader(src)),
	}
}

// eof is what the rune cursor reports past the end of input. Bytes
// that do not decode surface the same way, so they terminate lexing
// exactly like end of input.
const eof = utf8.RuneError

// The curXxx wrappers keep all cursor access in one place. Peek
// positions are 1-based: curPeek(1) is the character under the
// cursor. The byte offset is tracked here because raw captures slice
// the original source.

func (r *Reader) curHasChars(n int) bool {
	return r.curPeek(n) != eof
}

func (r *Reader) curPeek(n int) rune {
	if n == 1 {
		return r.cursor.Peek()
	}
	return r.cursor.PeekN(n)
}

func (r *Reader) curAdvance(n int) {
	for i := 0; i < n; i++ {
		c := r.cursor.Peek()
		if c == eof {
			return
		}
		if err := r.cursor.Advance(1); err != nil {
			return
		}
		r.off += utf8.RuneLen(c)
	}
}

func (r *Reader) curConsume(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		c := r.cursor.Peek()
		if c == eof {
			break
		}
		if err := r.cursor.Advance(1); err != nil {
			break
		}
		sb.WriteRune(c)
		r.off += utf8.RuneLen(c)
	}
	return sb.String()
}

func (r *Reader) curHasPrefix(s string) bool {
	return r.cursor.HasPrefixString(s)
}

func (r *Reader) curOffset() int {
	return r.off
}

// EnterRawText switches the lexer into raw text mode for the named
// tag. Only lexing that happens after the call is affected.
func (r *Reader) EnterRawText(name string) {
	r.rawName = strings.ToLower(name)
}

// Next lexes the next fragment. It reports false once the input is
// exhausted.
func (r *Reader) Next() bool {
	for {
		if !r.curHasChars(1) {
			return false
		}
		frag, ok := r.lex()
		if !ok {
			// raw text mode with an empty body produces nothing
			continue
		}
		r.frag = frag
		return true
	}
}

// Fragment returns the fragment the last call to Next advanced to.
func (r *Reader) Fragment() Fragment {
	return r.frag
}

// Fragments returns a single-use iterator over the remaining
// fragments.
func (r *Reader) Fragments() iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		for r.Next() {
			if !yield(r.Fragment()) {
				break
			}
		}
	}
}

func (r *Reader) lex() (Fragment, bool) {
	if r.rawName != "" {
		return r.lexRawText()
	}

	if r.curPeek(1) == '<' {
		switch {
		case r.curHasPrefix("<!--"):
			return r.lexComment(), true
		case r.curHasPrefix("<!"), r.curHasPrefix("<?"):
			return r.lexSpecial(), true
		case r.curHasPrefix("</"):
			if r.curHasChars(3) && isNameStart(r.curPeek(3)) {
				return r.lexEndTag(), true
			}
		default:
			if r.curHasChars(2) && isNameStart(r.curPeek(2)) {
				return r.lexStartTag(), true
			}
		}
	}
	return r.lexText(), true
}

// lexText consumes a run of character data. The character under the
// cursor is already known not to begin a tag.
func (r *Reader) lexText() Fragment {
	i := 1
	for r.curHasChars(i + 1) {
		if r.constructAt(i + 1) {
			break
		}
		i++
	}
	return Fragment{Type: TextFragment, Data: r.curConsume(i)}
}

// constructAt reports whether the character at position i (1-based)
// begins a tag, comment, or directive.
func (r *Reader) constructAt(i int) bool {
	if r.curPeek(i) != '<' || !r.curHasChars(i+1) {
		return false
	}
	switch c := r.curPeek(i + 1); {
	case isNameStart(c), c == '!', c == '?':
		return true
	case c == '/':
		return r.curHasChars(i+2) && isNameStart(r.curPeek(i+2))
	}
	return false
}

func (r *Reader) lexStartTag() Fragment {
	if pdebug.Enabled {
		g := pdebug.Marker("Reader.lexStartTag")
		defer g.End()
	}

	r.curAdvance(1) // '<'
	frag := Fragment{Type: StartTagFragment, Name: r.lexName()}

	for r.curHasChars(1) {
		r.skipSpace()
		if !r.curHasChars(1) {
			break
		}
		switch c := r.curPeek(1); {
		case c == '>':
			r.curAdvance(1)
			return frag
		case c == '/':
			if r.curHasPrefix("/>") {
				frag.SelfClosing = true
				r.curAdvance(2)
				return frag
			}
			r.curAdvance(1)
		case isNameStart(c):
			frag.Attrs = append(frag.Attrs, r.lexAttr())
		default:
			// junk inside the tag
			r.curAdvance(1)
		}
	}
	// input ended inside the tag; emit what was collected
	return frag
}

func (r *Reader) lexAttr() Attr {
	attr := Attr{Name: r.lexName()}
	r.skipSpace()
	if !r.curHasChars(1) || r.curPeek(1) != '=' {
		return attr
	}
	r.curAdvance(1)
	r.skipSpace()
	if !r.curHasChars(1) {
		return attr
	}

	if q := r.curPeek(1); q == '"' || q == '\'' {
		r.curAdvance(1)
		i := 0
		for r.curHasChars(i+1) && r.curPeek(i+1) != q {
			i++
		}
		attr.Value = r.curConsume(i)
		if r.curHasChars(1) {
			r.curAdvance(1) // closing quote
		}
		return attr
	}

	i := 0
	for r.curHasChars(i + 1) {
		if c := r.curPeek(i + 1); isSpaceChar(c) || c == '>' {
			break
		}
		i++
	}
	attr.Value = r.curConsume(i)
	return attr
}

func (r *Reader) lexEndTag() Fragment {
	start := r.curOffset()
	r.curAdvance(2) // '</'
	name := r.lexName()
	for r.curHasChars(1) {
		c := r.curPeek(1)
		r.curAdvance(1)
		if c == '>' {
			break
		}
	}
	return Fragment{
		Type: EndTagFragment,
		Name: name,
		Raw:  string(r.src[start:r.curOffset()]),
	}
}

func (r *Reader) lexComment() Fragment {
	r.curAdvance(4) // '<!--'
	i := 0
	closed := false
	for r.curHasChars(i + 1) {
		if r.curPeek(i+1) == '-' && r.curHasChars(i+3) &&
			r.curPeek(i+2) == '-' && r.curPeek(i+3) == '>' {
			closed = true
			break
		}
		i++
	}
	data := r.curConsume(i)
	if closed {
		r.curAdvance(3) // '-->'
	}
	return Fragment{Type: CommentFragment, Data: data}
}

func (r *Reader) lexSpecial() Fragment {
	start := r.curOffset()
	r.curAdvance(2) // '<!' or '<?'
	i := 0
	closed := false
	for r.curHasChars(i + 1) {
		if r.curPeek(i+1) == '>' {
			closed = true
			break
		}
		i++
	}
	data := r.curConsume(i)
	if closed {
		r.curAdvance(1)
	}
	return Fragment{
		Type: SpecialFragment,
		Data: data,
		Raw:  string(r.src[start:r.curOffset()]),
	}
}

func (r *Reader) lexRawText() (Fragment, bool) {
	if pdebug.Enabled {
		pdebug.Printf("lexing raw text until </%s>", r.rawName)
	}

	i := 0
	for r.curHasChars(i + 1) {
		if r.curPeek(i+1) == '<' && r.rawEndAt(i+1) {
			break
		}
		i++
	}
	r.rawName = ""
	if i == 0 {
		return Fragment{}, false
	}
	return Fragment{Type: TextFragment, Data: r.curConsume(i)}, true
}

// rawEndAt reports whether position i starts the end tag that
// terminates raw text mode.
func (r *Reader) rawEndAt(i int) bool {
	if !r.curHasChars(i+1) || r.curPeek(i+1) != '/' {
		return false
	}
	j := i + 2
	for _, rc := range r.rawName {
		if !r.curHasChars(j) || unicode.ToLower(r.curPeek(j)) != rc {
			return false
		}
		j++
	}
	if !r.curHasChars(j) {
		return true // truncated by end of input, close anyway
	}
	c := r.curPeek(j)
	return c == '>' || c == '/' || isSpaceChar(c)
}

func (r *Reader) lexName() string {
	i := 0
	for r.curHasChars(i+1) && isNameChar(r.curPeek(i+1)) {
		i++
	}
	return r.curConsume(i)
}

func (r *Reader) skipSpace() {
	for r.curHasChars(1) && isSpaceChar(r.curPeek(1)) {
		r.curAdvance(1)
	}
}

func isNameStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c rune) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') ||
		c == '-' || c == ':' || c == '_' || c == '.'
}

func isSpaceChar(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f'
}
