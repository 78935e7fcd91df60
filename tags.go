package tidytree

// TagProfile supplies the markup rules the tree builder consults: tag
// classes, and the pairwise rule for implicitly closing an open
// optional-close element. Names passed in are lower case. Profiles
// must be safe for concurrent use; the default profile is immutable.
type TagProfile interface {
	// SelfClosing reports whether the named tag never holds children
	// and closes itself, such as br or img.
	SelfClosing(name string) bool

	// RawText reports whether the named tag's body is lexed as raw
	// text rather than markup, such as script or style.
	RawText(name string) bool

	// OptionalClose reports whether the named tag's end tag may be
	// omitted, with closure implied by a following tag.
	OptionalClose(name string) bool

	// ClosesPrevious reports whether the incoming start tag implies
	// closure of the named open optional-close element, the way a new
	// p closes an open p.
	ClosesPrevious(open, incoming string) bool
}

// DefaultTagProfile returns the profile holding the standard HTML tag
// tables. The returned value is shared and immutable.
func DefaultTagProfile() TagProfile {
	return defaultProfile
}

var defaultProfile = htmlProfile{}

type htmlProfile struct{}

var selfClosingTags = nameSet(
	"area", "base", "basefont", "bgsound", "br", "col", "embed",
	"frame", "hr", "img", "input", "keygen", "link", "meta", "param",
	"source", "track", "wbr",
)

var rawTextTags = nameSet("script", "style", "textarea", "title")

// closedBy maps an optional-close tag to the start tags whose arrival
// implies its closure.
var closedBy = map[string]map[string]struct{}{
	"p": nameSet(
		"address", "article", "aside", "blockquote", "details", "div",
		"dl", "fieldset", "figcaption", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "hgroup", "hr",
		"main", "menu", "nav", "ol", "p", "pre", "section", "table",
		"ul",
	),
	"li":       nameSet("li"),
	"dt":       nameSet("dt", "dd"),
	"dd":       nameSet("dd", "dt"),
	"tr":       nameSet("tr", "tbody", "tfoot"),
	"td":       nameSet("td", "th", "tr"),
	"th":       nameSet("th", "td", "tr"),
	"thead":    nameSet("tbody", "tfoot"),
	"tbody":    nameSet("tbody", "tfoot"),
	"tfoot":    nameSet("tbody"),
	"option":   nameSet("option", "optgroup"),
	"optgroup": nameSet("optgroup"),
}

func nameSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (htmlProfile) SelfClosing(name string) bool {
	_, ok := selfClosingTags[name]
	return ok
}

func (htmlProfile) RawText(name string) bool {
	_, ok := rawTextTags[name]
	return ok
}

func (htmlProfile) OptionalClose(name string) bool {
	_, ok := closedBy[name]
	return ok
}

func (htmlProfile) ClosesPrevious(open, incoming string) bool {
	_, ok := closedBy[open][incoming]
	return ok
}
