package tidytree

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identTagProfile struct{}
type identSpecialTagHandler struct{}
type identReaderFunc struct{}

type ParserOption interface {
	Option
	parserOption()
}

type parserOption struct{ Option }

func (*parserOption) parserOption() {}

// WithTagProfile overrides the tag classification tables used by the
// parser. Pass this to parse markup whose vocabulary differs from
// HTML, for example template dialects with their own void tags.
func WithTagProfile(v TagProfile) ParserOption {
	return &parserOption{option.New(identTagProfile{}, v)}
}

// WithSpecialTagHandler installs a handler for doctype declarations,
// processing instructions and other "<!"/"<?" markup. Without a
// handler these fragments are dropped.
func WithSpecialTagHandler(v SpecialTagHandler) ParserOption {
	return &parserOption{option.New(identSpecialTagHandler{}, v)}
}

// WithReaderFunc replaces the fragment reader constructor. The parser
// calls the function once per Parse call with the source bytes.
func WithReaderFunc(v func([]byte) FragmentReader) ParserOption {
	return &parserOption{option.New(identReaderFunc{}, v)}
}
