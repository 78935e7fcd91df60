package tidytree

import (
	"context"

	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

// Parser converts markup into a Document. A Parser holds only
// configuration; each Parse call keeps its working state to itself,
// so a single Parser may be shared by any number of goroutines.
type Parser struct {
	profile   TagProfile
	special   SpecialTagHandler
	newReader func([]byte) FragmentReader
}

func NewParser(options ...ParserOption) *Parser {
	p := &Parser{
		profile: DefaultTagProfile(),
		newReader: func(src []byte) FragmentReader {
			return NewReader(src)
		},
	}
	for _, option := range options {
		switch option.Ident() {
		case identTagProfile{}:
			p.profile = option.Value().(TagProfile)
		case identSpecialTagHandler{}:
			p.special = option.Value().(SpecialTagHandler)
		case identReaderFunc{}:
			p.newReader = option.Value().(func([]byte) FragmentReader)
		}
	}
	return p
}

// Parse builds a document tree from src. Malformed markup is never an
// error; the recovery rules keep whatever structure can be salvaged.
// An error can only come from a special tag handler or from tree
// surgery gone wrong, and leaves no document behind.
func (p *Parser) Parse(ctx context.Context, src []byte) (*Document, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Parser.Parse")
		defer g.End()
	}

	doc := NewDocument()
	if len(src) == 0 {
		return doc, nil
	}

	rdr := p.newReader(src)
	b := newTreeBuilder(ctx, doc, rdr, p.profile, p.special)
	for rdr.Next() {
		if err := b.process(ctx, rdr.Fragment()); err != nil {
			return nil, errors.Wrap(err, `failed to build document tree`)
		}
	}
	return doc, nil
}
