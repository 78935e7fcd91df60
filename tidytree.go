// Package tidytree builds a document tree out of HTML-ish markup,
// surviving the kind of tag soup real pages are made of. Unmatched
// end tags, unclosed elements, duplicate attributes and tags that
// close their neighbors implicitly are all absorbed instead of being
// reported as errors. The resulting tree is a plain node hierarchy
// with elements, text and comments under a single document root.
package tidytree

import "context"

// Version is the library version, reported by the bundled commands.
const Version = "0.1.0"

// Parse builds a document tree from src using a parser with the given
// options. Use NewParser directly to amortize option processing over
// many inputs.
func Parse(ctx context.Context, src []byte, options ...ParserOption) (*Document, error) {
	return NewParser(options...).Parse(ctx, src)
}
