package tidytree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dumper writes a structural outline of a document tree, one node per
// line, children indented under their parent. The format is meant for
// inspection and golden tests; it is not markup and cannot be parsed
// back.
type Dumper struct{}

func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	return d.DumpNode(out, doc)
}

func (d *Dumper) DumpNode(out io.Writer, n Node) error {
	return d.dump(out, n, 0)
}

func (d *Dumper) dump(out io.Writer, n Node, depth int) error {
	if n == nil {
		return ErrNilNode
	}

	var line string
	switch v := n.(type) {
	case *Document:
		line = "#document"
	case *Element:
		var sb strings.Builder
		sb.WriteByte('<')
		sb.WriteString(v.Name())
		for name, value := range v.Attributes() {
			fmt.Fprintf(&sb, " %s=%q", name, value)
		}
		sb.WriteByte('>')
		line = sb.String()
	case *Text:
		content, err := v.Content(nil)
		if err != nil {
			return err
		}
		line = strconv.Quote(string(content))
	case *Comment:
		content, err := v.Content(nil)
		if err != nil {
			return err
		}
		line = "<!-- " + string(content) + " -->"
	default:
		return ErrInvalidOperation
	}

	if _, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), line); err != nil {
		return err
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if err := d.dump(out, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
