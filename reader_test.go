package tidytree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectFragments(t *testing.T, src string) []Fragment {
	t.Helper()
	var frags []Fragment
	r := NewReader([]byte(src))
	for r.Next() {
		frags = append(frags, r.Fragment())
	}
	return frags
}

func TestReaderText(t *testing.T) {
	inputs := []string{
		"plain text",
		"1 < 2 and AT&T",
		"a<",
		"<3 hearts",
		"x</3>y",
	}
	for _, input := range inputs {
		frags := collectFragments(t, input)
		require.Len(t, frags, 1, "one fragment for '%s'", input)
		require.Equal(t, Fragment{Type: TextFragment, Data: input}, frags[0], "everything is text for '%s'", input)
	}
}

func TestReaderStartTags(t *testing.T) {
	inputs := map[string]Fragment{
		`<div>`:               {Type: StartTagFragment, Name: "div"},
		`<br/>`:               {Type: StartTagFragment, Name: "br", SelfClosing: true},
		`<br />`:              {Type: StartTagFragment, Name: "br", SelfClosing: true},
		`<input type="text">`: {Type: StartTagFragment, Name: "input", Attrs: []Attr{{Name: "type", Value: "text"}}},
		`<a href='/x'>`:       {Type: StartTagFragment, Name: "a", Attrs: []Attr{{Name: "href", Value: "/x"}}},
		`<a href=/x>`:         {Type: StartTagFragment, Name: "a", Attrs: []Attr{{Name: "href", Value: "/x"}}},
		`<input disabled>`:    {Type: StartTagFragment, Name: "input", Attrs: []Attr{{Name: "disabled"}}},
		`<A HREF="x">`:        {Type: StartTagFragment, Name: "A", Attrs: []Attr{{Name: "HREF", Value: "x"}}},
		`<div`:                {Type: StartTagFragment, Name: "div"},
	}
	for input, expected := range inputs {
		frags := collectFragments(t, input)
		require.Len(t, frags, 1, "one fragment for '%s'", input)
		require.Equal(t, expected, frags[0], "fragment matches for '%s'", input)
	}
}

func TestReaderAttrsVerbatim(t *testing.T) {
	// the lexer reports attributes exactly as written; folding,
	// deduplication and entity decoding happen later
	frags := collectFragments(t, `<td rowspan="2" ROWSPAN='3' title="a &amp; b">`)
	require.Len(t, frags, 1)
	require.Equal(t, []Attr{
		{Name: "rowspan", Value: "2"},
		{Name: "ROWSPAN", Value: "3"},
		{Name: "title", Value: "a &amp; b"},
	}, frags[0].Attrs)
}

func TestReaderEndTags(t *testing.T) {
	inputs := map[string]Fragment{
		`</div>`:     {Type: EndTagFragment, Name: "div", Raw: `</div>`},
		`</div foo>`: {Type: EndTagFragment, Name: "div", Raw: `</div foo>`},
		`</div`:      {Type: EndTagFragment, Name: "div", Raw: `</div`},
	}
	for input, expected := range inputs {
		frags := collectFragments(t, input)
		require.Len(t, frags, 1, "one fragment for '%s'", input)
		require.Equal(t, expected, frags[0], "fragment matches for '%s'", input)
	}
}

func TestReaderComments(t *testing.T) {
	inputs := map[string]Fragment{
		`<!-- hello -->`: {Type: CommentFragment, Data: " hello "},
		`<!---->`:        {Type: CommentFragment, Data: ""},
		`<!-- no end`:    {Type: CommentFragment, Data: " no end"},
	}
	for input, expected := range inputs {
		frags := collectFragments(t, input)
		require.Len(t, frags, 1, "one fragment for '%s'", input)
		require.Equal(t, expected, frags[0], "fragment matches for '%s'", input)
	}
}

func TestReaderSpecials(t *testing.T) {
	inputs := map[string]Fragment{
		`<!DOCTYPE html>`: {Type: SpecialFragment, Data: "DOCTYPE html", Raw: `<!DOCTYPE html>`},
		`<?pi target>`:    {Type: SpecialFragment, Data: "pi target", Raw: `<?pi target>`},
		`<!unterminated`:  {Type: SpecialFragment, Data: "unterminated", Raw: `<!unterminated`},
	}
	for input, expected := range inputs {
		frags := collectFragments(t, input)
		require.Len(t, frags, 1, "one fragment for '%s'", input)
		require.Equal(t, expected, frags[0], "fragment matches for '%s'", input)
	}
}

func TestReaderRawText(t *testing.T) {
	const body = `if (a < b) { document.write("</div>"); }`
	r := NewReader([]byte(`<script>` + body + `</script>after`))

	require.True(t, r.Next())
	require.Equal(t, StartTagFragment, r.Fragment().Type)
	r.EnterRawText(r.Fragment().Name)

	require.True(t, r.Next())
	require.Equal(t, Fragment{Type: TextFragment, Data: body}, r.Fragment(), "raw text swallows everything up to the matching end tag")

	require.True(t, r.Next())
	require.Equal(t, EndTagFragment, r.Fragment().Type)
	require.Equal(t, "script", r.Fragment().Name)

	require.True(t, r.Next())
	require.Equal(t, Fragment{Type: TextFragment, Data: "after"}, r.Fragment())

	require.False(t, r.Next())
}

func TestReaderRawTextCaseInsensitiveClose(t *testing.T) {
	r := NewReader([]byte(`x = 1;</SCRIPT >y`))
	r.EnterRawText("script")

	require.True(t, r.Next())
	require.Equal(t, Fragment{Type: TextFragment, Data: "x = 1;"}, r.Fragment())

	require.True(t, r.Next())
	require.Equal(t, EndTagFragment, r.Fragment().Type)
	require.Equal(t, "SCRIPT", r.Fragment().Name)
}

func TestReaderRawTextUnterminated(t *testing.T) {
	r := NewReader([]byte(`body { color: red`))
	r.EnterRawText("style")

	require.True(t, r.Next())
	require.Equal(t, Fragment{Type: TextFragment, Data: "body { color: red"}, r.Fragment(), "unterminated raw text runs to the end of input")
	require.False(t, r.Next())
}

func TestReaderRawTextEmpty(t *testing.T) {
	r := NewReader([]byte(`</textarea>x`))
	r.EnterRawText("textarea")

	require.True(t, r.Next())
	require.Equal(t, EndTagFragment, r.Fragment().Type, "empty raw text produces no fragment")
	require.Equal(t, "textarea", r.Fragment().Name)

	require.True(t, r.Next())
	require.Equal(t, Fragment{Type: TextFragment, Data: "x"}, r.Fragment())
}

func TestReaderFragments(t *testing.T) {
	var types []FragmentType
	for frag := range NewReader([]byte(`<p>one</p><!-- c --><!x>`)).Fragments() {
		types = append(types, frag.Type)
	}
	require.Equal(t, []FragmentType{
		StartTagFragment,
		TextFragment,
		EndTagFragment,
		CommentFragment,
		SpecialFragment,
	}, types)
}

func TestReaderMultibyteText(t *testing.T) {
	// consumed text comes back rune for rune, and the raw capture of
	// the end tag still slices the source at the right byte offsets
	frags := collectFragments(t, "日本語<em>véry</em>")
	require.Equal(t, []Fragment{
		{Type: TextFragment, Data: "日本語"},
		{Type: StartTagFragment, Name: "em"},
		{Type: TextFragment, Data: "véry"},
		{Type: EndTagFragment, Name: "em", Raw: `</em>`},
	}, frags)
}

func TestReaderMixed(t *testing.T) {
	frags := collectFragments(t, `a<b>c</b>`)
	require.Equal(t, []Fragment{
		{Type: TextFragment, Data: "a"},
		{Type: StartTagFragment, Name: "b"},
		{Type: TextFragment, Data: "c"},
		{Type: EndTagFragment, Name: "b", Raw: `</b>`},
	}, frags)
}
