// Package encoding maps charset labels, as they appear in markup and
// HTTP headers, onto golang.org/x/text/encoding encodings. It exists
// partly because the x/text package names such as "unicode" clash
// with the stdlib, and it is easier to keep them hidden from the rest
// of tidytree.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Load resolves a charset label to an Encoding. Labels match ignoring
// case, dashes, underscores, and spaces, so "UTF-8", "utf8" and
// "Utf_8" all resolve to the same encoding. Unknown labels resolve to
// nil.
//
// Following common web practice, iso-8859-1 and ascii resolve to
// windows-1252, which is a superset of both.
func Load(name string) enc.Encoding {
	switch normalize(name) {
	case "utf8":
		return unicode.UTF8
	case "iso88591", "latin1", "ascii", "usascii", "windows1252", "cp1252":
		return charmap.Windows1252
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88593":
		return charmap.ISO8859_3
	case "iso88594":
		return charmap.ISO8859_4
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88596":
		return charmap.ISO8859_6
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88598":
		return charmap.ISO8859_8
	case "iso885910":
		return charmap.ISO8859_10
	case "iso885913":
		return charmap.ISO8859_13
	case "iso885914":
		return charmap.ISO8859_14
	case "iso885915", "latin9":
		return charmap.ISO8859_15
	case "iso885916":
		return charmap.ISO8859_16
	case "windows1250":
		return charmap.Windows1250
	case "windows1251":
		return charmap.Windows1251
	case "windows1253":
		return charmap.Windows1253
	case "windows1254":
		return charmap.Windows1254
	case "windows1255":
		return charmap.Windows1255
	case "windows1256":
		return charmap.Windows1256
	case "windows1257":
		return charmap.Windows1257
	case "windows1258":
		return charmap.Windows1258
	case "windows874":
		return charmap.Windows874
	case "koi8r":
		return charmap.KOI8R
	case "koi8u":
		return charmap.KOI8U
	case "macintosh":
		return charmap.Macintosh
	case "cp437":
		return charmap.CodePage437
	case "cp866":
		return charmap.CodePage866
	case "shiftjis", "sjis", "cp932", "mskanji":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "iso2022jp", "jis":
		return japanese.ISO2022JP
	case "euckr", "cp949":
		return korean.EUCKR
	case "big5":
		return traditionalchinese.Big5
	case "gbk", "gb2312":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "hzgb2312":
		return simplifiedchinese.HZGB2312
	}
	return nil
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
