package mdrsort

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TextEncoding names the character encoding of exported text files.
type TextEncoding string

const (
	EncodingUTF8        TextEncoding = "utf-8"
	EncodingUTF8BOM     TextEncoding = "utf-8-bom"
	EncodingUTF16LE     TextEncoding = "utf-16le"
	EncodingWindows1252 TextEncoding = "windows-1252"
)

// ParseTextEncoding accepts the encoding names above, case-insensitively.
func ParseTextEncoding(s string) (TextEncoding, error) {
	switch e := TextEncoding(strings.ToLower(strings.TrimSpace(s))); e {
	case "", "utf8":
		return EncodingUTF8, nil
	case EncodingUTF8, EncodingUTF8BOM, EncodingUTF16LE, EncodingWindows1252:
		return e, nil
	default:
		return "", fmt.Errorf("unsupported text encoding %q", s)
	}
}

func (e TextEncoding) encoding() encoding.Encoding {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case EncodingWindows1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// Writer wraps w so UTF-8 text written to it is encoded as e. Closing the
// result flushes the encoder but never closes w.
func (e TextEncoding) Writer(w io.Writer) io.WriteCloser {
	enc := e.encoding()
	if enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, enc.NewEncoder())
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
