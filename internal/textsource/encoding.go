package textsource

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrEncoding reports an unsupported encoding name.
var ErrEncoding = errors.New("unsupported encoding")

// Encoding names the byte encoding of a text source.
type Encoding string

const (
	// EncodingAuto honours a UTF-8 or UTF-16 byte order mark and falls back to UTF-8.
	EncodingAuto    Encoding = "auto"
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF16LE Encoding = "utf-16le"
	EncodingUTF16BE Encoding = "utf-16be"
)

// Encodings lists the accepted encoding names in display order.
func Encodings() []Encoding {
	return []Encoding{EncodingAuto, EncodingUTF8, EncodingUTF16LE, EncodingUTF16BE}
}

// ParseEncoding normalizes an encoding name. An empty name selects EncodingAuto.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "utf-16le", "utf16le", "utf-16", "utf16":
		return EncodingUTF16LE, nil
	case "utf-16be", "utf16be":
		return EncodingUTF16BE, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrEncoding, name)
	}
}

// decoder returns a fresh transformer for input starting with head;
// decoders are stateful and must not be shared between reads. UTF-8 input
// is validated rather than repaired, so invalid bytes fail the read with
// encoding.ErrInvalidUTF8.
func (e Encoding) decoder(head []byte) (transform.Transformer, error) {
	switch e {
	case "", EncodingAuto:
		switch {
		case bytes.HasPrefix(head, bomUTF16LE):
			return EncodingUTF16LE.decoder(head)
		case bytes.HasPrefix(head, bomUTF16BE):
			return EncodingUTF16BE.decoder(head)
		}
		return utf8Decoder(), nil
	case EncodingUTF8:
		return utf8Decoder(), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrEncoding, string(e))
	}
}

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// utf8Decoder fails on invalid UTF-8 rather than substituting U+FFFD, then
// drops a leading byte order mark.
func utf8Decoder() transform.Transformer {
	return transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
}
