// Package encoding normalizes the character encoding of uploaded bank
// files. Brazilian bank exports arrive in a mix of UTF-8 (with or without
// BOM), Windows-1252 and ISO-8859-1, so callers always read through
// NewUTF8Reader before parsing.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how many bytes are peeked for BOM and charset detection.
const sniffSize = 4096

// NewUTF8Reader wraps r so the content reads back as UTF-8.
//
// A BOM wins outright: the UTF-8 BOM is stripped, UTF-16 variants are
// decoded. Without one, content that already validates as UTF-8 passes
// through untouched; otherwise chardet picks the charset, and anything
// unrecognized decodes as Windows-1252, the most common legacy encoding
// in Brazilian bank exports.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	if bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
		return br, nil
	}

	if bytes.HasPrefix(head, []byte{0xFF, 0xFE}) {
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if bytes.HasPrefix(head, []byte{0xFE, 0xFF}) {
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if dec := detectLegacy(head); dec != nil {
		return transform.NewReader(br, dec.NewDecoder()), nil
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// detectLegacy runs chardet over the sniffed bytes and maps the result to a
// charmap. Returns nil when the guess is not one we know how to decode.
func detectLegacy(head []byte) *charmap.Charmap {
	result, err := chardet.NewTextDetector().DetectBest(head)
	if err != nil {
		return nil
	}

	switch result.Charset {
	case "ISO-8859-1":
		return charmap.ISO8859_1
	case "windows-1252":
		return charmap.Windows1252
	case "ISO-8859-15":
		return charmap.ISO8859_15
	default:
		return nil
	}
}
