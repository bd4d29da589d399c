package x12

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how much of an interchange is inspected to pick its
// encoding. It covers the ISA header and the first few transaction sets.
const sniffSize = 4096

// Fallback is the encoding assumed for 8-bit input that cannot be
// identified. Most trading partners that are not on UTF-8 send cp1252.
var Fallback encoding.Encoding = charmap.Windows1252

var byteOrderMarks = []struct {
	mark []byte
	enc  encoding.Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, unicode.UTF8BOM},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)},
}

// detected maps the chardet charsets seen in practice on EDI traffic to
// decoders. Anything else falls back.
var detected = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-2":   charmap.ISO8859_2,
	"windows-1250": charmap.Windows1250,
	"UTF-16LE":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"UTF-16BE":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
}

// DetectEncoding picks the encoding of an interchange from its first
// bytes. A byte order mark wins, valid UTF-8 needs no decoding and is
// reported as nil, and other input goes to chardet.
func DetectEncoding(head []byte) encoding.Encoding {
	for _, b := range byteOrderMarks {
		if bytes.HasPrefix(head, b.mark) {
			return b.enc
		}
	}
	if utf8.Valid(head) {
		return nil
	}
	if res, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if enc, ok := detected[res.Charset]; ok {
			return enc
		}
	}
	return Fallback
}

// ReadAll reads a whole interchange as UTF-8. Byte sequences that are
// still invalid after decoding are dropped.
func ReadAll(r io.Reader) (string, error) {
	br := bufio.NewReaderSize(r, sniffSize)
	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("detect encoding: %w", err)
	}

	var src io.Reader = br
	if enc := DetectEncoding(head); enc != nil {
		src = transform.NewReader(br, enc.NewDecoder())
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
