package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// ToUTF8 converts raw export bytes to UTF-8 text.
//
// Pump-controller and payroll exports arrive in whatever encoding the
// station's Windows machine produced, so detection goes:
//  1. BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Valid UTF-8 passes through unchanged
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252, the common case for pt-BR exports
func ToUTF8(data []byte) (string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(data[len(utf8BOM):]), nil
	}

	if bytes.HasPrefix(data, utf16LEBOM) {
		return decode(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
	}

	if bytes.HasPrefix(data, utf16BEBOM) {
		return decode(data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM))
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	detector := chardet.NewTextDetector()

	result, err := detector.DetectBest(data)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return string(data), nil
		case "ISO-8859-1", "windows-1252":
			return decode(data, charmap.Windows1252)
		case "ISO-8859-9":
			return decode(data, charmap.ISO8859_9)
		}
	}

	return decode(data, charmap.Windows1252)
}

func decode(data []byte, enc xencoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	return string(out), nil
}
