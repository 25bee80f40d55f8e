// Package encoding implements auto-detection and transcoding of the source
// encodings a SourceFile's raw bytes may arrive in.
package encoding

import "fmt"

// Encoding is one of the source encodings the Detector can recognize or the
// Transcode can convert from.
type Encoding uint8

const (
	// Unknown means detection could not settle on a candidate.
	Unknown Encoding = iota
	// ASCII is 7-bit ASCII.
	ASCII
	// UTF8 is UTF-8 with no byte-order mark.
	UTF8
	// UTF8BOM is UTF-8 with a leading byte-order mark to strip.
	UTF8BOM
	// Windows1252 is the Western European single-byte "Latin" encoding.
	Windows1252
	// Windows1251 is the Cyrillic single-byte encoding.
	Windows1251
	// GBK is the simplified-Chinese double-byte encoding.
	GBK
	// UTF16LE is little-endian UTF-16.
	UTF16LE
	// UTF16BE is big-endian UTF-16.
	UTF16BE
	// UTF32 is UTF-32.
	UTF32
)

func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ASCII"
	case UTF8:
		return "UTF8"
	case UTF8BOM:
		return "UTF8BOM"
	case Windows1252:
		return "Windows1252"
	case Windows1251:
		return "Windows1251"
	case GBK:
		return "GBK"
	case UTF16LE:
		return "UTF16LE"
	case UTF16BE:
		return "UTF16BE"
	case UTF32:
		return "UTF32"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(e))
	}
}
