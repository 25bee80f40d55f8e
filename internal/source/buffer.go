// Package source owns source byte storage, the per-file node location side
// table, and file loading with BufferError classification.
package source

import "fmt"

// BufferKind tags the encoding variant a Buffer's bytes are stored in.
type BufferKind uint8

const (
	// BufferEmpty is an empty/uninitialized buffer.
	BufferEmpty BufferKind = iota
	// BufferASCII holds 7-bit ASCII bytes.
	BufferASCII
	// BufferUTF8 holds UTF-8 bytes without a byte-order mark.
	BufferUTF8
	// BufferUTF8BOM holds UTF-8 bytes prefixed by a byte-order mark.
	BufferUTF8BOM
	// BufferUTF16LE holds little-endian UTF-16 code units.
	BufferUTF16LE
	// BufferUTF16BE holds big-endian UTF-16 code units.
	BufferUTF16BE
	// BufferUTF32 holds UTF-32 code units (native/detected endianness).
	BufferUTF32
	// BufferWindows1252 holds Windows-1252 ("Latin") single-byte text.
	BufferWindows1252
	// BufferWindows1251 holds Windows-1251 (Cyrillic) single-byte text.
	BufferWindows1251
	// BufferGBK holds GBK double-byte text.
	BufferGBK
)

func (k BufferKind) String() string {
	switch k {
	case BufferEmpty:
		return "Empty"
	case BufferASCII:
		return "ASCII"
	case BufferUTF8:
		return "UTF8"
	case BufferUTF8BOM:
		return "UTF8BOM"
	case BufferUTF16LE:
		return "UTF16LE"
	case BufferUTF16BE:
		return "UTF16BE"
	case BufferUTF32:
		return "UTF32"
	case BufferWindows1252:
		return "Windows1252"
	case BufferWindows1251:
		return "Windows1251"
	case BufferGBK:
		return "GBK"
	default:
		return fmt.Sprintf("BufferKind(%d)", uint8(k))
	}
}

// Buffer is a tagged union over the supported source-encoding variants. Once
// constructed its byte storage is immutable: there are no setters beyond the
// constructors below.
type Buffer struct {
	kind  BufferKind
	bytes []byte
}

// NewBuffer wraps raw bytes tagged with the encoding they are stored in.
// An empty byte slice always produces the BufferEmpty kind regardless of the
// requested kind: emptiness is its own variant, not a degenerate case of
// whichever encoding was requested.
func NewBuffer(kind BufferKind, raw []byte) Buffer {
	if len(raw) == 0 {
		return Buffer{kind: BufferEmpty}
	}
	return Buffer{kind: kind, bytes: raw}
}

// Kind reports the buffer's encoding tag.
func (b Buffer) Kind() BufferKind {
	return b.kind
}

// Bytes returns the buffer's raw storage in its original encoding.
func (b Buffer) Bytes() []byte {
	return b.bytes
}

// IsEmpty reports whether the buffer holds no bytes.
func (b Buffer) IsEmpty() bool {
	return b.kind == BufferEmpty || len(b.bytes) == 0
}

// VisitBuffer dispatches f over the buffer's variant, the idiomatic Go
// analogue of a visitor over the possible encoding variants: a single
// closure receiving the tag and the raw bytes, rather than one method per
// variant.
func (b Buffer) VisitBuffer(f func(kind BufferKind, raw []byte)) {
	f(b.kind, b.bytes)
}
