package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// utf32Decoder converts little-endian UTF-32 code units to UTF-8. x/text
// has no UTF-32 codec (unicode/unicode.go covers only UTF-8 and UTF-16), so
// this one component is hand-rolled against the standard library's
// unicode/utf8 rune encoder rather than an ecosystem dependency; see
// DESIGN.md.
type utf32Decoder struct{}

func (utf32Decoder) Reset() {}

func (utf32Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc+4 <= len(src) {
		cp := uint32(src[nSrc]) | uint32(src[nSrc+1])<<8 | uint32(src[nSrc+2])<<16 | uint32(src[nSrc+3])<<24
		r := rune(cp)
		if cp > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
			r = utf8.RuneError
		}
		size := utf8.RuneLen(r)
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += 4
	}

	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+3 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], string(utf8.RuneError))
		nSrc = len(src)
	}
	return nDst, nSrc, nil
}
