package encoding

import (
	"errors"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// errInvalidGBKSequence is returned by gbkOverrideDecoder for a byte pair
// that some legacy encoders accept as a user-defined double-byte character
// but which this port treats as invalid, matching the stricter behavior
// callers rely on to recover with a skip-one-byte diagnostic.
var errInvalidGBKSequence = errors.New("encoding: invalid GBK byte sequence")

const (
	sectionSign      = "\xC2\xA7"     // §, GBK 0xA7 is otherwise unmapped
	fullWidthExclaim = "\xEF\xBC\x81" // ！, GBK 0xA1 and 0xAD 0xA1
)

// gbkOverrideDecoder wraps the standard GBK decoder with the
// localization-specific byte behaviors some game clients rely on: an
// unmapped 0xA7 decodes as §, bare 0xA1 and the sequence 0xAD 0xA1 decode as
// the full-width exclamation mark, and three lead/trail byte ranges that
// some GBK implementations treat as user-defined double-byte characters are
// rejected outright.
type gbkOverrideDecoder struct {
	base transform.Transformer
}

func newGBKOverrideDecoder() *gbkOverrideDecoder {
	return &gbkOverrideDecoder{base: simplifiedchinese.GBK.NewDecoder()}
}

func (d *gbkOverrideDecoder) Reset() { d.base.Reset() }

func (d *gbkOverrideDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		// A following byte in 0xA1-0xFE makes 0xA7/0xA1 the lead of a mapped
		// double-byte character, which the base decoder handles.
		pairLead := nSrc+1 < len(src) && src[nSrc+1] >= 0xA1 && src[nSrc+1] != 0xFF

		switch {
		case (b == 0xA7 || b == 0xA1) && nSrc+1 >= len(src) && !atEOF:
			return nDst, nSrc, transform.ErrShortSrc

		case b == 0xA7 && !pairLead:
			if nDst+len(sectionSign) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], sectionSign)
			nSrc++
			continue

		case b == 0xA1 && !pairLead:
			if nDst+len(fullWidthExclaim) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], fullWidthExclaim)
			nSrc++
			continue

		case b == 0xAD:
			if nSrc+1 >= len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
			} else if src[nSrc+1] == 0xA1 {
				if nDst+len(fullWidthExclaim) > len(dst) {
					return nDst, nSrc, transform.ErrShortDst
				}
				nDst += copy(dst[nDst:], fullWidthExclaim)
				nSrc += 2
				continue
			} else if isRejectedGBKPair(b, src[nSrc+1]) {
				return nDst, nSrc, errInvalidGBKSequence
			}

		case isRejectedGBKLead(b):
			if nSrc+1 >= len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
			} else if isRejectedGBKPair(b, src[nSrc+1]) {
				return nDst, nSrc, errInvalidGBKSequence
			}
		}

		// Hand the base decoder one character (one byte, or a lead byte and
		// its trail) so the overrides above see every following byte.
		end := nSrc + 1
		if b >= 0x81 && b != 0xFF && end < len(src) {
			end++
		}
		n, m, terr := d.base.Transform(dst[nDst:], src[nSrc:end], atEOF || end < len(src))
		nDst += n
		nSrc += m
		if terr != nil {
			return nDst, nSrc, terr
		}
		if m == 0 && n == 0 {
			return nDst, nSrc, errInvalidGBKSequence
		}
	}
	return nDst, nSrc, nil
}

func isRejectedGBKLead(b byte) bool {
	return (b >= 0xAA && b <= 0xAF) || (b >= 0xF8 && b <= 0xFE) || (b >= 0xA1 && b <= 0xA7)
}

func isRejectedGBKPair(lead, trail byte) bool {
	switch {
	case lead >= 0xAA && lead <= 0xAF:
		return trail >= 0xA1 && trail <= 0xFE
	case lead >= 0xF8 && lead <= 0xFE:
		return trail >= 0xA1 && trail <= 0xFE
	case lead >= 0xA1 && lead <= 0xA7:
		return trail >= 0x40 && trail <= 0xA0 && trail != 0x7F
	default:
		return false
	}
}
