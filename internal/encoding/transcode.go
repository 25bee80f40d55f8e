package encoding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Warning describes a recoverable problem encountered while transcoding a
// buffer to UTF-8: the decoder skipped one input byte and substituted the
// Unicode replacement character so the remainder of the buffer could still
// be processed.
type Warning struct {
	InputOffset int
	Message     string
}

// Transcode converts raw bytes in the given source encoding to UTF-8,
// returning the converted bytes, a position map resolving output offsets
// back to input offsets, and any recoverable-decode warnings encountered
// along the way.
func Transcode(raw []byte, enc Encoding) ([]byte, *PositionMap, []Warning, error) {
	switch enc {
	case Unknown:
		return nil, nil, nil, fmt.Errorf("encoding: cannot transcode unknown encoding")

	case ASCII, UTF8:
		pm := identityPositionMap(len(raw))
		return raw, pm, nil, nil

	case UTF8BOM:
		trimmed := raw
		if len(trimmed) >= 3 && trimmed[0] == 0xEF && trimmed[1] == 0xBB && trimmed[2] == 0xBF {
			trimmed = trimmed[3:]
		}
		pm := &PositionMap{}
		pm.record(0, len(raw)-len(trimmed))
		return trimmed, pm, nil, nil

	case Windows1252:
		return transcodeSingleShot(raw, charmap.Windows1252.NewDecoder())

	case Windows1251:
		return transcodeSingleShot(raw, charmap.Windows1251.NewDecoder())

	case UTF16LE:
		return transcodeSingleShot(raw, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())

	case UTF16BE:
		return transcodeSingleShot(raw, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder())

	case UTF32:
		return transcodeSingleShot(raw, utf32Decoder{})

	case GBK:
		return transcodeGBK(raw)

	default:
		return nil, nil, nil, fmt.Errorf("encoding: unsupported encoding %v", enc)
	}
}

// identityPositionMap builds a PositionMap for a transcode that doesn't
// move bytes around: output offset N always came from input offset N.
func identityPositionMap(n int) *PositionMap {
	pm := &PositionMap{}
	pm.record(0, 0)
	_ = n
	return pm
}

// transcodeSingleShot runs a stateless x/text decoder over the whole
// buffer in one call. x/text's Windows-125x and UTF-16 decoders substitute
// the Unicode replacement character for invalid input rather than erroring,
// so no recovery loop is needed here; the position map only has byte-level
// granularity (one checkpoint at the start), which is sufficient to locate
// diagnostics to within a decoded rune's width.
func transcodeSingleShot(raw []byte, t transform.Transformer) ([]byte, *PositionMap, []Warning, error) {
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encoding: transcode failed: %w", err)
	}
	pm := &PositionMap{}
	pm.record(0, 0)
	return out, pm, nil, nil
}

// transcodeGBK drives the override-aware GBK decoder with byte-level
// recovery: on an unrecoverable sequence it substitutes the Unicode
// replacement character, records a Warning, skips one input byte, and
// resumes decoding.
func transcodeGBK(raw []byte) ([]byte, *PositionMap, []Warning, error) {
	const replacementChar = "�"

	var out []byte
	pm := &PositionMap{}
	var warnings []Warning

	dec := newGBKOverrideDecoder()
	src := raw
	srcBase := 0
	dst := make([]byte, 4096)

	for len(src) > 0 {
		pm.record(len(out), srcBase)

		n, m, err := dec.Transform(dst, src, true)
		out = append(out, dst[:n]...)
		src = src[m:]
		srcBase += m

		switch err {
		case nil:
			continue
		case transform.ErrShortDst:
			grown := make([]byte, len(dst)*2)
			dst = grown
			continue
		case transform.ErrShortSrc:
			// atEOF is always true here, so a genuine ErrShortSrc means a
			// truncated trailing multi-byte sequence; treat the remaining
			// bytes as one final invalid run.
			out = append(out, replacementChar...)
			warnings = append(warnings, Warning{InputOffset: srcBase, Message: "truncated GBK sequence at end of input"})
			src = nil
		default:
			out = append(out, replacementChar...)
			warnings = append(warnings, Warning{InputOffset: srcBase, Message: err.Error()})
			if len(src) > 0 {
				src = src[1:]
				srcBase++
			}
			dec.Reset()
		}
	}

	return out, pm, warnings, nil
}
