package encoding

// candidate scores a buffer for one target encoding in a single pass,
// returning (score, true) or (_, false) if the buffer disqualifies it.
type candidate interface {
	read(buf []byte) (score int64, ok bool)
	encoding() Encoding
}

// Detect classifies buf into one of {ASCII, UTF8, Windows1252, Windows1251}.
// If allowUTF8 is false, UTF8 is excluded from consideration (e.g. a legacy
// compatibility mode that never expects UTF-8 input). The highest-scoring
// non-disqualified candidate wins; if every candidate's score is <= 0, the
// winner is still returned but with highConfidence = false.
func Detect(buf []byte, allowUTF8 bool) (enc Encoding, highConfidence bool) {
	if bom, ok := detectBOM(buf); ok {
		return bom, true
	}

	candidates := []candidate{
		asciiCandidate{},
		utf8Candidate{allowASCII: true},
		&latinCandidate{},
		&nonLatinCasedCandidate{},
	}

	type result struct {
		enc   Encoding
		score int64
	}
	var results []result

	for _, c := range candidates {
		if !allowUTF8 {
			if _, isUTF8 := c.(utf8Candidate); isUTF8 {
				continue
			}
		}
		s, ok := c.read(buf)
		if !ok {
			continue
		}
		if c.encoding() == ASCII {
			// ASCII success is unambiguous and immediately wins: every ASCII
			// byte is also valid UTF-8 and a valid Latin/Cyrillic byte, so
			// without this short-circuit ASCII input would tie on score.
			return ASCII, true
		}
		if c.encoding() == UTF8 {
			// utf8Candidate only succeeds (ok==true) when the buffer is
			// structurally valid UTF-8 AND contains at least one non-ASCII
			// multi-byte sequence, so any success here is definitive.
			return UTF8, true
		}
		results = append(results, result{enc: c.encoding(), score: s})
	}

	if len(results) == 0 {
		return Unknown, false
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
	}
	return best.enc, best.score > 0
}

// detectBOM recognizes a leading byte-order mark and reports the encoding
// it implies. UTF-32's BOM is checked before UTF-16's since the UTF-32LE
// mark is a strict prefix extension of the UTF-16LE mark.
func detectBOM(buf []byte) (Encoding, bool) {
	switch {
	case len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF:
		return UTF32, true
	case len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00:
		return UTF32, true
	case len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF:
		return UTF8BOM, true
	case len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE:
		return UTF16LE, true
	case len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF:
		return UTF16BE, true
	default:
		return Unknown, false
	}
}
