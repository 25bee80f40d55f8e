package encoding

// latinCaseState is the per-run case-tracking state for the Latin
// candidate.
type latinCaseState uint8

const (
	latinSpace latinCaseState = iota
	latinUpper
	latinLower
	latinAllCaps
)

// ordinalState tracks progress toward recognizing a Spanish ordinal marker
// (1º/2ª-style superscript-letter-after-digit-or-roman-numeral) or a
// trailing copyright-symbol-then-space, both of which are strong signals
// for Windows-1252 text.
type ordinalState uint8

const (
	ordinalOther ordinalState = iota
	ordinalSpace
	ordinalExpectingSpace
	ordinalExpectingSpaceUndoImplausibility
	ordinalExpectingSpaceOrDigit
	ordinalExpectingSpaceOrDigitUndoImplausibility
	ordinalUpperN
	ordinalLowerN
	ordinalFeminineAbbreviationStartLetter
	ordinalDigit
	ordinalRoman
	ordinalPeriodAfterN
	ordinalCopyright
)

// latinCandidate scores a buffer against the Windows-1252 ("Latin")
// encoding, tracking case transitions and the ordinal/copyright bonus state
// machine, ported from original_source's LatinCanidate::read.
type latinCandidate struct {
	caseState    latinCaseState
	ordinalState ordinalState
	prevNonASCII int // run length of consecutive non-ASCII bytes seen
	prev         byte
}

func (*latinCandidate) encoding() Encoding { return Windows1252 }

func (c *latinCandidate) read(buf []byte) (int64, bool) {
	const (
		implausibleLatinCaseTransitionPenalty = -180
		ordinalBonus                          = 300
		copyrightBonus                        = 222
		implausibilityPenalty                 = -220
	)

	var total int64
	for _, b := range buf {
		class := classify(b, &latinASCIILow, &windows1252High)
		if class == invalidClass {
			return 0, false
		}
		caselessClass := class & 0x7F
		ascii := b < 0x80
		asciiPair := c.prevNonASCII == 0 && ascii

		var nonASCIIPenalty int64
		switch c.prevNonASCII {
		case 0, 1, 2:
			nonASCIIPenalty = 0
		case 3:
			nonASCIIPenalty = -5
		case 4:
			nonASCIIPenalty = -20
		default:
			nonASCIIPenalty = -200
		}
		total += nonASCIIPenalty

		if !isLatinAlphabetic(caselessClass, westernASCIIClasses, westernNonASCIIClasses) {
			c.caseState = latinSpace
		} else if class>>7 == 0 {
			if c.caseState == latinAllCaps && !asciiPair {
				total += implausibleLatinCaseTransitionPenalty
			}
			c.caseState = latinLower
		} else {
			switch c.caseState {
			case latinLower:
				if !asciiPair {
					total += implausibleLatinCaseTransitionPenalty
				}
				fallthrough
			case latinSpace:
				c.caseState = latinUpper
			case latinUpper, latinAllCaps:
				c.caseState = latinAllCaps
			}
		}

		asciiIshPair := asciiPair || (ascii && c.prev == 0) || (caselessClass == 0 && c.prevNonASCII == 0)
		if !asciiIshPair {
			total += score(caselessClass, c.prev, westernASCIIClasses, westernNonASCIIClasses, westernBigrams)
		}

		switch c.ordinalState {
		case ordinalOther:
			if caselessClass == 0 {
				c.ordinalState = ordinalSpace
			}
		case ordinalSpace:
			switch {
			case caselessClass == 0:
				// stay in Space
			case b == 0xAA || b == 0xBA:
				c.ordinalState = ordinalExpectingSpace
			case b == 'M' || b == 'D' || b == 'S':
				c.ordinalState = ordinalFeminineAbbreviationStartLetter
			case b == 'N':
				c.ordinalState = ordinalUpperN
			case b == 'n':
				c.ordinalState = ordinalLowerN
			case caselessClass == asciiDigitClass:
				c.ordinalState = ordinalDigit
			case caselessClass == 9 || caselessClass == 22 || caselessClass == 24:
				c.ordinalState = ordinalRoman
			case b == 0xA9:
				c.ordinalState = ordinalCopyright
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalExpectingSpace:
			if caselessClass == 0 {
				total += ordinalBonus
				c.ordinalState = ordinalSpace
			} else {
				c.ordinalState = ordinalOther
			}
		case ordinalExpectingSpaceUndoImplausibility:
			if caselessClass == 0 {
				total += ordinalBonus - implausibilityPenalty
				c.ordinalState = ordinalSpace
			} else {
				c.ordinalState = ordinalOther
			}
		case ordinalExpectingSpaceOrDigit:
			switch {
			case caselessClass == 0:
				total += ordinalBonus
				c.ordinalState = ordinalSpace
			case caselessClass == asciiDigitClass:
				total += ordinalBonus
				c.ordinalState = ordinalOther
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalExpectingSpaceOrDigitUndoImplausibility:
			switch {
			case caselessClass == 0:
				total += ordinalBonus - implausibilityPenalty
				c.ordinalState = ordinalSpace
			case caselessClass == asciiDigitClass:
				total += ordinalBonus - implausibilityPenalty
				c.ordinalState = ordinalOther
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalUpperN:
			switch {
			case b == 0xAA:
				c.ordinalState = ordinalExpectingSpaceUndoImplausibility
			case b == 0xBA:
				c.ordinalState = ordinalExpectingSpaceOrDigitUndoImplausibility
			case b == '.':
				c.ordinalState = ordinalPeriodAfterN
			case caselessClass == 0:
				c.ordinalState = ordinalSpace
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalLowerN:
			switch {
			case b == 0xBA:
				c.ordinalState = ordinalExpectingSpaceOrDigitUndoImplausibility
			case b == '.':
				c.ordinalState = ordinalPeriodAfterN
			case caselessClass == 0:
				c.ordinalState = ordinalSpace
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalFeminineAbbreviationStartLetter:
			switch {
			case b == 0xAA:
				c.ordinalState = ordinalExpectingSpaceUndoImplausibility
			case caselessClass == 0:
				c.ordinalState = ordinalSpace
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalDigit:
			switch {
			case b == 0xAA || b == 0xBA:
				c.ordinalState = ordinalExpectingSpace
			case caselessClass == 0:
				c.ordinalState = ordinalSpace
			case caselessClass == asciiDigitClass:
				// stay
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalRoman:
			switch {
			case b == 0xAA || b == 0xBA:
				c.ordinalState = ordinalExpectingSpaceUndoImplausibility
			case caselessClass == 0:
				c.ordinalState = ordinalSpace
			case caselessClass == 9 || caselessClass == 22 || caselessClass == 24:
				// stay
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalPeriodAfterN:
			switch {
			case b == 0xBA:
				c.ordinalState = ordinalExpectingSpaceOrDigit
			case caselessClass == 0:
				c.ordinalState = ordinalSpace
			default:
				c.ordinalState = ordinalOther
			}
		case ordinalCopyright:
			if caselessClass == 0 {
				total += copyrightBonus
				c.ordinalState = ordinalSpace
			} else {
				c.ordinalState = ordinalOther
			}
		}

		if ascii {
			c.prevNonASCII = 0
		} else {
			c.prevNonASCII++
		}
		c.prev = caselessClass
	}
	return total, true
}
