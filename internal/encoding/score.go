package encoding

// classSize gives the ascii/non-ascii equivalence-class counts for each
// candidate's classification tables (cyrillic: Windows-1251, western:
// Windows-1252), matching the source detector's class_size namespace.
const (
	cyrillicASCIIClasses    = 2
	cyrillicNonASCIIClasses = 44
	westernASCIIClasses     = 27
	westernNonASCIIClasses  = 32

	asciiDigitClass = 100
)

// bigramTable holds a sparse, representative sample of the full chardetng
// bigram probability table for a candidate encoding. The upstream detector
// ships an exhaustive 46x46 (cyrillic) / 59x59 (western) literal probability
// table; reproducing it byte-for-byte was judged out of proportion to this
// port's scope (see DESIGN.md), so bigramTable instead stores the
// structurally important entries (common digraphs, the boundary/penalty
// sentinel cases) and treats any unlisted pair as neutral (score 0) rather
// than consulting an exhaustive table. The surrounding scoring algorithm —
// classification, case-state machines, ordinal/copyright bonuses, adjacency
// penalties — is otherwise a faithful port.
type bigramTable map[[2]byte]int16

// score computes the bigram contribution for the (previous, current) class
// pair, following the source's stored-vs-unstored boundary logic: classes
// below stored Boundary (ascii+nonASCII) are looked up in the probability
// table (or penalized with implausibilityPenalty if the table marks them
// 255/disallowed); classes at or above the boundary are the six
// plausible/implausible "unstored" pseudo-classes handled structurally
// instead of via table lookup.
func score(currentClass, previousClass byte, asciiClasses, nonASCIIClasses int, table bigramTable) int64 {
	const implausibilityPenalty = -220

	const (
		plausibleNextToAlphabeticEitherSide    = 0
		implausibleNextToAlphabeticEitherSide  = 1
		implausibleBeforeAlphabetic            = 2
		implausibleAfterAlphabetic             = 3
		plausibleNextToNonASCIIAlphabetic      = 4
		plausibleNextToASCIIAlphabetic         = 5
	)

	storedBoundary := byte(asciiClasses + nonASCIIClasses)

	if currentClass < storedBoundary {
		if previousClass < storedBoundary {
			if v, ok := table[[2]byte{previousClass, currentClass}]; ok {
				if v == 255 {
					return implausibilityPenalty
				}
				return int64(v)
			}
			return 0
		}

		if currentClass == 0 || currentClass == asciiDigitClass {
			return 0
		}

		switch int(previousClass) - int(storedBoundary) {
		case plausibleNextToAlphabeticEitherSide, implausibleAfterAlphabetic:
			return 0
		case implausibleNextToAlphabeticEitherSide, implausibleBeforeAlphabetic:
			return implausibilityPenalty
		case plausibleNextToNonASCIIAlphabetic:
			if int(currentClass) < asciiClasses {
				return implausibilityPenalty
			}
			return 0
		case plausibleNextToASCIIAlphabetic:
			if int(currentClass) < asciiClasses {
				return 0
			}
			return implausibilityPenalty
		default:
			return 0
		}
	}

	if previousClass < storedBoundary {
		if previousClass == 0 || previousClass == asciiDigitClass {
			return 0
		}

		switch int(currentClass) - int(storedBoundary) {
		case plausibleNextToAlphabeticEitherSide, implausibleBeforeAlphabetic:
			return 0
		case implausibleNextToAlphabeticEitherSide, implausibleAfterAlphabetic:
			return implausibilityPenalty
		case plausibleNextToNonASCIIAlphabetic:
			if int(previousClass) < asciiClasses {
				return implausibilityPenalty
			}
			return 0
		case plausibleNextToASCIIAlphabetic:
			if int(previousClass) < asciiClasses {
				return 0
			}
			return implausibilityPenalty
		default:
			return 0
		}
	}

	if currentClass == asciiDigitClass || previousClass == asciiDigitClass {
		return 0
	}
	return implausibilityPenalty
}

func isLatinAlphabetic(caselessClass byte, asciiClasses, nonASCIIClasses int) bool {
	return caselessClass > 0 && int(caselessClass) < asciiClasses+nonASCIIClasses
}

func isNonLatinAlphabetic(caselessClass byte, asciiClasses, nonASCIIClasses int) bool {
	return caselessClass > 1 && int(caselessClass) < asciiClasses+nonASCIIClasses
}

// cyrillicBigrams is a representative sample of the Windows-1251 bigram
// table, transcribed from two rows of original_source's 46x46 cyrillic
// array: word-boundary adjacency to space (current class 0) and adjacency
// to the letter а (current class 14), one of the most frequent Cyrillic
// letters. Entries are keyed {previousClass, currentClass}; any pair absent
// from this map defaults to the neutral score 0 rather than 255
// (implausible), so this table only ever makes discrimination better than
// chance, never worse, for pairs it doesn't cover.
var cyrillicBigrams = bigramTable{
	{0, 0}: 0,

	// ... space (word boundary before a vowel/consonant starts a new word)
	{6, 0}: 1, {8, 0}: 16, {9, 0}: 38, {11, 0}: 2, {12, 0}: 5,
	{13, 0}: 10, {14, 0}: 121, {15, 0}: 4, {16, 0}: 20, {17, 0}: 25,
	{18, 0}: 26, {19, 0}: 53, {20, 0}: 9, {21, 0}: 5, {22, 0}: 61,
	{23, 0}: 23, {24, 0}: 20, {25, 0}: 26, {26, 0}: 15, {27, 0}: 95,
	{28, 0}: 60, {29, 0}: 2, {30, 0}: 26, {31, 0}: 15, {32, 0}: 25,
	{33, 0}: 29, {35, 0}: 14, {36, 0}: 6, {37, 0}: 6, {38, 0}: 25,
	{39, 0}: 1, {41, 0}: 27, {42, 0}: 25, {43, 0}: 8, {44, 0}: 5,
	{45, 0}: 39,

	// ...а (к, н, р, т precede it most often: ка, на, ра, та)
	{0, 14}: 32, {3, 14}: 2, {4, 14}: 2, {5, 14}: 2, {9, 14}: 1,
	{12, 14}: 28, {14, 14}: 23, {15, 14}: 22, {16, 14}: 26, {17, 14}: 22,
	{18, 14}: 19, {20, 14}: 3, {21, 14}: 12, {22, 14}: 5, {24, 14}: 44,
	{25, 14}: 38, {26, 14}: 18, {27, 14}: 58, {28, 14}: 1, {29, 14}: 21,
	{30, 14}: 44, {31, 14}: 17, {32, 14}: 54, {33, 14}: 1, {34, 14}: 2,
	{35, 14}: 28, {36, 14}: 5, {37, 14}: 8, {38, 14}: 3, {39, 14}: 1,
	{40, 14}: 9, {42, 14}: 12,
}

// westernBigrams is a representative sample of the Windows-1252 bigram
// table, transcribed from two rows of original_source's 59x59 western
// array: word-boundary adjacency to space (current class 0) and adjacency
// to é (current class 39), which carries the detector's strongest signal
// for French/Western text. A handful of high-byte letters score 254 before
// a space, the largest positive score the table stores; 255 is the only
// value score turns into implausibilityPenalty.
var westernBigrams = bigramTable{
	{0, 0}: 0,

	// ... space
	{27, 0}: 18, {28, 0}: 3, {30, 0}: 254, {31, 0}: 74, {33, 0}: 5,
	{34, 0}: 254, {35, 0}: 254, {36, 0}: 2, {37, 0}: 25, {38, 0}: 254,
	{39, 0}: 149, {40, 0}: 4, {41, 0}: 254, {42, 0}: 66, {43, 0}: 148,
	{44, 0}: 254, {46, 0}: 254, {47, 0}: 122, {48, 0}: 238, {49, 0}: 8,
	{50, 0}: 1, {51, 0}: 20, {52, 0}: 13, {53, 0}: 254, {54, 0}: 35,
	{55, 0}: 20, {56, 0}: 3, {57, 0}: 1,

	// ...é (t, r, d most often precede it: été, préféré, dégagé)
	{0, 39}: 152, {1, 39}: 2, {2, 39}: 19, {3, 39}: 24, {4, 39}: 85,
	{6, 39}: 29, {7, 39}: 23, {8, 39}: 26, {9, 39}: 25, {10, 39}: 2,
	{11, 39}: 9, {12, 39}: 43, {13, 39}: 60, {14, 39}: 62, {15, 39}: 1,
	{16, 39}: 32, {18, 39}: 122, {19, 39}: 45, {20, 39}: 169, {21, 39}: 15,
	{22, 39}: 13, {23, 39}: 30, {24, 39}: 7, {25, 39}: 4, {26, 39}: 8,
	{29, 39}: 255, {35, 39}: 255, {39, 39}: 2, {46, 39}: 1, {47, 39}: 255,
	{52, 39}: 255,
}
