package encoding

// Byte classification tables, transcribed from the chardetng-derived
// detector tables: each is indexed by the low 7 bits of a byte and yields an
// equivalence class used by the scorers in detect_latin.go/detect_cyrillic.go.
// 255 marks a byte sequence that disqualifies its candidate outright.

// latinASCIILow classifies bytes 0x00-0x7F for the Windows-1252 ("Latin")
// candidate.
var latinASCIILow = [128]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 0, 0, 0, 0, 0, 0,
	0, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143,
	144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 0, 0, 0, 0, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 0, 0, 0, 0, 0,
}

// nonLatinASCIILow classifies bytes 0x00-0x7F for the Windows-1251
// ("non-Latin-cased") candidate.
var nonLatinASCIILow = [128]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 0, 0, 0, 0, 0, 0,
	0, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129,
	129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 129, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0,
}

// windows1251High classifies bytes 0x80-0xFF (low 7 bits of the byte) for
// the Windows-1251 candidate.
var windows1251High = [128]byte{
	131, 130, 0, 2, 0, 0, 0, 0, 0, 0, 132, 0, 133, 130, 134, 135,
	3, 0, 0, 0, 0, 0, 0, 0, 255, 0, 4, 0, 5, 2, 6, 7,
	0, 136, 8, 140, 47, 130, 46, 47, 138, 49, 139, 49, 50, 46, 48, 141,
	49, 50, 137, 9, 2, 49, 48, 46, 10, 47, 11, 48, 12, 130, 2, 13,
	142, 143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172, 173,
	14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45,
}

// windows1252High classifies bytes 0x80-0xFF (low 7 bits of the byte) for
// the Windows-1252 candidate.
var windows1252High = [128]byte{
	0, 255, 0, 60, 0, 0, 0, 0, 0, 0, 156, 0, 157, 255, 185, 255,
	255, 0, 0, 0, 0, 0, 0, 0, 0, 0, 28, 0, 29, 255, 57, 186,
	0, 62, 60, 60, 60, 60, 59, 60, 60, 62, 60, 59, 63, 59, 61, 60,
	62, 63, 61, 61, 60, 62, 61, 59, 60, 61, 60, 59, 62, 62, 62, 62,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172, 173,
	188, 174, 175, 176, 177, 178, 179, 63, 180, 181, 182, 183, 184, 188, 188, 27,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45,
	60, 46, 47, 48, 49, 50, 51, 63, 52, 53, 54, 55, 56, 60, 60, 58,
}

const invalidClass = 255

// classify returns the equivalence class of b under the given low/high
// tables, or invalidClass if the byte disqualifies the candidate.
func classify(b byte, low, high *[128]byte) byte {
	if b>>7 == 0 {
		return low[b&0x7F]
	}
	return high[b&0x7F]
}

// IsLegacyNonASCIILetter reports whether b is a cased letter under either
// the Windows-1252 or Windows-1251 high-byte tables. Script identifiers
// accept both ranges regardless of which encoding the buffer was
// transcoded from, since a single grammar has to tokenize legacy save and
// mod files written under either code page.
func IsLegacyNonASCIILetter(b byte) bool {
	if b < 0x80 {
		return false
	}
	class := windows1252High[b&0x7F]
	if class != invalidClass && isLatinAlphabetic(class&0x7F, westernASCIIClasses, westernNonASCIIClasses) {
		return true
	}
	class = windows1251High[b&0x7F]
	if class != invalidClass && isNonLatinAlphabetic(class&0x7F, cyrillicASCIIClasses, cyrillicNonASCIIClasses) {
		return true
	}
	return false
}
