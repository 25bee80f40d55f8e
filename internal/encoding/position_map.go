package encoding

import "sort"

// PositionMap records, at increasing output offsets, the input byte offset
// the transcoded output byte at that position came from. It lets a
// downstream diagnostic resolve a UTF-8 offset back to an offset in the
// original (possibly non-UTF-8) source bytes.
type PositionMap struct {
	outOffsets []int
	inOffsets  []int
}

// record appends a new (out, in) correspondence. Callers must call it with
// strictly increasing out values.
func (m *PositionMap) record(out, in int) {
	m.outOffsets = append(m.outOffsets, out)
	m.inOffsets = append(m.inOffsets, in)
}

// ToInputOffset maps an offset into the transcoded UTF-8 output back to the
// offset of the input byte it was produced from. If outOffset falls before
// the first recorded correspondence, it returns 0.
func (m *PositionMap) ToInputOffset(outOffset int) int {
	if len(m.outOffsets) == 0 {
		return outOffset
	}
	i := sort.SearchInts(m.outOffsets, outOffset+1) - 1
	if i < 0 {
		return 0
	}
	delta := outOffset - m.outOffsets[i]
	return m.inOffsets[i] + delta
}

// Len reports the number of correspondences recorded.
func (m *PositionMap) Len() int { return len(m.outOffsets) }
