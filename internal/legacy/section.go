package legacy

import "github.com/OCharnyshevich/osm2mc/internal/block"

const (
	// BlocksLen is the size of a section's Blocks array: one id per block.
	BlocksLen = block.SectionVolume
	// DataLen is the size of a section's Data array: one nibble per block.
	DataLen = block.SectionVolume / 2
)

// EncodeSection converts a section into its 1.8 Blocks and Data arrays.
// The section is only read; both arrays are freshly allocated.
func EncodeSection(s *block.Section) (ids, data []byte) {
	ids = make([]byte, BlocksLen)
	data = make([]byte, DataLen)

	for i, b := range s {
		id := Lookup(b.Name())
		ids[i] = id.Block
		SetNibble(data, i, id.Meta)
	}
	return ids, data
}

// SetNibble sets a 4-bit value at the given block index in a nibble array.
// Even indices use the low half of the byte, odd indices the high half.
func SetNibble(arr []byte, index int, val byte) {
	byteIdx := index / 2
	if index%2 == 0 {
		arr[byteIdx] = (arr[byteIdx] & 0xF0) | (val & 0x0F)
	} else {
		arr[byteIdx] = (arr[byteIdx] & 0x0F) | ((val & 0x0F) << 4)
	}
}

// Nibble returns the 4-bit value at the given block index.
func Nibble(arr []byte, index int) byte {
	if index%2 == 0 {
		return arr[index/2] & 0x0F
	}
	return arr[index/2] >> 4
}
