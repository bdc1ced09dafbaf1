package block

// SectionVolume is the number of blocks in a 16×16×16 section.
const SectionVolume = 16 * 16 * 16

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x.
type Section [SectionVolume]Block

// NewSection returns a section filled with air.
func NewSection() *Section {
	s := new(Section)
	for i := range s {
		s[i] = Air
	}
	return s
}

// Index returns the array position of local coordinates x, y, z in [0,16).
func Index(x, y, z int) int {
	return (y&0xF)<<8 | (z&0xF)<<4 | x&0xF
}

// Get returns the block at local coordinates.
func (s *Section) Get(x, y, z int) Block {
	return s[Index(x, y, z)]
}

// Set stores b at local coordinates.
func (s *Section) Set(x, y, z int, b Block) {
	s[Index(x, y, z)] = b
}

// Empty reports whether every block in the section is air.
func (s *Section) Empty() bool {
	for _, b := range s {
		if b != Air {
			return false
		}
	}
	return true
}
