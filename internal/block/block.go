package block

// Block is a voxel kind identified by its modern (post-flattening) name.
type Block string

// Name returns the block identifier without namespace.
func (b Block) Name() string { return string(b) }

// Blocks placed or matched by the element processors.
const (
	Air        Block = "air"
	Stone      Block = "stone"
	Dirt       Block = "dirt"
	GrassBlock Block = "grass_block"
	Grass      Block = "short_grass"
	Water      Block = "water"
	Bedrock    Block = "bedrock"
	Wheat      Block = "wheat"
	Carrots    Block = "carrots"
	Potatoes   Block = "potatoes"
)

// Vegetation lists surface plants that carving clears away.
var Vegetation = []Block{Grass, Wheat, Carrots, Potatoes}

// In reports whether b is one of set.
func (b Block) In(set []Block) bool {
	for _, s := range set {
		if s == b {
			return true
		}
	}
	return false
}
