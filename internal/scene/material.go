package scene

// Side selects which triangle faces are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material holds the surface parameters of an entity. Colours are 0xRRGGBB.
type Material struct {
	Color     uint32
	Emissive  uint32
	Roughness float32
	Metalness float32
	Side      Side
}

// DefaultPalette is the set of base colours new primitives are drawn from.
var DefaultPalette = []uint32{0xff8f5a, 0x7a9cff, 0x9c86ff, 0x5ad4ff, 0xffc15a}

// HighlightEmissive is the emissive colour a selected entity shows.
const HighlightEmissive uint32 = 0x4b5dff

func defaultMaterial(color uint32) Material {
	return Material{
		Color:     color,
		Roughness: 0.4,
		Metalness: 0.05,
		Side:      FrontSide,
	}
}
