package voxel

import "fmt"

// BlockType identifies the content of one voxel. The zero value is air.
type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeGrass
	BlockTypeSand
	BlockTypePlanks
	BlockTypeGlass
	BlockTypeWater
	BlockTypeLeaves
)

// Face is one of the six axis-aligned block faces.
type Face int

const (
	FaceEast   Face = iota // +X
	FaceWest               // -X
	FaceTop                // +Y
	FaceBottom             // -Y
	FaceNorth              // +Z
	FaceSouth              // -Z
)

// Faces lists all faces in meshing order.
var Faces = [6]Face{FaceEast, FaceWest, FaceTop, FaceBottom, FaceNorth, FaceSouth}

// Offset returns the unit step from a voxel to its neighbor across f.
func (f Face) Offset() Coord {
	switch f {
	case FaceEast:
		return Coord{1, 0, 0}
	case FaceWest:
		return Coord{-1, 0, 0}
	case FaceTop:
		return Coord{0, 1, 0}
	case FaceBottom:
		return Coord{0, -1, 0}
	case FaceNorth:
		return Coord{0, 0, 1}
	default:
		return Coord{0, 0, -1}
	}
}

type blockInfo struct {
	name        string
	translucent bool
	// texture layer per face, indexed by Face
	layers [6]float32
}

func uniform(name string, layer float32, translucent bool) blockInfo {
	return blockInfo{name: name, translucent: translucent, layers: [6]float32{layer, layer, layer, layer, layer, layer}}
}

var blockTable = map[BlockType]blockInfo{
	BlockTypeAir:    {name: "air"},
	BlockTypeStone:  uniform("stone", 0, false),
	BlockTypeDirt:   uniform("dirt", 1, false),
	BlockTypeGrass:  {name: "grass", layers: [6]float32{3, 3, 2, 1, 3, 3}},
	BlockTypeSand:   uniform("sand", 4, false),
	BlockTypePlanks: uniform("planks", 5, false),
	BlockTypeGlass:  uniform("glass", 6, true),
	BlockTypeWater:  uniform("water", 7, true),
	BlockTypeLeaves: uniform("leaves", 8, true),
}

// Placeable lists the solid block types in palette order.
var Placeable = []BlockType{
	BlockTypeStone, BlockTypeDirt, BlockTypeGrass, BlockTypeSand,
	BlockTypePlanks, BlockTypeGlass, BlockTypeWater, BlockTypeLeaves,
}

func (b BlockType) String() string {
	if info, ok := blockTable[b]; ok {
		return info.name
	}
	return fmt.Sprintf("block(%d)", uint16(b))
}

// IsAir reports whether b is empty space.
func (b BlockType) IsAir() bool {
	return b == BlockTypeAir
}

// IsTranslucent reports whether b is drawn in the translucent pass.
// Unknown block types are treated as opaque.
func (b BlockType) IsTranslucent() bool {
	return blockTable[b].translucent
}

// TextureLayer returns the texture array layer used for face f of b.
func (b BlockType) TextureLayer(f Face) float32 {
	info, ok := blockTable[b]
	if !ok {
		return 0
	}
	return info.layers[f]
}
