package world

import (
	"math"

	"chunkmesh/internal/chunk"
	"chunkmesh/internal/config"
	"chunkmesh/internal/voxel"
)

// Generator fills a freshly loaded chunk.
type Generator interface {
	PopulateChunk(c *chunk.Chunk)
}

const (
	dirtDepth  = 3
	poolDepth  = 3
	reliefFreq = 1.0 / 48.0
)

// TerrainGenerator lays grass over dirt over stone, with optional
// noise hills, a sand-bottomed water pool around the origin and a glass
// column next to it.
type TerrainGenerator struct {
	t config.Terrain
}

// NewTerrainGenerator returns a generator for t.
func NewTerrainGenerator(t config.Terrain) *TerrainGenerator {
	return &TerrainGenerator{t: t}
}

// SurfaceAt returns the grass Y of column (x, z).
func (g *TerrainGenerator) SurfaceAt(x, z int) int {
	if g.t.Relief == 0 {
		return g.t.GroundLevel
	}
	n := fbm(float64(x)*reliefFreq, float64(z)*reliefFreq, g.t.Seed, 3)
	return g.t.GroundLevel + int(math.Floor(n*float64(g.t.Relief)))
}

func (g *TerrainGenerator) inPool(x, z int) bool {
	r := g.t.PoolRadius
	return g.t.WaterLevel > 0 && r > 0 && x*x+z*z <= r*r
}

func (g *TerrainGenerator) glassColumn() (int, int) {
	return g.t.PoolRadius + 3, 0
}

// BlockAt returns the generated block at world position pos.
func (g *TerrainGenerator) BlockAt(pos voxel.Coord) voxel.BlockType {
	x, y, z := pos.X, pos.Y, pos.Z
	if y < 0 {
		return voxel.BlockTypeAir
	}
	if g.inPool(x, z) {
		floor := g.t.WaterLevel - poolDepth
		switch {
		case y < floor-dirtDepth:
			return voxel.BlockTypeStone
		case y < floor:
			return voxel.BlockTypeDirt
		case y == floor:
			return voxel.BlockTypeSand
		case y <= g.t.WaterLevel:
			return voxel.BlockTypeWater
		}
		return voxel.BlockTypeAir
	}

	surface := g.SurfaceAt(x, z)
	switch {
	case y < surface-dirtDepth:
		return voxel.BlockTypeStone
	case y < surface:
		return voxel.BlockTypeDirt
	case y == surface:
		return voxel.BlockTypeGrass
	}
	if gx, gz := g.glassColumn(); x == gx && z == gz && y <= surface+g.t.GlassHeight {
		return voxel.BlockTypeGlass
	}
	return voxel.BlockTypeAir
}

// PopulateChunk writes every voxel of c.
func (g *TerrainGenerator) PopulateChunk(c *chunk.Chunk) {
	base := c.WorldPosition()
	size := c.Size()
	for x := range size.W {
		for z := range size.L {
			for y := range size.H {
				local := voxel.Coord{X: x, Y: y, Z: z}
				b := g.BlockAt(base.Add(local))
				if b == voxel.BlockTypeAir {
					continue
				}
				_ = c.SetBlock(local, b)
			}
		}
	}
}
