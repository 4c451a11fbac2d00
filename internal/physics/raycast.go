// Package physics holds the viewer's block picking.
package physics

import (
	"math"

	"chunkmesh/internal/profiling"
	"chunkmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 8.0

	stepSize = float32(0.02)
)

// Blocks is anything that answers block queries by world position.
type Blocks interface {
	BlockAt(pos voxel.Coord) voxel.BlockType
}

// RaycastResult is the first solid voxel along a ray and the empty voxel
// the ray passed through just before it.
type RaycastResult struct {
	Hit      bool
	Block    voxel.Coord
	Adjacent voxel.Coord
	Distance float32
}

// Raycast marches from start along direction and stops at the first
// non-air voxel between minDist and maxDist. Voxel (x, y, z) spans
// [x, x+1) on each axis.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, blocks Blocks) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	direction = direction.Normalize()

	steps := int(maxDist / stepSize)
	last := cell(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}
		c := cell(start.Add(direction.Mul(dist)))
		if c == last && i > 0 {
			continue
		}
		if !blocks.BlockAt(c).IsAir() {
			return RaycastResult{Hit: true, Block: c, Adjacent: last, Distance: dist}
		}
		last = c
	}
	return RaycastResult{}
}

func cell(p mgl32.Vec3) voxel.Coord {
	return voxel.Coord{
		X: int(math.Floor(float64(p.X()))),
		Y: int(math.Floor(float64(p.Y()))),
		Z: int(math.Floor(float64(p.Z()))),
	}
}
