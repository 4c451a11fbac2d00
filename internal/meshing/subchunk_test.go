package meshing

import (
	"testing"

	"chunkmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// mapSource is a sparse BlockSource for tests.
type mapSource map[voxel.Coord]voxel.BlockType

func (m mapSource) BlockAt(c voxel.Coord) voxel.BlockType { return m[c] }

var testSize = voxel.Size{W: 4, H: 4, L: 4}

func meshOf(src mapSource) *Subchunk {
	s := NewSubchunk(src, voxel.Coord{}, testSize, mgl32.Vec3{})
	s.UpdateMesh()
	return s
}

func TestSingleBlockMesh(t *testing.T) {
	s := meshOf(mapSource{{0, 0, 0}: voxel.BlockTypeStone})
	if got := QuadCount(s.Mesh()); got != 6 {
		t.Fatalf("single block: got %d quads, want 6", got)
	}
	if len(s.TranslucentMesh()) != 0 {
		t.Fatalf("single opaque block should have no translucent quads")
	}
}

func TestTwoBlocksTouching(t *testing.T) {
	s := meshOf(mapSource{
		{0, 0, 0}: voxel.BlockTypeStone,
		{1, 0, 0}: voxel.BlockTypeDirt,
	})
	if got := QuadCount(s.Mesh()); got != 10 {
		t.Fatalf("two touching blocks: got %d quads, want 10", got)
	}
}

func TestTranslucentSplit(t *testing.T) {
	tests := []struct {
		name        string
		src         mapSource
		opaque      int
		translucent int
	}{
		{
			name:        "glass on stone",
			src:         mapSource{{0, 0, 0}: voxel.BlockTypeStone, {0, 1, 0}: voxel.BlockTypeGlass},
			opaque:      6,
			translucent: 5,
		},
		{
			name:        "glass pair merges",
			src:         mapSource{{0, 0, 0}: voxel.BlockTypeGlass, {0, 1, 0}: voxel.BlockTypeGlass},
			opaque:      0,
			translucent: 10,
		},
		{
			name:        "water against glass",
			src:         mapSource{{0, 0, 0}: voxel.BlockTypeWater, {0, 1, 0}: voxel.BlockTypeGlass},
			opaque:      0,
			translucent: 12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := meshOf(tt.src)
			if got := QuadCount(s.Mesh()); got != tt.opaque {
				t.Fatalf("opaque: got %d, want %d", got, tt.opaque)
			}
			if got := QuadCount(s.TranslucentMesh()); got != tt.translucent {
				t.Fatalf("translucent: got %d, want %d", got, tt.translucent)
			}
		})
	}
}

func TestFaceCulledAcrossSubchunkBorder(t *testing.T) {
	// Neighbor sits outside the subchunk volume but the source still knows it.
	s := meshOf(mapSource{
		{3, 0, 0}: voxel.BlockTypeStone,
		{4, 0, 0}: voxel.BlockTypeStone,
	})
	if got := QuadCount(s.Mesh()); got != 5 {
		t.Fatalf("border block: got %d quads, want 5", got)
	}
}

func TestWindingFacesOutward(t *testing.T) {
	s := meshOf(mapSource{{1, 1, 1}: voxel.BlockTypeStone})
	m := s.Mesh()
	for q := 0; q < QuadCount(m); q++ {
		quad := m[q*FloatsPerQuad : (q+1)*FloatsPerQuad]
		vert := func(i int) mgl32.Vec3 {
			o := i * VertexStride
			return mgl32.Vec3{quad[o], quad[o+1], quad[o+2]}
		}
		normal := mgl32.Vec3{quad[NormalOffset], quad[NormalOffset+1], quad[NormalOffset+2]}
		v0, v1, v2 := vert(0), vert(1), vert(2)
		cross := v1.Sub(v0).Cross(v2.Sub(v0))
		if cross.Dot(normal) <= 0 {
			t.Fatalf("quad %d winds inward: cross %v, normal %v", q, cross, normal)
		}
	}
}

func TestWorldOriginOffset(t *testing.T) {
	src := mapSource{{0, 0, 0}: voxel.BlockTypeStone}
	s := NewSubchunk(src, voxel.Coord{}, testSize, mgl32.Vec3{32, 0, -16})
	s.UpdateMesh()
	m := s.Mesh()
	for i := 0; i < len(m); i += VertexStride {
		x, z := m[i], m[i+2]
		if x < 32 || x > 33 || z < -16 || z > -15 {
			t.Fatalf("vertex %d at (%v, %v) outside the block at world (32, -16)", i/VertexStride, x, z)
		}
	}
}

func TestUpdateMeshIsDeterministic(t *testing.T) {
	src := mapSource{
		{0, 0, 0}: voxel.BlockTypeGrass,
		{2, 1, 3}: voxel.BlockTypeWater,
		{3, 3, 3}: voxel.BlockTypeLeaves,
	}
	s := meshOf(src)
	first := append([]float32(nil), s.Mesh()...)
	firstT := append([]float32(nil), s.TranslucentMesh()...)
	s.UpdateMesh()
	if len(first) != len(s.Mesh()) || len(firstT) != len(s.TranslucentMesh()) {
		t.Fatalf("mesh length changed between runs")
	}
	for i := range first {
		if first[i] != s.Mesh()[i] {
			t.Fatalf("opaque float %d differs", i)
		}
	}
	for i := range firstT {
		if firstT[i] != s.TranslucentMesh()[i] {
			t.Fatalf("translucent float %d differs", i)
		}
	}
}

func BenchmarkSubchunkUpdateMesh(b *testing.B) {
	src := mapSource{}
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			src[voxel.Coord{X: x, Y: 0, Z: z}] = voxel.BlockTypeGrass
		}
	}
	s := NewSubchunk(src, voxel.Coord{}, voxel.Size{W: 16, H: 16, L: 16}, mgl32.Vec3{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.UpdateMesh()
	}
}
