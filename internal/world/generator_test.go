package world

import (
	"testing"

	"chunkmesh/internal/config"
	"chunkmesh/internal/graphics/gpu/gputest"
	"chunkmesh/internal/voxel"
)

func TestTerrainGenerator_FlatColumn(t *testing.T) {
	g := NewTerrainGenerator(config.Terrain{GroundLevel: 10})
	cases := []struct {
		y    int
		want voxel.BlockType
	}{
		{-1, voxel.BlockTypeAir},
		{0, voxel.BlockTypeStone},
		{6, voxel.BlockTypeStone},
		{7, voxel.BlockTypeDirt},
		{9, voxel.BlockTypeDirt},
		{10, voxel.BlockTypeGrass},
		{11, voxel.BlockTypeAir},
	}
	for _, tc := range cases {
		if got := g.BlockAt(voxel.Coord{X: 40, Y: tc.y, Z: -7}); got != tc.want {
			t.Errorf("y=%d: got %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestTerrainGenerator_PoolAndGlass(t *testing.T) {
	g := NewTerrainGenerator(config.Terrain{GroundLevel: 10, WaterLevel: 10, PoolRadius: 2, GlassHeight: 3})

	if got := g.BlockAt(voxel.Coord{X: 1, Y: 7, Z: 1}); got != voxel.BlockTypeSand {
		t.Errorf("pool floor: got %v, want sand", got)
	}
	for y := 8; y <= 10; y++ {
		if got := g.BlockAt(voxel.Coord{X: 0, Y: y, Z: -1}); got != voxel.BlockTypeWater {
			t.Errorf("pool y=%d: got %v, want water", y, got)
		}
	}
	if got := g.BlockAt(voxel.Coord{X: 0, Y: 11}); got != voxel.BlockTypeAir {
		t.Errorf("above pool: got %v, want air", got)
	}

	for y := 11; y <= 13; y++ {
		if got := g.BlockAt(voxel.Coord{X: 5, Y: y}); got != voxel.BlockTypeGlass {
			t.Errorf("glass y=%d: got %v", y, got)
		}
	}
	if got := g.BlockAt(voxel.Coord{X: 5, Y: 14}); got != voxel.BlockTypeAir {
		t.Errorf("above glass: got %v, want air", got)
	}
}

func TestTerrainGenerator_ReliefBounded(t *testing.T) {
	g := NewTerrainGenerator(config.Terrain{GroundLevel: 10, Relief: 4, Seed: 99})
	other := NewTerrainGenerator(config.Terrain{GroundLevel: 10, Relief: 4, Seed: 99})
	varied := false
	for x := -64; x < 64; x += 7 {
		for z := -64; z < 64; z += 5 {
			h := g.SurfaceAt(x, z)
			if h < 10 || h > 14 {
				t.Fatalf("surface at %d,%d: %d outside [10,14]", x, z, h)
			}
			if h != other.SurfaceAt(x, z) {
				t.Fatalf("surface at %d,%d not deterministic", x, z)
			}
			if h != 10 {
				varied = true
			}
		}
	}
	if !varied {
		t.Fatalf("relief produced a flat surface")
	}
}

func TestFBMRange(t *testing.T) {
	for i := range 500 {
		x := float64(i)*0.37 - 90
		z := float64(i)*-0.53 + 40
		if v := fbm(x, z, 7, 4); v < 0 || v > 1 {
			t.Fatalf("fbm(%f, %f) = %f outside [0,1]", x, z, v)
		}
	}
	if fbm(1.5, 2.5, 3, 0) != 0 {
		t.Fatalf("zero octaves should give 0")
	}
}

func BenchmarkPopulateChunk(b *testing.B) {
	w, err := New(gputest.New(), smallConfig())
	if err != nil {
		b.Fatalf("new world: %v", err)
	}
	defer w.Close()
	c, _ := w.LoadChunk(voxel.Coord{})
	g := NewTerrainGenerator(config.Terrain{GroundLevel: 3, Relief: 3, Seed: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.PopulateChunk(c)
	}
}
