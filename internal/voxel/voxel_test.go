package voxel

import (
	"errors"
	"reflect"
	"testing"
)

var (
	chunkSize    = Size{16, 128, 16}
	subchunkSize = Size{16, 16, 16}
)

func TestGridZeroFilledAndBounds(t *testing.T) {
	g := NewGrid(Size{4, 8, 2})
	if n := g.Count(BlockTypeAir); n != 64 {
		t.Fatalf("air cells: got %d, want 64", n)
	}
	changed, err := g.Set(Coord{3, 7, 1}, BlockTypeStone)
	if err != nil || !changed {
		t.Fatalf("set corner: changed=%v err=%v", changed, err)
	}
	if got := g.Get(Coord{3, 7, 1}); got != BlockTypeStone {
		t.Fatalf("get corner: got %d, want stone", got)
	}
	changed, err = g.Set(Coord{3, 7, 1}, BlockTypeStone)
	if err != nil || changed {
		t.Fatalf("same value should not report change: changed=%v err=%v", changed, err)
	}
	for _, c := range []Coord{{-1, 0, 0}, {4, 0, 0}, {0, 8, 0}, {0, 0, 2}} {
		if _, err := g.Set(c, BlockTypeDirt); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("set %v: got %v, want ErrOutOfBounds", c, err)
		}
		if got := g.Get(c); got != BlockTypeAir {
			t.Fatalf("get %v outside grid: got %d, want air", c, got)
		}
	}
}

func TestPartitionCounts(t *testing.T) {
	p, err := NewPartition(chunkSize, subchunkSize)
	if err != nil {
		t.Fatalf("new partition: %v", err)
	}
	if got := p.Counts(); got != (Size{1, 8, 1}) {
		t.Fatalf("counts: got %v, want 1x8x1", got)
	}
	if p.Count() != 8 {
		t.Fatalf("count: got %d, want 8", p.Count())
	}
}

func TestPartitionRejectsUnevenSizes(t *testing.T) {
	tests := []struct {
		name  string
		chunk Size
		sub   Size
	}{
		{"width", Size{16, 16, 16}, Size{5, 16, 16}},
		{"height", Size{16, 128, 16}, Size{16, 48, 16}},
		{"length", Size{16, 16, 10}, Size{16, 16, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPartition(tt.chunk, tt.sub); !errors.Is(err, ErrUnevenPartition) {
				t.Fatalf("got %v, want ErrUnevenPartition", err)
			}
		})
	}
	if _, err := NewPartition(Size{16, 16, 16}, Size{0, 16, 16}); err == nil {
		t.Fatalf("zero subchunk width should be rejected")
	}
}

func TestPartitionIndexRoundTrip(t *testing.T) {
	p, err := NewPartition(Size{8, 8, 8}, Size{2, 4, 8})
	if err != nil {
		t.Fatalf("new partition: %v", err)
	}
	seen := make(map[Coord]bool)
	for i := 0; i < p.Count(); i++ {
		c := p.CoordAt(i)
		if seen[c] {
			t.Fatalf("coord %v visited twice", c)
		}
		seen[c] = true
		j, ok := p.Index(c)
		if !ok || j != i {
			t.Fatalf("index(%v): got %d,%v want %d", c, j, ok, i)
		}
	}
	if len(seen) != 4*2*1 {
		t.Fatalf("visited %d subchunks, want 8", len(seen))
	}
	if _, ok := p.Index(Coord{4, 0, 0}); ok {
		t.Fatalf("index outside partition should fail")
	}
}

func TestAffected(t *testing.T) {
	p, err := NewPartition(Size{32, 32, 32}, Size{16, 16, 16})
	if err != nil {
		t.Fatalf("new partition: %v", err)
	}
	tests := []struct {
		name  string
		local Coord
		want  []Coord
	}{
		{"interior", Coord{5, 5, 5}, []Coord{{0, 0, 0}}},
		{"max x face", Coord{15, 5, 5}, []Coord{{0, 0, 0}, {1, 0, 0}}},
		{"min x face", Coord{16, 5, 5}, []Coord{{1, 0, 0}, {0, 0, 0}}},
		{"min y face at chunk edge", Coord{5, 0, 5}, []Coord{{0, 0, 0}}},
		{"max z face at chunk edge", Coord{5, 5, 31}, []Coord{{0, 0, 1}}},
		{"corner", Coord{15, 16, 15}, []Coord{{0, 1, 0}, {1, 1, 0}, {0, 0, 0}, {0, 1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Affected(tt.local)
			if err != nil {
				t.Fatalf("affected: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAffectedTallChunkExample(t *testing.T) {
	p, err := NewPartition(chunkSize, subchunkSize)
	if err != nil {
		t.Fatalf("new partition: %v", err)
	}
	got, err := p.Affected(Coord{0, 16, 0})
	if err != nil {
		t.Fatalf("affected: %v", err)
	}
	want := []Coord{{0, 1, 0}, {0, 0, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAffectedRejectsOutside(t *testing.T) {
	p, err := NewPartition(chunkSize, subchunkSize)
	if err != nil {
		t.Fatalf("new partition: %v", err)
	}
	if _, err := p.Affected(Coord{0, 128, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

func TestFloorDivMod(t *testing.T) {
	tests := []struct{ a, b, div, mod int }{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Fatalf("FloorDiv(%d, %d): got %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := Mod(tt.a, tt.b); got != tt.mod {
			t.Fatalf("Mod(%d, %d): got %d, want %d", tt.a, tt.b, got, tt.mod)
		}
	}
}

func TestBlockProperties(t *testing.T) {
	if BlockTypeStone.String() != "stone" || BlockType(999).String() != "block(999)" {
		t.Fatalf("names: %q %q", BlockTypeStone.String(), BlockType(999).String())
	}
	for _, b := range Placeable {
		if b.IsAir() {
			t.Fatalf("air in palette")
		}
	}
	if !BlockTypeWater.IsTranslucent() || BlockTypeDirt.IsTranslucent() || BlockType(999).IsTranslucent() {
		t.Fatalf("translucency table wrong")
	}
	if BlockTypeGrass.TextureLayer(FaceTop) != 2 || BlockTypeGrass.TextureLayer(FaceBottom) != 1 {
		t.Fatalf("grass layers wrong")
	}
	for _, f := range Faces {
		o := f.Offset()
		if abs(o.X)+abs(o.Y)+abs(o.Z) != 1 {
			t.Fatalf("face %d offset %v is not a unit step", f, o)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
