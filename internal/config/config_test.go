package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chunkmesh/internal/voxel"
)

func TestLoad_ChunkYAML(t *testing.T) {
	cfg, err := Load("../../configs/chunk.yaml")
	if err != nil {
		t.Fatalf("load chunk.yaml: %v", err)
	}
	if got := cfg.Chunk.Size(); got != (voxel.Size{W: 16, H: 128, L: 16}) {
		t.Fatalf("chunk size: got %v", got)
	}
	if got := cfg.Subchunk.Size(); got != (voxel.Size{W: 16, H: 16, L: 16}) {
		t.Fatalf("subchunk size: got %v", got)
	}
	if cfg.Terrain.Relief != 4 || cfg.Terrain.Seed != 1337 {
		t.Fatalf("terrain relief/seed: got %d/%d", cfg.Terrain.Relief, cfg.Terrain.Seed)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("subchunk:\n  width: 8\n  height: 32\n  length: 8\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Chunk != Default().Chunk {
		t.Fatalf("chunk dims should default, got %+v", cfg.Chunk)
	}
	if cfg.Subchunk.Height != 32 {
		t.Fatalf("subchunk height: got %d, want 32", cfg.Subchunk.Height)
	}
}

func TestLoad_RejectsUnevenSubchunks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uneven.yaml")
	if err := os.WriteFile(path, []byte("subchunk:\n  width: 16\n  height: 48\n  length: 16\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, voxel.ErrUnevenPartition) {
		t.Fatalf("got %v, want ErrUnevenPartition", err)
	}
}

func TestValidate_Terrain(t *testing.T) {
	cfg := Default()
	cfg.Terrain.GroundLevel = cfg.Chunk.Height
	if err := cfg.Validate(); err == nil {
		t.Fatalf("ground level above chunk should be rejected")
	}

	cfg = Default()
	cfg.FPSLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative fps limit should be rejected")
	}

	cfg = Default()
	cfg.Terrain.Relief = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative relief should be rejected")
	}
}

func TestRenderSettings(t *testing.T) {
	SetLoadRadius(100)
	if got := GetLoadRadius(); got != 8 {
		t.Fatalf("clamped radius: got %d, want 8", got)
	}
	SetLoadRadius(-3)
	if got := GetLoadRadius(); got != 0 {
		t.Fatalf("clamped radius: got %d, want 0", got)
	}
	before := GetWireframe()
	if ToggleWireframe() == before || GetWireframe() == before {
		t.Fatalf("wireframe did not toggle")
	}
	ToggleWireframe()

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Fatalf("negative fps limit: got %d, want 0", got)
	}
	SetFPSLimit(144)
	if got := GetFPSLimit(); got != 144 {
		t.Fatalf("fps limit: got %d, want 144", got)
	}
	SetFPSLimit(0)
}
