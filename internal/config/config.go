package config

import (
	"errors"
	"fmt"
	"os"

	"chunkmesh/internal/voxel"

	"gopkg.in/yaml.v3"
)

// Dims is a width/height/length triple as written in YAML.
type Dims struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Length int `yaml:"length"`
}

// Size converts d to a voxel.Size.
func (d Dims) Size() voxel.Size {
	return voxel.Size{W: d.Width, H: d.Height, L: d.Length}
}

// Config holds chunk geometry and demo terrain settings.
type Config struct {
	Chunk    Dims    `yaml:"chunk"`
	Subchunk Dims    `yaml:"subchunk"`
	Terrain  Terrain `yaml:"terrain"`
	// LoadRadius is the initial viewer load radius in chunks.
	LoadRadius int `yaml:"load_radius"`
	// FPSLimit caps the viewer frame rate; 0 leaves it to vsync.
	FPSLimit int `yaml:"fps_limit"`
}

// Default returns 16x128x16 chunks split into 16x16x16 subchunks.
func Default() Config {
	return Config{
		Chunk:      Dims{Width: 16, Height: 128, Length: 16},
		Subchunk:   Dims{Width: 16, Height: 16, Length: 16},
		Terrain:    DefaultTerrain(),
		LoadRadius: 2,
	}
}

// Load reads a YAML config. Missing fields keep their Default values.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the subchunk size evenly divides the chunk size.
func (c Config) Validate() error {
	if _, err := voxel.NewPartition(c.Chunk.Size(), c.Subchunk.Size()); err != nil {
		return err
	}
	if c.LoadRadius < 0 {
		return errors.New("load_radius must not be negative")
	}
	if c.FPSLimit < 0 {
		return errors.New("fps_limit must not be negative")
	}
	return c.Terrain.validate(c.Chunk.Height)
}
