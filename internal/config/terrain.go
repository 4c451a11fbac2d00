package config

import "fmt"

// Terrain configures the flat demo terrain.
type Terrain struct {
	// GroundLevel is the Y of the topmost grass layer
	GroundLevel int `yaml:"ground_level"`
	// WaterLevel is the surface Y of the water pool; 0 disables it
	WaterLevel int `yaml:"water_level"`
	// PoolRadius is the water pool radius around the world origin
	PoolRadius int `yaml:"pool_radius"`
	// GlassHeight is the height of the glass column; 0 disables it
	GlassHeight int `yaml:"glass_height"`
	// Relief is the hill amplitude added to GroundLevel; 0 keeps it flat
	Relief int `yaml:"relief"`
	// Seed drives the relief noise
	Seed int64 `yaml:"seed"`
}

// DefaultTerrain returns the demo terrain settings.
func DefaultTerrain() Terrain {
	return Terrain{
		GroundLevel: 20,
		WaterLevel:  20,
		PoolRadius:  5,
		GlassHeight: 6,
	}
}

func (t Terrain) validate(chunkHeight int) error {
	if t.GroundLevel < 0 || t.GroundLevel >= chunkHeight {
		return fmt.Errorf("terrain.ground_level %d outside [0, %d)", t.GroundLevel, chunkHeight)
	}
	if t.WaterLevel < 0 || t.WaterLevel >= chunkHeight {
		return fmt.Errorf("terrain.water_level %d outside [0, %d)", t.WaterLevel, chunkHeight)
	}
	if t.Relief < 0 || t.GroundLevel+t.Relief >= chunkHeight {
		return fmt.Errorf("terrain.relief %d reaches above the chunk", t.Relief)
	}
	if t.GroundLevel+t.GlassHeight >= chunkHeight {
		return fmt.Errorf("terrain.glass_height %d reaches above the chunk", t.GlassHeight)
	}
	return nil
}
