package config

import "sync"

// RenderSettings holds runtime viewer toggles
type RenderSettings struct {
	mu         sync.RWMutex
	loadRadius int // in chunks
	wireframe  bool
	fpsLimit   int // 0 = uncapped
}

var globalRenderSettings = &RenderSettings{
	loadRadius: 2, // default value
}

// GetLoadRadius returns the current chunk load radius
func GetLoadRadius() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.loadRadius
}

// SetLoadRadius sets the chunk load radius
func SetLoadRadius(radius int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if radius < 0 {
		radius = 0
	}
	if radius > 8 {
		radius = 8
	}

	globalRenderSettings.loadRadius = radius
}

// GetWireframe returns whether chunks are drawn as wireframe
func GetWireframe() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.wireframe
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.wireframe = !globalRenderSettings.wireframe
	return globalRenderSettings.wireframe
}

// GetFPSLimit returns the frame rate cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap; values <= 0 remove it
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}
