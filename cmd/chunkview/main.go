// Command chunkview opens a window onto a streamed voxel world and lets
// you fly around and edit blocks.
package main

import (
	"flag"
	"image"
	"log"
	"runtime"

	"chunkmesh/internal/config"
	"chunkmesh/internal/graphics"
	"chunkmesh/internal/graphics/camera"
	"chunkmesh/internal/graphics/gldriver"
	"chunkmesh/internal/graphics/texture"
	"chunkmesh/internal/input"
	"chunkmesh/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const textureSize = 16

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "configs/chunk.yaml", "chunk and terrain config")
	shadersDir := flag.String("shaders", graphics.ShadersDir, "shader directory")
	texturePath := flag.String("textures", "", "optional PNG strip of square block textures, one layer per tile")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.SetLoadRadius(cfg.LoadRadius)
	config.SetFPSLimit(cfg.FPSLimit)

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	layers, err := loadLayers(*texturePath)
	if err != nil {
		log.Fatalf("textures: %v", err)
	}
	r, err := graphics.NewRenderer(*shadersDir, layers)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer r.Delete()

	w, err := world.New(gldriver.New(), cfg)
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	defer w.Close()

	gen := world.NewTerrainGenerator(cfg.Terrain)
	cam := camera.New(graphics.WinWidth, graphics.WinHeight)
	cam.Position[1] = float32(gen.SurfaceAt(0, 8) + 6)
	cam.Position[2] = 8

	im := input.NewManager()
	im.Attach(window)

	loop := newViewLoop(window, r, w, gen, cam, im)
	loop.attachCallbacks()
	loop.Run()
}

func loadLayers(path string) ([]*image.NRGBA, error) {
	if path == "" {
		return texture.Procedural(texture.BlockStyles, textureSize)
	}
	return texture.LoadStrip(path, textureSize)
}
