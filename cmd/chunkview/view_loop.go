package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"chunkmesh/internal/config"
	"chunkmesh/internal/graphics"
	"chunkmesh/internal/graphics/camera"
	"chunkmesh/internal/input"
	"chunkmesh/internal/physics"
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/voxel"
	"chunkmesh/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	flySpeed         = 12.0 // blocks per second
	mouseSensitivity = 0.1  // degrees per pixel
	slowFrame        = 50 * time.Millisecond
)

// viewLoop owns the per-frame state of the viewer.
type viewLoop struct {
	window   *glfw.Window
	renderer *graphics.Renderer
	world    *world.World
	gen      *world.TerrainGenerator
	camera   *camera.Camera
	input    *input.Manager
	limiter  fpsLimiter

	selected      int
	showProfiling bool

	// last streamed centre chunk and radius
	streamedAt     voxel.Coord
	streamedRadius int
	streamed       bool

	firstMouse         bool
	lastMouseX, lastMY float64

	frames       int
	fps          int
	lastFPSCheck time.Time
	lastTime     time.Time
	drawn        int
}

func newViewLoop(window *glfw.Window, r *graphics.Renderer, w *world.World, gen *world.TerrainGenerator, cam *camera.Camera, im *input.Manager) *viewLoop {
	now := time.Now()
	return &viewLoop{
		window:       window,
		renderer:     r,
		world:        w,
		gen:          gen,
		camera:       cam,
		input:        im,
		firstMouse:   true,
		lastFPSCheck: now,
		lastTime:     now,
	}
}

func (v *viewLoop) attachCallbacks() {
	v.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if v.firstMouse {
			v.lastMouseX, v.lastMY = x, y
			v.firstMouse = false
			return
		}
		dx, dy := x-v.lastMouseX, v.lastMY-y
		v.lastMouseX, v.lastMY = x, y
		v.camera.Look(float32(dx)*mouseSensitivity, float32(dy)*mouseSensitivity)
	})
	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		winW, winH := w.GetSize()
		v.renderer.UpdateViewport(fbWidth, fbHeight, winW, winH)
		v.camera.SetViewport(winW, winH)
	})
}

// Run loops until the window closes.
func (v *viewLoop) Run() {
	for !v.window.ShouldClose() {
		v.tick()
	}
}

func (v *viewLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := float32(now.Sub(v.lastTime).Seconds())
	v.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	v.move(dt)
	v.handleActions()
	v.stream()

	v.drawn = v.renderer.Render(v.world, v.camera, config.GetWireframe(), v.hudLines())

	func() { defer profiling.Track("glfw.SwapBuffers")(); v.window.SwapBuffers() }()
	v.input.PostUpdate()
	frame := time.Since(now)
	v.limiter.Wait()

	v.frames++
	if since := time.Since(v.lastFPSCheck); since >= time.Second {
		v.fps = v.frames
		v.frames = 0
		v.lastFPSCheck = now
	}
	if frame > slowFrame {
		log.Printf("slow frame %v: %s", frame.Round(time.Millisecond), profiling.TopN(4))
	}
}

func (v *viewLoop) move(dt float32) {
	var forward, right, up float32
	if v.input.IsActive(input.ActionMoveForward) {
		forward++
	}
	if v.input.IsActive(input.ActionMoveBackward) {
		forward--
	}
	if v.input.IsActive(input.ActionMoveRight) {
		right++
	}
	if v.input.IsActive(input.ActionMoveLeft) {
		right--
	}
	if v.input.IsActive(input.ActionMoveUp) {
		up++
	}
	if v.input.IsActive(input.ActionMoveDown) {
		up--
	}
	step := flySpeed * dt
	v.camera.Move(forward*step, right*step, up*step)
}

func (v *viewLoop) handleActions() {
	im := v.input
	if im.JustPressed(input.ActionQuit) {
		v.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		config.ToggleWireframe()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		v.showProfiling = !v.showProfiling
	}
	if im.JustPressed(input.ActionNextBlock) {
		v.selected = (v.selected + 1) % len(voxel.Placeable)
	}
	if im.JustPressed(input.ActionRadiusUp) {
		config.SetLoadRadius(config.GetLoadRadius() + 1)
	}
	if im.JustPressed(input.ActionRadiusDown) {
		config.SetLoadRadius(config.GetLoadRadius() - 1)
	}
	if im.JustPressed(input.ActionRebuild) {
		start := time.Now()
		if err := v.world.Rebuild(); err != nil {
			log.Printf("rebuild: %v", err)
		} else {
			log.Printf("rebuilt %d chunks in %v", v.world.ChunkCount(), time.Since(start).Round(time.Millisecond))
		}
	}

	breaking := im.JustPressed(input.ActionBreakBlock)
	placing := im.JustPressed(input.ActionPlaceBlock)
	if !breaking && !placing {
		return
	}
	hit := physics.Raycast(v.camera.Position, v.camera.Front(), physics.MinReachDistance, physics.MaxReachDistance, v.world)
	if !hit.Hit {
		return
	}
	target, block := hit.Block, voxel.BlockTypeAir
	if placing {
		target, block = hit.Adjacent, voxel.Placeable[v.selected]
	}
	if err := v.world.SetBlock(target, block); err != nil {
		log.Printf("edit %v: %v", target, err)
	}
}

func (v *viewLoop) stream() {
	pos := v.camera.Position
	center := voxel.Coord{
		X: int(math.Floor(float64(pos.X()))),
		Y: int(math.Floor(float64(pos.Y()))),
		Z: int(math.Floor(float64(pos.Z()))),
	}
	cp := v.world.ChunkPosition(center)
	radius := config.GetLoadRadius()
	if v.streamed && cp.X == v.streamedAt.X && cp.Z == v.streamedAt.Z && radius == v.streamedRadius {
		return
	}
	res, err := v.world.StreamAround(center, radius, v.gen)
	if err != nil {
		log.Printf("stream around %v: %v", cp, err)
		return
	}
	v.streamedAt, v.streamedRadius, v.streamed = cp, radius, true
	if res.Loaded > 0 || res.Evicted > 0 {
		log.Printf("stream %v r=%d: +%d -%d chunks", cp, radius, res.Loaded, res.Evicted)
	}
}

func (v *viewLoop) hudLines() []string {
	p := v.camera.Position
	lines := []string{
		fmt.Sprintf("fps %d", v.fps),
		fmt.Sprintf("pos %.1f %.1f %.1f", p.X(), p.Y(), p.Z()),
		fmt.Sprintf("chunks %d/%d  radius %d", v.drawn, v.world.ChunkCount(), config.GetLoadRadius()),
		fmt.Sprintf("block %s  [tab]", voxel.Placeable[v.selected]),
	}
	if v.showProfiling {
		lines = append(lines, profiling.TopN(6))
	}
	return lines
}
