// Package graphics holds the viewer's OpenGL renderer: shaders, the block
// texture array and the HUD.
package graphics

import (
	"image"
	"path/filepath"

	"chunkmesh/internal/chunk"
	"chunkmesh/internal/graphics/camera"
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	WinWidth  = 1280
	WinHeight = 720
)

// Shader file names under the shaders directory.
const (
	ShadersDir = "assets/shaders"

	ChunkVertShader = "chunk.vert"
	ChunkFragShader = "chunk.frag"
	TextVertShader  = "text.vert"
	TextFragShader  = "text.frag"
)

var (
	skyColor  = mgl32.Vec3{0.53, 0.81, 0.92}
	sunDir    = mgl32.Vec3{0.4, 1, 0.3}.Normalize()
	textColor = mgl32.Vec3{1, 1, 1}
)

// Renderer draws a world through a camera and overlays the HUD.
type Renderer struct {
	chunkShader *Shader
	textures    uint32
	hud         *HUD

	// inflates chunk boxes before frustum tests, in blocks
	frustumMargin float32
}

// NewRenderer sets global GL state, compiles the chunk shader and uploads
// the block texture layers.
func NewRenderer(shadersDir string, layers []*image.NRGBA) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	chunkShader, err := NewShader(
		filepath.Join(shadersDir, ChunkVertShader),
		filepath.Join(shadersDir, ChunkFragShader),
	)
	if err != nil {
		return nil, err
	}
	textures, err := NewTextureArray(layers)
	if err != nil {
		chunkShader.Delete()
		return nil, err
	}
	hud, err := NewHUD(shadersDir, 16, WinWidth, WinHeight)
	if err != nil {
		chunkShader.Delete()
		gl.DeleteTextures(1, &textures)
		return nil, err
	}
	return &Renderer{
		chunkShader:   chunkShader,
		textures:      textures,
		hud:           hud,
		frustumMargin: 1,
	}, nil
}

// UpdateViewport resizes the GL viewport and the HUD's pixel space.
func (r *Renderer) UpdateViewport(fbWidth, fbHeight, winWidth, winHeight int) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.hud.SetViewport(winWidth, winHeight)
}

// Render clears the frame, draws the chunks inside the camera frustum and
// then the HUD lines. It returns how many chunks were drawn.
func (r *Renderer) Render(w *world.World, cam *camera.Camera, wireframe bool, hud []string) int {
	defer profiling.Track("render.Frame")()
	gl.ClearColor(skyColor.X(), skyColor.Y(), skyColor.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := cam.View()
	projection := cam.Projection()
	clip := projection.Mul4(view)

	r.chunkShader.Use()
	r.chunkShader.SetMatrix4("view", &view[0])
	r.chunkShader.SetMatrix4("projection", &projection[0])
	r.chunkShader.SetVector3("sunDir", sunDir.X(), sunDir.Y(), sunDir.Z())
	r.chunkShader.SetVector3("fogColor", skyColor.X(), skyColor.Y(), skyColor.Z())
	r.chunkShader.SetFloat("fogEnd", cam.Far*0.25)
	r.chunkShader.SetInt("blocks", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, r.textures)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	drawn := 0
	w.DrawVisible(func(c *chunk.Chunk) bool {
		lo, hi := c.Bounds()
		m := mgl32.Vec3{r.frustumMargin, r.frustumMargin, r.frustumMargin}
		if !camera.AABBVisible(lo.Sub(m), hi.Add(m), clip) {
			return false
		}
		drawn++
		return true
	})
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	r.hud.Draw(hud, textColor)
	return drawn
}

// Delete frees the renderer's GL objects.
func (r *Renderer) Delete() {
	r.hud.Delete()
	gl.DeleteTextures(1, &r.textures)
	r.chunkShader.Delete()
}
