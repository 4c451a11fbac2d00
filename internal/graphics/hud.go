package graphics

import (
	"path/filepath"

	"chunkmesh/internal/graphics/text"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// HUD draws lines of text in the top-left corner of the window.
type HUD struct {
	atlas      *text.Atlas
	shader     *Shader
	texture    uint32
	vao, vbo   uint32
	projection mgl32.Mat4
	vertices   []float32
}

// NewHUD bakes the default font at px pixels and loads the text shaders.
func NewHUD(shadersDir string, px, width, height int) (*HUD, error) {
	atlas, err := text.BakeDefault(px)
	if err != nil {
		return nil, err
	}
	shader, err := NewShader(filepath.Join(shadersDir, TextVertShader), filepath.Join(shadersDir, TextFragShader))
	if err != nil {
		return nil, err
	}

	h := &HUD{atlas: atlas, shader: shader}
	h.SetViewport(width, height)

	img := atlas.Image
	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, text.FloatsPerVertex, gl.FLOAT, false, text.FloatsPerVertex*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return h, nil
}

// SetViewport sets the pixel space text is laid out in.
func (h *HUD) SetViewport(width, height int) {
	h.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// Draw renders lines starting near the top-left corner.
func (h *HUD) Draw(lines []string, color mgl32.Vec3) {
	h.vertices = h.atlas.AppendLines(h.vertices[:0], lines, 8, 8+h.atlas.LineHeight, 1)
	if len(h.vertices) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	h.shader.Use()
	h.shader.SetMatrix4("projection", &h.projection[0])
	h.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	h.shader.SetInt("glyphs", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)

	gl.BindVertexArray(h.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(h.vertices)*4, gl.Ptr(h.vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(h.vertices)/text.FloatsPerVertex))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

// Delete frees the HUD's GL objects.
func (h *HUD) Delete() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteTextures(1, &h.texture)
	h.shader.Delete()
}
