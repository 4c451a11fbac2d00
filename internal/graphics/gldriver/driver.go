// Package gldriver implements gpu.Driver on OpenGL 4.1 core.
package gldriver

import (
	"fmt"

	"chunkmesh/internal/graphics/gpu"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Driver issues real OpenGL calls. gl.Init must have run on the calling
// thread with a current context.
type Driver struct{}

var _ gpu.Driver = Driver{}

// New returns a driver for the current context.
func New() Driver { return Driver{} }

func usage(u gpu.Usage) uint32 {
	if u == gpu.DynamicDraw {
		return gl.DYNAMIC_DRAW
	}
	return gl.STATIC_DRAW
}

func (Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Driver) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Driver) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (Driver) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Driver) BindArrayBuffer(vbo uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, vbo) }

func (Driver) BindElementBuffer(ibo uint32) { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo) }

func (Driver) VertexAttrib(index uint32, size, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), gl.FLOAT, false, int32(stride*floatSize), gl.PtrOffset(offset*floatSize))
	gl.EnableVertexAttribArray(index)
}

func (Driver) ArrayBufferData(data []float32, u gpu.Usage) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage(u))
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), usage(u))
}

func (Driver) ElementBufferData(data []uint32, u gpu.Usage) {
	if len(data) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, usage(u))
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage(u))
}

func (Driver) DrawElementsBaseVertex(count, baseVertex int) {
	gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil, int32(baseVertex))
}

func (Driver) SetBlending(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		return
	}
	gl.Disable(gl.BLEND)
}

func (Driver) SetDepthWrite(enabled bool) { gl.DepthMask(enabled) }

// Err drains the GL error queue and reports the first error.
func (Driver) Err() error {
	first := uint32(gl.NO_ERROR)
	for i := 0; i < 8; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == gl.NO_ERROR {
			first = code
		}
	}
	if first == gl.NO_ERROR {
		return nil
	}
	return fmt.Errorf("gl error 0x%x (%s)", first, errorName(first))
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return "unknown"
	}
}
