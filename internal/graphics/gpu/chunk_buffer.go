package gpu

import (
	"errors"
	"fmt"

	"chunkmesh/internal/meshing"
)

var (
	// ErrReleased is returned when a released buffer is used.
	ErrReleased = errors.New("gpu: buffer already released")
	// ErrLayout is returned when vertex data does not match the quad counts.
	ErrLayout = errors.New("gpu: vertex data does not match quad counts")
	// ErrIndexCapacity is returned when a mesh has more quads than the
	// shared index buffer covers.
	ErrIndexCapacity = errors.New("gpu: mesh exceeds index buffer capacity")
)

// ChunkBuffer is one chunk's vertex array and vertex buffer. Opaque quads
// sit at the start of the buffer and translucent quads follow them, so both
// passes share the buffer and the world's index buffer.
type ChunkBuffer struct {
	drv     Driver
	indices *IndexBuffer
	vao     uint32
	vbo     uint32

	opaqueQuads      int
	translucentQuads int

	released bool
}

// NewChunkBuffer allocates the vertex array and buffer and configures the
// vertex layout against the shared index buffer.
func NewChunkBuffer(drv Driver, indices *IndexBuffer) (*ChunkBuffer, error) {
	b := &ChunkBuffer{drv: drv, indices: indices}

	b.vao = drv.GenVertexArray()
	drv.BindVertexArray(b.vao)

	b.vbo = drv.GenBuffer()
	drv.BindArrayBuffer(b.vbo)

	drv.VertexAttrib(0, meshing.PositionSize, meshing.VertexStride, meshing.PositionOffset)
	drv.VertexAttrib(1, meshing.NormalSize, meshing.VertexStride, meshing.NormalOffset)
	drv.VertexAttrib(2, meshing.TextureSize, meshing.VertexStride, meshing.TextureOffset)

	drv.BindElementBuffer(indices.Handle())

	if err := drv.Err(); err != nil {
		b.Release()
		return nil, fmt.Errorf("gpu: create chunk buffer: %w", err)
	}
	return b, nil
}

// VertexArray returns the vertex array name.
func (b *ChunkBuffer) VertexArray() uint32 { return b.vao }

// VertexBuffer returns the vertex buffer name.
func (b *ChunkBuffer) VertexBuffer() uint32 { return b.vbo }

// OpaqueQuads returns the number of opaque quads resident in the buffer.
func (b *ChunkBuffer) OpaqueQuads() int { return b.opaqueQuads }

// TranslucentQuads returns the number of translucent quads resident in the buffer.
func (b *ChunkBuffer) TranslucentQuads() int { return b.translucentQuads }

// Released reports whether Release has run.
func (b *ChunkBuffer) Released() bool { return b.released }

// Upload replaces the whole buffer with vertices, which must hold
// opaqueQuads quads followed by translucentQuads quads. An empty mesh is
// not uploaded; the old contents stay allocated but are never drawn.
func (b *ChunkBuffer) Upload(vertices []float32, opaqueQuads, translucentQuads int) error {
	if b.released {
		return ErrReleased
	}
	total := opaqueQuads + translucentQuads
	if opaqueQuads < 0 || translucentQuads < 0 || len(vertices) != total*meshing.FloatsPerQuad {
		return fmt.Errorf("%w: %d floats for %d+%d quads", ErrLayout, len(vertices), opaqueQuads, translucentQuads)
	}
	if total > b.indices.MaxQuads() {
		return fmt.Errorf("%w: %d quads, %d indexed", ErrIndexCapacity, total, b.indices.MaxQuads())
	}

	if total == 0 {
		b.opaqueQuads, b.translucentQuads = 0, 0
		return nil
	}

	b.drv.BindVertexArray(b.vao)
	b.drv.BindArrayBuffer(b.vbo)
	b.drv.ArrayBufferData(vertices, DynamicDraw)
	if err := b.drv.Err(); err != nil {
		b.opaqueQuads, b.translucentQuads = 0, 0
		return fmt.Errorf("gpu: upload %d quads: %w", total, err)
	}

	b.opaqueQuads = opaqueQuads
	b.translucentQuads = translucentQuads
	return nil
}

// DrawOpaque draws the opaque quads.
func (b *ChunkBuffer) DrawOpaque() {
	if b.released || b.opaqueQuads == 0 {
		return
	}
	b.drv.BindVertexArray(b.vao)
	b.drv.DrawElementsBaseVertex(b.opaqueQuads*meshing.IndicesPerQuad, 0)
}

// DrawTranslucent draws the translucent quads stored after the opaque ones.
func (b *ChunkBuffer) DrawTranslucent() {
	if b.released || b.translucentQuads == 0 {
		return
	}
	b.drv.BindVertexArray(b.vao)
	b.drv.DrawElementsBaseVertex(
		b.translucentQuads*meshing.IndicesPerQuad,
		b.opaqueQuads*meshing.VerticesPerQuad,
	)
}

// Release deletes the vertex buffer and vertex array. It runs once; later
// calls do nothing.
func (b *ChunkBuffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.drv.DeleteBuffer(b.vbo)
	b.drv.DeleteVertexArray(b.vao)
	b.vbo, b.vao = 0, 0
	b.opaqueQuads, b.translucentQuads = 0, 0
}
