package gpu

import (
	"fmt"

	"chunkmesh/internal/meshing"
)

// QuadIndices returns the element indices for quads quads: 0,1,2,2,3,0
// shifted by 4 per quad.
func QuadIndices(quads int) []uint32 {
	indices := make([]uint32, 0, quads*meshing.IndicesPerQuad)
	for q := 0; q < quads; q++ {
		b := uint32(q * meshing.VerticesPerQuad)
		indices = append(indices, b, b+1, b+2, b+2, b+3, b)
	}
	return indices
}

// IndexBuffer is the element buffer shared by every chunk of a world.
// Chunks reference it; the world owns and releases it.
type IndexBuffer struct {
	drv      Driver
	ibo      uint32
	maxQuads int
	released bool
}

// NewIndexBuffer uploads indices for up to maxQuads quads.
func NewIndexBuffer(drv Driver, maxQuads int) (*IndexBuffer, error) {
	if maxQuads <= 0 {
		return nil, fmt.Errorf("gpu: index buffer needs a positive quad count, got %d", maxQuads)
	}
	b := &IndexBuffer{drv: drv, maxQuads: maxQuads}
	b.ibo = drv.GenBuffer()
	// An element buffer binding belongs to the VAO; use none while filling.
	drv.BindVertexArray(0)
	drv.BindElementBuffer(b.ibo)
	drv.ElementBufferData(QuadIndices(maxQuads), StaticDraw)
	if err := drv.Err(); err != nil {
		drv.DeleteBuffer(b.ibo)
		return nil, fmt.Errorf("gpu: upload index buffer: %w", err)
	}
	return b, nil
}

// Handle returns the element buffer name.
func (b *IndexBuffer) Handle() uint32 { return b.ibo }

// MaxQuads returns how many quads the indices cover.
func (b *IndexBuffer) MaxQuads() int { return b.maxQuads }

// Release deletes the element buffer. Later calls do nothing.
func (b *IndexBuffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.drv.DeleteBuffer(b.ibo)
	b.ibo = 0
}
