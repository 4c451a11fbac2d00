// Package gpu owns the GPU-side geometry of chunks: the per-chunk vertex
// array and vertex buffer, the shared quad index buffer and the draw calls
// over them. All calls go through Driver and must happen on the thread that
// owns the graphics context.
package gpu

// Usage hints how often buffer contents are replaced.
type Usage int

const (
	StaticDraw Usage = iota
	DynamicDraw
)

// Driver is the subset of the graphics API the chunk buffers need.
// Handles are opaque non-zero identifiers.
type Driver interface {
	GenVertexArray() uint32
	GenBuffer() uint32
	DeleteVertexArray(vao uint32)
	DeleteBuffer(buf uint32)

	BindVertexArray(vao uint32)
	BindArrayBuffer(vbo uint32)
	BindElementBuffer(ibo uint32)

	// VertexAttrib configures and enables float attribute index with size
	// components at offset floats into a stride-float vertex.
	VertexAttrib(index uint32, size, stride, offset int)

	ArrayBufferData(data []float32, usage Usage)
	ElementBufferData(data []uint32, usage Usage)

	// DrawElementsBaseVertex draws count indices of the bound element
	// buffer as triangles, adding baseVertex to every index.
	DrawElementsBaseVertex(count, baseVertex int)

	SetBlending(enabled bool)
	SetDepthWrite(enabled bool)

	// Err returns the first pending graphics error and clears the queue.
	Err() error
}
