package meshing

// Vertex layout shared by the mesher and the chunk buffers:
// position.xyz, normal.xyz, texture layer.
const (
	PositionOffset = 0
	PositionSize   = 3
	NormalOffset   = 3
	NormalSize     = 3
	TextureOffset  = 6
	TextureSize    = 1

	// VertexStride is number of float32 per vertex
	VertexStride = 7

	VerticesPerQuad = 4
	IndicesPerQuad  = 6
	FloatsPerQuad   = VertexStride * VerticesPerQuad
)

// QuadCount returns how many whole quads a vertex slice holds.
func QuadCount(vertices []float32) int {
	return len(vertices) / FloatsPerQuad
}
