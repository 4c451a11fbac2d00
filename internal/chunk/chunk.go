// Package chunk holds one chunk of the voxel world: its voxel grid, the
// subchunks it is re-meshed in, and the GPU buffer its mesh lives in.
package chunk

import (
	"fmt"

	"chunkmesh/internal/graphics/gpu"
	"chunkmesh/internal/meshing"
	"chunkmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// World is what a chunk needs from the world that owns it.
type World interface {
	Driver() gpu.Driver
	// IndexBuffer is shared by all chunks and owned by the world.
	IndexBuffer() *gpu.IndexBuffer
	ChunkSize() voxel.Size
	SubchunkSize() voxel.Size
	// LocalPosition maps a world voxel position to chunk-local coordinates.
	LocalPosition(pos voxel.Coord) voxel.Coord
	// BlockAt returns the block at a world voxel position, air when unloaded.
	BlockAt(pos voxel.Coord) voxel.BlockType
}

// Subchunk is the unit of incremental re-meshing.
type Subchunk interface {
	UpdateMesh()
	Mesh() []float32
	TranslucentMesh() []float32
}

// SubchunkFactory builds the subchunk covering size voxels at the
// chunk-local origin of a chunk placed at worldOrigin.
type SubchunkFactory func(src meshing.BlockSource, origin voxel.Coord, size voxel.Size, worldOrigin mgl32.Vec3) Subchunk

func defaultSubchunk(src meshing.BlockSource, origin voxel.Coord, size voxel.Size, worldOrigin mgl32.Vec3) Subchunk {
	return meshing.NewSubchunk(src, origin, size, worldOrigin)
}

// Option customises chunk construction.
type Option func(*Chunk)

// WithSubchunkFactory replaces the default face-culling subchunk mesher.
func WithSubchunkFactory(f SubchunkFactory) Option {
	return func(c *Chunk) { c.newSubchunk = f }
}

// Chunk is a fixed-size volume of voxels with one GPU-resident mesh.
type Chunk struct {
	world         World
	position      voxel.Coord
	worldPosition voxel.Coord

	blocks    *voxel.Grid
	partition voxel.Partition
	subchunks []Subchunk // indexed by partition.Index
	modified  bool

	// client-side aggregation buffers, empty outside UpdateMesh
	mesh            []float32
	translucentMesh []float32

	buffer   *gpu.ChunkBuffer
	affected []voxel.Coord

	newSubchunk SubchunkFactory
}

// New creates an empty chunk at chunk-grid position pos. The partition is
// validated before any voxel, mesh or GPU state is built.
func New(w World, pos voxel.Coord, opts ...Option) (*Chunk, error) {
	partition, err := voxel.NewPartition(w.ChunkSize(), w.SubchunkSize())
	if err != nil {
		return nil, fmt.Errorf("chunk %v: %w", pos, err)
	}

	c := &Chunk{
		world:         w,
		position:      pos,
		worldPosition: pos.Scale(w.ChunkSize()),
		partition:     partition,
		newSubchunk:   defaultSubchunk,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.blocks = voxel.NewGrid(w.ChunkSize())

	origin := c.Origin()
	c.subchunks = make([]Subchunk, partition.Count())
	for i := range c.subchunks {
		sc := partition.CoordAt(i)
		c.subchunks[i] = c.newSubchunk(c, partition.Origin(sc), partition.SubchunkSize(), origin)
	}

	c.buffer, err = gpu.NewChunkBuffer(w.Driver(), w.IndexBuffer())
	if err != nil {
		return nil, fmt.Errorf("chunk %v: %w", pos, err)
	}
	return c, nil
}

// Position returns the chunk's slot in the world chunk grid.
func (c *Chunk) Position() voxel.Coord { return c.position }

// WorldPosition returns the world voxel position of the chunk's minimum corner.
func (c *Chunk) WorldPosition() voxel.Coord { return c.worldPosition }

// Origin is WorldPosition as a vector.
func (c *Chunk) Origin() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.worldPosition.X), float32(c.worldPosition.Y), float32(c.worldPosition.Z)}
}

// Bounds returns the chunk's world-space box.
func (c *Chunk) Bounds() (min, max mgl32.Vec3) {
	min = c.Origin()
	s := c.Size()
	return min, min.Add(mgl32.Vec3{float32(s.W), float32(s.H), float32(s.L)})
}

// Size returns the chunk dimensions.
func (c *Chunk) Size() voxel.Size { return c.blocks.Size() }

// Partition returns the subchunk partition.
func (c *Chunk) Partition() voxel.Partition { return c.partition }

// Subchunk returns the subchunk at partition coordinate sc.
func (c *Chunk) Subchunk(sc voxel.Coord) (Subchunk, bool) {
	i, ok := c.partition.Index(sc)
	if !ok {
		return nil, false
	}
	return c.subchunks[i], true
}

// Block returns the block at a chunk-local position, air outside the chunk.
func (c *Chunk) Block(local voxel.Coord) voxel.BlockType {
	return c.blocks.Get(local)
}

// SetBlock stores a block at a chunk-local position and marks the chunk
// modified when the voxel changed. It does not re-mesh.
func (c *Chunk) SetBlock(local voxel.Coord, b voxel.BlockType) error {
	changed, err := c.blocks.Set(local, b)
	if err != nil {
		return err
	}
	if changed {
		c.modified = true
	}
	return nil
}

// BlockAt implements meshing.BlockSource. Positions outside the chunk are
// looked up in the world so faces against neighbor chunks are culled.
func (c *Chunk) BlockAt(local voxel.Coord) voxel.BlockType {
	if c.blocks.InBounds(local) {
		return c.blocks.Get(local)
	}
	return c.world.BlockAt(c.worldPosition.Add(local))
}

// Modified reports whether the chunk has unsaved edits.
func (c *Chunk) Modified() bool { return c.modified }

// SetSaved clears the modified flag.
func (c *Chunk) SetSaved() { c.modified = false }

// Buffer returns the chunk's GPU buffer.
func (c *Chunk) Buffer() *gpu.ChunkBuffer { return c.buffer }

// MeshQuadCount returns the number of opaque quads on the GPU.
func (c *Chunk) MeshQuadCount() int { return c.buffer.OpaqueQuads() }

// TranslucentQuadCount returns the number of translucent quads on the GPU.
func (c *Chunk) TranslucentQuadCount() int { return c.buffer.TranslucentQuads() }

// Draw issues the opaque draw call.
func (c *Chunk) Draw() { c.buffer.DrawOpaque() }

// DrawTranslucent issues the translucent draw call.
func (c *Chunk) DrawTranslucent() { c.buffer.DrawTranslucent() }

// Delete releases the chunk's GPU resources. Calling it again does nothing.
func (c *Chunk) Delete() { c.buffer.Release() }
