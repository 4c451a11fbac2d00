package world

import (
	"fmt"
	"log"
	"slices"

	"chunkmesh/internal/chunk"
	"chunkmesh/internal/config"
	"chunkmesh/internal/graphics/gpu"
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/voxel"
)

// World owns the loaded chunks and the index buffer they share.
type World struct {
	drv       gpu.Driver
	chunkSize voxel.Size
	subSize   voxel.Size
	indices   *gpu.IndexBuffer
	store     *ChunkStore
	chunkOpts []chunk.Option
	closed    bool
}

var _ chunk.World = (*World)(nil)

// New validates cfg and creates the shared index buffer, sized for the
// worst case of every voxel showing all six faces.
func New(drv gpu.Driver, cfg config.Config, opts ...chunk.Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	chunkSize := cfg.Chunk.Size()
	indices, err := gpu.NewIndexBuffer(drv, chunkSize.Volume()*len(voxel.Faces))
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return &World{
		drv:       drv,
		chunkSize: chunkSize,
		subSize:   cfg.Subchunk.Size(),
		indices:   indices,
		store:     NewChunkStore(),
		chunkOpts: opts,
	}, nil
}

func (w *World) Driver() gpu.Driver            { return w.drv }
func (w *World) IndexBuffer() *gpu.IndexBuffer { return w.indices }
func (w *World) ChunkSize() voxel.Size         { return w.chunkSize }
func (w *World) SubchunkSize() voxel.Size      { return w.subSize }

// ChunkPosition returns the chunk-grid position containing world voxel pos.
func (w *World) ChunkPosition(pos voxel.Coord) voxel.Coord {
	return voxel.Coord{
		X: voxel.FloorDiv(pos.X, w.chunkSize.W),
		Y: voxel.FloorDiv(pos.Y, w.chunkSize.H),
		Z: voxel.FloorDiv(pos.Z, w.chunkSize.L),
	}
}

// LocalPosition returns pos relative to its chunk's minimum corner.
func (w *World) LocalPosition(pos voxel.Coord) voxel.Coord {
	return voxel.Coord{
		X: voxel.Mod(pos.X, w.chunkSize.W),
		Y: voxel.Mod(pos.Y, w.chunkSize.H),
		Z: voxel.Mod(pos.Z, w.chunkSize.L),
	}
}

// LoadChunk creates an empty chunk at pos, or returns the loaded one.
func (w *World) LoadChunk(pos voxel.Coord) (*chunk.Chunk, error) {
	if c := w.store.Get(pos); c != nil {
		return c, nil
	}
	c, err := chunk.New(w, pos, w.chunkOpts...)
	if err != nil {
		return nil, fmt.Errorf("world: load chunk %v: %w", pos, err)
	}
	w.store.Add(pos, c)
	return c, nil
}

// Chunk returns the loaded chunk at pos, or nil.
func (w *World) Chunk(pos voxel.Coord) *chunk.Chunk {
	return w.store.Get(pos)
}

// Chunks returns the loaded chunks in position order.
func (w *World) Chunks() []*chunk.Chunk {
	return w.store.All()
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int { return w.store.Len() }

// UnloadChunk releases and forgets the chunk at pos.
func (w *World) UnloadChunk(pos voxel.Coord) bool {
	c := w.store.Remove(pos)
	if c == nil {
		return false
	}
	c.Delete()
	return true
}

// BlockAt returns the block at world position pos, air when unloaded.
func (w *World) BlockAt(pos voxel.Coord) voxel.BlockType {
	c := w.store.Get(w.ChunkPosition(pos))
	if c == nil {
		return voxel.BlockTypeAir
	}
	return c.Block(w.LocalPosition(pos))
}

// SetBlock edits one voxel and re-meshes what the edit can affect: the
// subchunks of the owning chunk and, for voxels on a chunk face, the
// loaded chunk across that face.
func (w *World) SetBlock(pos voxel.Coord, b voxel.BlockType) error {
	defer profiling.Track("world.SetBlock")()
	c := w.store.Get(w.ChunkPosition(pos))
	if c == nil {
		return fmt.Errorf("world: no chunk loaded at %v", w.ChunkPosition(pos))
	}
	if err := c.SetBlock(w.LocalPosition(pos), b); err != nil {
		return err
	}
	if err := c.UpdateAtPosition(pos); err != nil {
		return err
	}

	// a one-voxel-thick chunk touches both faces of an axis
	local := w.LocalPosition(pos)
	var across []voxel.Coord
	if local.X == w.chunkSize.W-1 {
		across = append(across, pos.Add(voxel.Coord{X: 1}))
	}
	if local.X == 0 {
		across = append(across, pos.Add(voxel.Coord{X: -1}))
	}
	if local.Y == w.chunkSize.H-1 {
		across = append(across, pos.Add(voxel.Coord{Y: 1}))
	}
	if local.Y == 0 {
		across = append(across, pos.Add(voxel.Coord{Y: -1}))
	}
	if local.Z == w.chunkSize.L-1 {
		across = append(across, pos.Add(voxel.Coord{Z: 1}))
	}
	if local.Z == 0 {
		across = append(across, pos.Add(voxel.Coord{Z: -1}))
	}
	for _, np := range across {
		nb := w.store.Get(w.ChunkPosition(np))
		if nb == nil {
			continue
		}
		if err := nb.UpdateAtPosition(np); err != nil {
			return err
		}
	}
	return nil
}

// Populate fills every loaded chunk with gen and marks them saved.
func (w *World) Populate(gen Generator) {
	for _, c := range w.store.All() {
		gen.PopulateChunk(c)
		c.SetSaved()
	}
}

// Rebuild re-meshes and uploads every loaded chunk.
func (w *World) Rebuild() error {
	defer profiling.Track("world.Rebuild")()
	for _, c := range w.store.All() {
		if err := c.Rebuild(); err != nil {
			log.Printf("world: rebuild chunk %v failed: %v", c.Position(), err)
			return err
		}
	}
	return nil
}

// Draw draws every chunk's opaque quads, then every chunk's translucent
// quads with blending on and depth writes off.
func (w *World) Draw() { w.DrawVisible(nil) }

// DrawVisible is Draw restricted to chunks for which visible returns
// true. A nil visible draws everything.
func (w *World) DrawVisible(visible func(c *chunk.Chunk) bool) {
	defer profiling.Track("world.Draw")()
	chunks := w.store.All()
	if visible != nil {
		chunks = slices.DeleteFunc(chunks, func(c *chunk.Chunk) bool { return !visible(c) })
	}
	for _, c := range chunks {
		c.Draw()
	}

	w.drv.SetBlending(true)
	w.drv.SetDepthWrite(false)
	for _, c := range chunks {
		c.DrawTranslucent()
	}
	w.drv.SetDepthWrite(true)
	w.drv.SetBlending(false)
}

// Close releases every chunk and then the shared index buffer.
func (w *World) Close() {
	if w.closed {
		return
	}
	w.closed = true
	for _, c := range w.store.All() {
		w.UnloadChunk(c.Position())
	}
	w.indices.Release()
}
