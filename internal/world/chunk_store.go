package world

import (
	"cmp"
	"slices"
	"sync"

	"chunkmesh/internal/chunk"
	"chunkmesh/internal/voxel"
)

// ChunkStore indexes loaded chunks by chunk position.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks map[voxel.Coord]*chunk.Chunk
}

// NewChunkStore creates an empty store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{chunks: make(map[voxel.Coord]*chunk.Chunk)}
}

// Get returns the chunk at pos, or nil.
func (cs *ChunkStore) Get(pos voxel.Coord) *chunk.Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.chunks[pos]
}

// Add stores c at pos unless a chunk is already there.
func (cs *ChunkStore) Add(pos voxel.Coord, c *chunk.Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[pos]; ok {
		return false
	}
	cs.chunks[pos] = c
	return true
}

// Remove forgets the chunk at pos and returns it.
func (cs *ChunkStore) Remove(pos voxel.Coord) *chunk.Chunk {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	c, ok := cs.chunks[pos]
	if !ok {
		return nil
	}
	delete(cs.chunks, pos)
	return c
}

// Len returns the number of loaded chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// All returns the chunks ordered by X, then Y, then Z.
func (cs *ChunkStore) All() []*chunk.Chunk {
	cs.mu.RLock()
	out := make([]*chunk.Chunk, 0, len(cs.chunks))
	for _, c := range cs.chunks {
		out = append(out, c)
	}
	cs.mu.RUnlock()
	slices.SortFunc(out, func(a, b *chunk.Chunk) int {
		return compareCoord(a.Position(), b.Position())
	})
	return out
}

// OutsideRadiusXZ returns the positions of chunks farther than radius
// chunks from (cx, cz) in the XZ plane, in position order.
func (cs *ChunkStore) OutsideRadiusXZ(cx, cz, radius int) []voxel.Coord {
	cs.mu.RLock()
	var far []voxel.Coord
	for pos := range cs.chunks {
		dx, dz := pos.X-cx, pos.Z-cz
		if dx*dx+dz*dz > radius*radius {
			far = append(far, pos)
		}
	}
	cs.mu.RUnlock()
	slices.SortFunc(far, compareCoord)
	return far
}

func compareCoord(a, b voxel.Coord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
