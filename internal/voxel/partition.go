package voxel

import (
	"errors"
	"fmt"
)

// ErrUnevenPartition is returned when a subchunk size does not evenly
// divide the chunk size.
var ErrUnevenPartition = errors.New("voxel: subchunk size does not divide chunk size")

// Partition splits a chunk-sized volume into a fixed grid of equal
// subchunks. Subchunks are addressed either by grid coordinate or by a
// linear index; index order is x outer, y, z inner.
type Partition struct {
	chunk  Size
	sub    Size
	counts Size
}

// NewPartition validates that sub evenly divides chunk on every axis.
func NewPartition(chunk, sub Size) (Partition, error) {
	if chunk.W <= 0 || chunk.H <= 0 || chunk.L <= 0 {
		return Partition{}, fmt.Errorf("voxel: invalid chunk size %v", chunk)
	}
	if sub.W <= 0 || sub.H <= 0 || sub.L <= 0 {
		return Partition{}, fmt.Errorf("voxel: invalid subchunk size %v", sub)
	}
	if chunk.W%sub.W != 0 || chunk.H%sub.H != 0 || chunk.L%sub.L != 0 {
		return Partition{}, fmt.Errorf("%w: %v / %v", ErrUnevenPartition, chunk, sub)
	}
	return Partition{
		chunk:  chunk,
		sub:    sub,
		counts: Size{chunk.W / sub.W, chunk.H / sub.H, chunk.L / sub.L},
	}, nil
}

// ChunkSize returns the partitioned volume's size.
func (p Partition) ChunkSize() Size { return p.chunk }

// SubchunkSize returns the size of one subchunk.
func (p Partition) SubchunkSize() Size { return p.sub }

// Counts returns the number of subchunks along each axis.
func (p Partition) Counts() Size { return p.counts }

// Count returns the total number of subchunks.
func (p Partition) Count() int { return p.counts.Volume() }

// Contains reports whether c is a subchunk coordinate of this partition.
func (p Partition) Contains(c Coord) bool {
	return p.counts.Contains(c)
}

// Index returns the linear index of subchunk c.
func (p Partition) Index(c Coord) (int, bool) {
	if !p.counts.Contains(c) {
		return 0, false
	}
	return c.X*p.counts.H*p.counts.L + c.Y*p.counts.L + c.Z, true
}

// CoordAt is the inverse of Index.
func (p Partition) CoordAt(i int) Coord {
	yz := p.counts.H * p.counts.L
	return Coord{
		X: i / yz,
		Y: (i % yz) / p.counts.L,
		Z: i % p.counts.L,
	}
}

// Origin returns the chunk-local position of subchunk c's minimum corner.
func (p Partition) Origin(c Coord) Coord {
	return c.Scale(p.sub)
}

// Locate splits a chunk-local voxel position into the owning subchunk's
// coordinate and the position inside that subchunk.
func (p Partition) Locate(local Coord) (sub Coord, inner Coord, err error) {
	if !p.chunk.Contains(local) {
		return Coord{}, Coord{}, fmt.Errorf("%w: %v in %v chunk", ErrOutOfBounds, local, p.chunk)
	}
	sub = Coord{local.X / p.sub.W, local.Y / p.sub.H, local.Z / p.sub.L}
	inner = Coord{local.X % p.sub.W, local.Y % p.sub.H, local.Z % p.sub.L}
	return sub, inner, nil
}
