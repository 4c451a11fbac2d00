package voxel

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned for coordinates outside a fixed grid.
var ErrOutOfBounds = errors.New("voxel: coordinate out of bounds")

// Grid is a dense, fixed-size 3D array of block types.
type Grid struct {
	size  Size
	cells []BlockType
}

// NewGrid allocates a zero-filled (air) grid.
func NewGrid(size Size) *Grid {
	return &Grid{
		size:  size,
		cells: make([]BlockType, size.Volume()),
	}
}

// index converts local coordinates (x, y, z) → flat index
func (g *Grid) index(x, y, z int) int {
	return x*g.size.H*g.size.L + y*g.size.L + z
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size {
	return g.size
}

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coord) bool {
	return g.size.Contains(c)
}

// Get returns the block at c, or air when c is outside the grid.
func (g *Grid) Get(c Coord) BlockType {
	if !g.size.Contains(c) {
		return BlockTypeAir
	}
	return g.cells[g.index(c.X, c.Y, c.Z)]
}

// Set stores b at c. It reports whether the cell changed.
func (g *Grid) Set(c Coord, b BlockType) (bool, error) {
	if !g.size.Contains(c) {
		return false, fmt.Errorf("%w: %v in %v grid", ErrOutOfBounds, c, g.size)
	}
	i := g.index(c.X, c.Y, c.Z)
	if g.cells[i] == b {
		return false, nil
	}
	g.cells[i] = b
	return true, nil
}

// Fill sets every cell to b.
func (g *Grid) Fill(b BlockType) {
	for i := range g.cells {
		g.cells[i] = b
	}
}

// Count returns how many cells hold b.
func (g *Grid) Count(b BlockType) int {
	n := 0
	for _, c := range g.cells {
		if c == b {
			n++
		}
	}
	return n
}
