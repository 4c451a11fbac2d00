package voxel

import "fmt"

// Coord is an integer 3D position. Depending on context it addresses a
// chunk in the world grid, a subchunk in a partition or a single voxel.
type Coord struct {
	X, Y, Z int
}

// Add returns c + o component-wise.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Scale multiplies each component by the matching size dimension.
func (c Coord) Scale(s Size) Coord {
	return Coord{c.X * s.W, c.Y * s.H, c.Z * s.L}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Size is a width × height × length extent.
type Size struct {
	W, H, L int
}

// Volume returns W*H*L.
func (s Size) Volume() int {
	return s.W * s.H * s.L
}

// Contains reports whether c lies in [0,W)×[0,H)×[0,L).
func (s Size) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H && c.Z >= 0 && c.Z < s.L
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%dx%d", s.W, s.H, s.L)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns the non-negative remainder of a / b for positive b.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
