package voxel

// Affected returns the subchunks whose mesh may change after the voxel at
// the chunk-local position local is edited. The owning subchunk comes
// first. A voxel on a subchunk's minimum or maximum face also pulls in the
// neighbor across that face, in the order +X, -X, +Y, -Y, +Z, -Z.
// Neighbors outside the partition are left out; seams with adjacent
// chunks belong to the world.
func (p Partition) Affected(local Coord) ([]Coord, error) {
	return p.AppendAffected(nil, local)
}

// AppendAffected is Affected appending into dst.
func (p Partition) AppendAffected(dst []Coord, local Coord) ([]Coord, error) {
	owner, inner, err := p.Locate(local)
	if err != nil {
		return dst, err
	}
	dst = append(dst, owner)

	try := func(c Coord) {
		if p.counts.Contains(c) {
			dst = append(dst, c)
		}
	}

	if inner.X == p.sub.W-1 {
		try(owner.Add(Coord{1, 0, 0}))
	}
	if inner.X == 0 {
		try(owner.Add(Coord{-1, 0, 0}))
	}

	if inner.Y == p.sub.H-1 {
		try(owner.Add(Coord{0, 1, 0}))
	}
	if inner.Y == 0 {
		try(owner.Add(Coord{0, -1, 0}))
	}

	if inner.Z == p.sub.L-1 {
		try(owner.Add(Coord{0, 0, 1}))
	}
	if inner.Z == 0 {
		try(owner.Add(Coord{0, 0, -1}))
	}

	return dst, nil
}
