package world

import (
	"log"

	"chunkmesh/internal/chunk"
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/voxel"
)

// StreamResult reports what one StreamAround call changed.
type StreamResult struct {
	Loaded  int
	Evicted int
}

// StreamAround keeps the chunk columns within radius chunks of world
// position center loaded: missing chunks are created, populated with gen
// and meshed, chunks beyond the radius are unloaded. Loaded chunks that
// gained or lost a face neighbor are re-meshed so their border faces match
// what is loaded.
func (w *World) StreamAround(center voxel.Coord, radius int, gen Generator) (StreamResult, error) {
	defer profiling.Track("world.StreamAround")()
	var res StreamResult
	cp := w.ChunkPosition(center)

	// chunks whose face neighbors changed; only loaded ones are rebuilt
	stale := make(map[voxel.Coord]bool)
	for _, pos := range w.store.OutsideRadiusXZ(cp.X, cp.Z, radius) {
		if !w.UnloadChunk(pos) {
			continue
		}
		res.Evicted++
		for _, f := range voxel.Faces {
			stale[pos.Add(f.Offset())] = true
		}
	}

	var fresh []*chunk.Chunk
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if dx*dx+dz*dz > radius*radius {
				continue
			}
			pos := voxel.Coord{X: cp.X + dx, Y: 0, Z: cp.Z + dz}
			if w.store.Get(pos) != nil {
				continue
			}
			c, err := w.LoadChunk(pos)
			if err != nil {
				return res, err
			}
			gen.PopulateChunk(c)
			c.SetSaved()
			fresh = append(fresh, c)
		}
	}
	res.Loaded = len(fresh)

	for _, c := range fresh {
		stale[c.Position()] = true
		for _, f := range voxel.Faces {
			stale[c.Position().Add(f.Offset())] = true
		}
	}
	for _, c := range w.store.All() {
		if !stale[c.Position()] {
			continue
		}
		if err := c.Rebuild(); err != nil {
			log.Printf("world: mesh chunk %v failed: %v", c.Position(), err)
			return res, err
		}
	}
	return res, nil
}
