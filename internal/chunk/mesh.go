package chunk

import (
	"fmt"
	"slices"

	"chunkmesh/internal/meshing"
	"chunkmesh/internal/profiling"
	"chunkmesh/internal/voxel"
)

// UpdateSubchunkMeshes re-meshes every subchunk without uploading.
func (c *Chunk) UpdateSubchunkMeshes() {
	defer profiling.Track("chunk.UpdateSubchunkMeshes")()
	for _, s := range c.subchunks {
		s.UpdateMesh()
	}
}

// Rebuild re-meshes every subchunk, then aggregates and uploads.
func (c *Chunk) Rebuild() error {
	c.UpdateSubchunkMeshes()
	return c.UpdateMesh()
}

// UpdateAtPosition re-meshes the subchunks affected by an edit of the
// voxel at world position pos, then aggregates and uploads. Adjacent
// chunks are not touched.
func (c *Chunk) UpdateAtPosition(pos voxel.Coord) error {
	local := c.world.LocalPosition(pos)
	if c.worldPosition.Add(local) != pos {
		return fmt.Errorf("%w: %v is not in chunk %v", voxel.ErrOutOfBounds, pos, c.position)
	}

	var err error
	c.affected, err = c.partition.AppendAffected(c.affected[:0], local)
	if err != nil {
		return fmt.Errorf("chunk %v: %w", c.position, err)
	}
	for _, sc := range c.affected {
		i, _ := c.partition.Index(sc)
		c.subchunks[i].UpdateMesh()
	}
	return c.UpdateMesh()
}

// UpdateMesh concatenates the current subchunk meshes, opaque quads first
// and translucent quads after them, and uploads the result. The client-side
// buffers are emptied afterwards whether or not the upload succeeded.
func (c *Chunk) UpdateMesh() error {
	defer profiling.Track("chunk.UpdateMesh")()
	defer c.clearMesh()

	opaqueFloats, translucentFloats := 0, 0
	for _, s := range c.subchunks {
		opaqueFloats += len(s.Mesh())
		translucentFloats += len(s.TranslucentMesh())
	}
	c.mesh = slices.Grow(c.mesh[:0], opaqueFloats+translucentFloats)
	c.translucentMesh = slices.Grow(c.translucentMesh[:0], translucentFloats)

	for _, s := range c.subchunks {
		c.mesh = append(c.mesh, s.Mesh()...)
		c.translucentMesh = append(c.translucentMesh, s.TranslucentMesh()...)
	}

	meshQuads := meshing.QuadCount(c.mesh)
	translucentQuads := meshing.QuadCount(c.translucentMesh)

	c.mesh = append(c.mesh, c.translucentMesh...)
	if err := c.buffer.Upload(c.mesh, meshQuads, translucentQuads); err != nil {
		return fmt.Errorf("chunk %v: %w", c.position, err)
	}
	return nil
}

func (c *Chunk) clearMesh() {
	c.mesh = c.mesh[:0]
	c.translucentMesh = c.translucentMesh[:0]
}
