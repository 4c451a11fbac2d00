package meshing

import (
	"chunkmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockSource gives the mesher read access to voxel data in chunk-local
// coordinates. Positions outside the chunk must still be answered (air
// when unknown) so faces on chunk borders can be culled.
type BlockSource interface {
	BlockAt(local voxel.Coord) voxel.BlockType
}

// faceCorners holds the unit-cube corners of each face, ordered CCW when
// seen from outside so that indices 0,1,2 / 2,3,0 face outward.
var faceCorners = [6][4]mgl32.Vec3{
	voxel.FaceEast:   {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	voxel.FaceWest:   {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	voxel.FaceTop:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	voxel.FaceBottom: {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	voxel.FaceNorth:  {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	voxel.FaceSouth:  {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
}

// Subchunk is a fixed-size sub-volume of a chunk that owns its own
// face-culled mesh. Vertex positions are in world space.
type Subchunk struct {
	src         BlockSource
	origin      voxel.Coord // chunk-local min corner
	size        voxel.Size
	worldOrigin mgl32.Vec3 // world position of the chunk

	mesh            []float32
	translucentMesh []float32
}

// NewSubchunk creates an empty subchunk covering size voxels starting at
// origin inside the chunk whose world position is worldOrigin.
func NewSubchunk(src BlockSource, origin voxel.Coord, size voxel.Size, worldOrigin mgl32.Vec3) *Subchunk {
	return &Subchunk{
		src:         src,
		origin:      origin,
		size:        size,
		worldOrigin: worldOrigin,
	}
}

// Mesh returns the opaque quads from the last UpdateMesh.
func (s *Subchunk) Mesh() []float32 { return s.mesh }

// TranslucentMesh returns the translucent quads from the last UpdateMesh.
func (s *Subchunk) TranslucentMesh() []float32 { return s.translucentMesh }

// UpdateMesh regenerates both meshes from the current voxel data.
// Buffers are reused between calls.
func (s *Subchunk) UpdateMesh() {
	s.mesh = s.mesh[:0]
	s.translucentMesh = s.translucentMesh[:0]

	for x := 0; x < s.size.W; x++ {
		for y := 0; y < s.size.H; y++ {
			for z := 0; z < s.size.L; z++ {
				local := s.origin.Add(voxel.Coord{X: x, Y: y, Z: z})
				bt := s.src.BlockAt(local)
				if bt.IsAir() {
					continue
				}
				for _, f := range voxel.Faces {
					neighbor := s.src.BlockAt(local.Add(f.Offset()))
					if !faceVisible(bt, neighbor) {
						continue
					}
					if bt.IsTranslucent() {
						s.translucentMesh = s.emitQuad(s.translucentMesh, local, bt, f)
					} else {
						s.mesh = s.emitQuad(s.mesh, local, bt, f)
					}
				}
			}
		}
	}
}

// faceVisible decides whether the face between bt and neighbor is drawn.
func faceVisible(bt, neighbor voxel.BlockType) bool {
	if neighbor.IsAir() {
		return true
	}
	return neighbor.IsTranslucent() && neighbor != bt
}

func (s *Subchunk) emitQuad(dst []float32, local voxel.Coord, bt voxel.BlockType, f voxel.Face) []float32 {
	base := s.worldOrigin.Add(mgl32.Vec3{float32(local.X), float32(local.Y), float32(local.Z)})
	off := f.Offset()
	n := mgl32.Vec3{float32(off.X), float32(off.Y), float32(off.Z)}
	layer := bt.TextureLayer(f)
	for _, corner := range faceCorners[f] {
		p := base.Add(corner)
		dst = append(dst,
			p.X(), p.Y(), p.Z(),
			n.X(), n.Y(), n.Z(),
			layer,
		)
	}
	return dst
}
