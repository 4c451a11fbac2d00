// Package camera is a free-flying perspective camera with frustum tests.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89

// Camera looks along yaw/pitch (degrees) from Position. Yaw -90 faces -Z.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// New returns a camera for a width x height viewport facing -Z.
func New(width, height int) *Camera {
	c := &Camera{Yaw: -90, FOV: 60, Near: 0.1, Far: 1000}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio. Degenerate sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Right is the unit horizontal vector to the right of Front.
func (c *Camera) Right() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{float32(-math.Sin(yaw)), 0, float32(math.Cos(yaw))}
}

// Look turns the camera by dx, dy degrees. Pitch stays within ±89.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dx), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dy, -maxPitch, maxPitch)
}

// Move translates along the horizontal forward, right and world up axes.
func (c *Camera) Move(forward, right, up float32) {
	f := c.Front()
	flat := mgl32.Vec3{f.X(), 0, f.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	c.Position = c.Position.
		Add(flat.Mul(forward)).
		Add(c.Right().Mul(right)).
		Add(mgl32.Vec3{0, up, 0})
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Clip returns Projection * View.
func (c *Camera) Clip() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// AABBVisible reports whether the box [min, max] is not entirely outside
// one plane of the frustum described by clip. It can report boxes that
// straddle a frustum corner as visible.
func AABBVisible(min, max mgl32.Vec3, clip mgl32.Mat4) bool {
	var v [8]mgl32.Vec4
	for i := range v {
		corner := mgl32.Vec4{min.X(), min.Y(), min.Z(), 1}
		if i&1 != 0 {
			corner[0] = max.X()
		}
		if i&2 != 0 {
			corner[1] = max.Y()
		}
		if i&4 != 0 {
			corner[2] = max.Z()
		}
		v[i] = clip.Mul4x1(corner)
	}

	// axis 0..2, sign +1 for the x<=w side, -1 for -x<=w
	for axis := range 3 {
		for _, sign := range [2]float32{1, -1} {
			outside := true
			for i := range v {
				if sign*v[i][axis]-v[i].W() <= 0 {
					outside = false
					break
				}
			}
			if outside {
				return false
			}
		}
	}
	return true
}
