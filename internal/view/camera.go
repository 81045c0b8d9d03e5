package view

import (
	"math"

	"mathracer/internal/game"
)

const (
	fovY  = 75.0 // degrees
	NearZ = 0.1
)

// Camera is a pinhole perspective projection looking from Pos at a target.
type Camera struct {
	Pos            game.Vec3
	fwd, right, up game.Vec3
	focal, cx, cy  float64
}

func NewCamera(pos, lookAt game.Vec3, width, height int) Camera {
	fwd := normalize(sub(lookAt, pos))
	if fwd == (game.Vec3{}) {
		fwd = game.Vec3{Z: -1}
	}
	right := normalize(cross(fwd, game.Vec3{Y: 1}))
	up := cross(right, fwd)
	return Camera{
		Pos:   pos,
		fwd:   fwd,
		right: right,
		up:    up,
		focal: float64(height) / 2 / math.Tan(fovY/2*math.Pi/180),
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
	}
}

// Project maps a world point to screen space. ok is false for points
// behind the near plane.
func (c Camera) Project(p game.Vec3) (x, y, depth float64, ok bool) {
	d := sub(p, c.Pos)
	depth = dot(d, c.fwd)
	if depth < NearZ {
		return 0, 0, depth, false
	}
	x = c.cx + dot(d, c.right)*c.focal/depth
	y = c.cy - dot(d, c.up)*c.focal/depth
	return x, y, depth, true
}

// Scale is the on-screen size of one world unit at depth.
func (c Camera) Scale(depth float64) float64 {
	if depth < NearZ {
		depth = NearZ
	}
	return c.focal / depth
}

// Horizon returns the screen row the ground plane converges to.
func (c Camera) Horizon() float64 {
	far := game.Vec3{X: c.Pos.X, Y: 0, Z: c.Pos.Z - 1e5}
	_, y, _, ok := c.Project(far)
	if !ok {
		return 0
	}
	return y
}

// ClipZ is the nearest ground z worth drawing: anything closer sits
// under or behind the camera.
func (c Camera) ClipZ() float64 {
	return c.Pos.Z - NearZ
}

func sub(a, b game.Vec3) game.Vec3 { return game.Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z} }
func dot(a, b game.Vec3) float64   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b game.Vec3) game.Vec3 {
	return game.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v game.Vec3) game.Vec3 {
	l := math.Sqrt(dot(v, v))
	if l == 0 {
		return game.Vec3{}
	}
	return game.Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}
