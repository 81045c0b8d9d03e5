package view

import (
	"math/rand"
	"sort"

	"mathracer/internal/game"
)

const treesPerSegment = 5

// Tree is a roadside tree placed relative to its segment centre.
type Tree struct {
	X, DZ float64
}

type Segment struct {
	Z     float64
	Trees []Tree
}

// World is the scene model the session drives. Frontends read it to draw.
type World struct {
	Car       game.Vec3
	CamPos    game.Vec3
	CamLookAt game.Vec3

	obstacles map[int]game.Vec3
	segments  map[int]*Segment
	rand      *rand.Rand
}

func NewWorld(r *rand.Rand) *World {
	return &World{
		obstacles: map[int]game.Vec3{},
		segments:  map[int]*Segment{},
		rand:      r,
	}
}

func (w *World) SetCarPose(pos game.Vec3) { w.Car = pos }

func (w *World) SetCameraPose(pos, lookAt game.Vec3) {
	w.CamPos, w.CamLookAt = pos, lookAt
}

func (w *World) AddObstacle(id int, pos game.Vec3) { w.obstacles[id] = pos }

func (w *World) RemoveObstacle(id int) { delete(w.obstacles, id) }

// PlaceSegment moves a segment; the first placement also grows its trees.
func (w *World) PlaceSegment(index int, z float64) {
	seg, ok := w.segments[index]
	if !ok {
		seg = &Segment{Trees: w.growTrees()}
		w.segments[index] = seg
	}
	seg.Z = z
}

func (w *World) growTrees() []Tree {
	trees := make([]Tree, treesPerSegment)
	for i := range trees {
		side := 1.0
		if w.rand.Float64() <= 0.5 {
			side = -1
		}
		trees[i] = Tree{
			X:  side * (game.RoadWidth/2 + 5 + w.rand.Float64()*15),
			DZ: (w.rand.Float64() - 0.5) * game.SegmentLength,
		}
	}
	return trees
}

// Obstacles returns obstacle positions ordered by id.
func (w *World) Obstacles() []game.Vec3 {
	ids := make([]int, 0, len(w.obstacles))
	for id := range w.obstacles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]game.Vec3, len(ids))
	for i, id := range ids {
		out[i] = w.obstacles[id]
	}
	return out
}

// Segments returns the road segments ordered by index.
func (w *World) Segments() []Segment {
	out := make([]Segment, 0, len(w.segments))
	for i := 0; i < len(w.segments); i++ {
		if seg, ok := w.segments[i]; ok {
			out = append(out, *seg)
		}
	}
	return out
}

// Camera builds a projection for the current camera pose.
func (w *World) Camera(width, height int) Camera {
	return NewCamera(w.CamPos, w.CamLookAt, width, height)
}
