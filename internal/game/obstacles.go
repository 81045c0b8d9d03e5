package game

import (
	"math"
	"math/rand"
)

type Obstacle struct {
	ID       int
	Pos      Vec3
	Consumed bool
}

// Obstacles is the live set of quiz obstacles. Spawns that arrive while a
// tracking pass is running are buffered and merged when the pass ends.
type Obstacles struct {
	live     []*Obstacle
	pending  []*Obstacle
	tracking bool
	nextID   int
}

func NewObstacles() *Obstacles {
	return &Obstacles{}
}

// Len counts live and buffered obstacles.
func (o *Obstacles) Len() int { return len(o.live) + len(o.pending) }

// All returns copies of the live obstacles.
func (o *Obstacles) All() []Obstacle {
	out := make([]Obstacle, 0, o.Len())
	for _, ob := range o.live {
		out = append(out, *ob)
	}
	for _, ob := range o.pending {
		out = append(out, *ob)
	}
	return out
}

// Spawn places a new obstacle SpawnAhead units in front of carZ at a random
// lateral offset that keeps it on the road.
func (o *Obstacles) Spawn(carZ float64, r *rand.Rand) Obstacle {
	half := (RoadWidth - 4) / 2
	return o.Add(Vec3{
		X: (r.Float64()*2 - 1) * half,
		Y: ObstacleHeight,
		Z: carZ - SpawnAhead,
	})
}

func (o *Obstacles) Add(pos Vec3) Obstacle {
	o.nextID++
	ob := &Obstacle{ID: o.nextID, Pos: pos}
	if o.tracking {
		o.pending = append(o.pending, ob)
	} else {
		o.live = append(o.live, ob)
	}
	return *ob
}

// Track runs one collision pass against the car. Passed obstacles are
// dropped. For an obstacle within CollisionRadius on both axes, hit is
// asked whether a quiz may start; if it did, the obstacle is consumed.
// removed is called for every obstacle that leaves the set.
func (o *Obstacles) Track(car Vec3, hit func() bool, removed func(Obstacle)) {
	o.tracking = true
	kept := o.live[:0]
	for _, ob := range o.live {
		switch {
		case ob.Pos.Z > car.Z+PassedMargin:
			removed(*ob)
		case math.Abs(ob.Pos.Z-car.Z) < CollisionRadius &&
			math.Abs(ob.Pos.X-car.X) < CollisionRadius && hit():
			ob.Consumed = true
			removed(*ob)
		default:
			kept = append(kept, ob)
		}
	}
	for i := len(kept); i < len(o.live); i++ {
		o.live[i] = nil
	}
	o.live = append(kept, o.pending...)
	o.pending = nil
	o.tracking = false
}
