package game

import "time"

// Road layout (world units).
const (
	RoadWidth     = 15.0
	SegmentLength = 50.0
	SegmentCount  = 10
)

// Car handling.
const (
	CarHeight    = 0.5
	TurnRate     = 3.0  // units/sec
	Acceleration = 30.0 // units/sec²
	MinBaseSpeed = 20.0
	MaxBaseSpeed = 150.0
	StartSpeed   = 50.0
)

// Speed boost earned from answers.
const (
	MaxBoost     = 100.0
	CorrectBoost = 20.0
	WrongPenalty = 10.0
	BoostDecay   = 5.0 // per second
)

const CorrectScore = 100

// Obstacles.
const (
	SpawnInterval   = 5 * time.Second
	SpawnAhead      = 150.0
	ObstacleHeight  = 1.5
	PassedMargin    = 10.0
	CollisionRadius = 3.0
)

// Quiz timing.
const (
	FeedbackDuration = 1500 * time.Millisecond
	QuestionCooldown = 3.0 // seconds of simulation time
)

// Camera offset from the car.
const (
	CameraHeight = 5.0
	CameraBack   = 10.0
)

// MaxFrameDelta is the recommended cap frontends apply to frame deltas so a
// suspended window does not produce a huge jump.
const MaxFrameDelta = 0.25

// ClampDelta bounds a frame delta to [0, max].
func ClampDelta(delta, max float64) float64 {
	return clampF(delta, 0, max)
}

// lane bounds for the car
func laneMin() float64 { return -RoadWidth/2 + 1 }
func laneMax() float64 { return RoadWidth/2 - 1 }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
