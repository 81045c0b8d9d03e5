package game

import (
	"log"
	"math"
	"math/rand"
	"time"

	"mathracer/internal/clock"
	"mathracer/internal/quiz"
)

// Options tune how a Session gets its time and randomness. Zero values
// fall back to the system clock and a time-seeded source.
type Options struct {
	Rand  *rand.Rand
	Clock clock.Source
}

// Session is one play session: the frame loop plus the quiz state machine,
// obstacle tracker and timers it owns. It is not safe for concurrent use;
// Frame, StartGame and SelectAnswer must be called from one goroutine.
type Session struct {
	state     State
	car       Vec3
	road      *Road
	obstacles *Obstacles
	quiz      *QuizMachine
	sched     *clock.Scheduler
	rand      *rand.Rand

	input Input
	world World
	ui    UI
}

func NewSession(in Input, world World, ui UI, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}

	s := &Session{
		state:     newState(),
		car:       Vec3{Y: CarHeight},
		road:      NewRoad(),
		obstacles: NewObstacles(),
		sched:     clock.NewScheduler(opts.Clock),
		rand:      opts.Rand,
		input:     in,
		world:     world,
		ui:        ui,
	}
	s.quiz = NewQuizMachine(quiz.NewGenerator(opts.Rand), s.sched, ui)

	for i, z := range s.road.Segments() {
		world.PlaceSegment(i, z)
	}
	world.SetCarPose(s.car)
	s.followCamera()

	s.sched.Every(SpawnInterval, s.spawn)
	return s
}

// StartGame begins play and resets the displayed scoreboard.
func (s *Session) StartGame() {
	if !s.state.IsPlaying {
		log.Printf("session: start")
	}
	s.state.IsPlaying = true
	s.ui.UpdateScoreboard(s.state.scoreboard())
}

func (s *Session) Playing() bool { return s.state.IsPlaying }

// SelectAnswer forwards an answer click to the quiz. It is a no-op when no
// question is waiting for an answer.
func (s *Session) SelectAnswer(index int) bool {
	if !s.quiz.Answer(&s.state, index) {
		return false
	}
	s.ui.UpdateScoreboard(s.state.scoreboard())
	return true
}

// Frame advances the session by delta seconds of simulation time. Due
// wall-clock timers fire first, then gameplay runs unless a question is up.
// The camera is always refreshed.
func (s *Session) Frame(delta float64) {
	if delta < 0 {
		delta = 0
	}
	s.sched.Run()

	if s.state.IsPlaying && !s.state.QuestionActive {
		s.step(delta)
		s.ui.UpdateScoreboard(s.state.scoreboard())
	}
	s.followCamera()
}

func (s *Session) step(delta float64) {
	st := &s.state

	turn := TurnRate * delta
	if s.input.Pressed(KeyLeft) {
		s.car.X = math.Max(s.car.X-turn, laneMin())
	}
	if s.input.Pressed(KeyRight) {
		s.car.X = math.Min(s.car.X+turn, laneMax())
	}

	accel := Acceleration * delta
	if s.input.Pressed(KeyUp) {
		st.BaseSpeed = math.Min(st.BaseSpeed+accel, MaxBaseSpeed)
	}
	if s.input.Pressed(KeyDown) {
		st.BaseSpeed = math.Max(st.BaseSpeed-accel, MinBaseSpeed)
	}

	st.Speed = st.BaseSpeed + st.SpeedBoost
	s.car.Z -= st.Speed * delta
	s.world.SetCarPose(s.car)

	st.SpeedBoost = math.Max(0, st.SpeedBoost-BoostDecay*delta)
	st.Score += int(math.Floor(st.Speed * delta))
	st.QuestionCooldown = math.Max(0, st.QuestionCooldown-delta)

	s.road.Recycle(s.car.Z, s.world.PlaceSegment)
	s.obstacles.Track(s.car,
		func() bool { return s.quiz.Trigger(st) },
		func(ob Obstacle) { s.world.RemoveObstacle(ob.ID) },
	)
}

func (s *Session) spawn() {
	if !s.state.IsPlaying || s.state.QuestionActive {
		return
	}
	ob := s.obstacles.Spawn(s.car.Z, s.rand)
	s.world.AddObstacle(ob.ID, ob.Pos)
}

func (s *Session) followCamera() {
	s.world.SetCameraPose(Vec3{
		X: s.car.X,
		Y: s.car.Y + CameraHeight,
		Z: s.car.Z + CameraBack,
	}, s.car)
}

// View is a read-only copy of the session for UI layers.
type View struct {
	State     State
	Car       Vec3
	Obstacles []Obstacle
	Segments  []float64
	Phase     QuizPhase
	Question  quiz.Question
}

func (s *Session) Snapshot() View {
	q, _ := s.quiz.Question()
	return View{
		State:     s.state,
		Car:       s.car,
		Obstacles: s.obstacles.All(),
		Segments:  s.road.Segments(),
		Phase:     s.quiz.Phase(),
		Question:  q,
	}
}

// Scheduler exposes the session's timer queue so frontends can hang their
// own wall-clock effects off the same clock.
func (s *Session) Scheduler() *clock.Scheduler { return s.sched }
