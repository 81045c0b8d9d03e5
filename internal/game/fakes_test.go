package game

import (
	"math/rand"
	"testing"
	"time"

	"mathracer/internal/clock"
	"mathracer/internal/quiz"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeInput map[Key]bool

func (f fakeInput) Pressed(k Key) bool { return f[k] }

type fakeWorld struct {
	car       Vec3
	camPos    Vec3
	camLook   Vec3
	obstacles map[int]Vec3
	removed   []int
	segments  map[int]float64
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{obstacles: map[int]Vec3{}, segments: map[int]float64{}}
}

func (w *fakeWorld) SetCarPose(pos Vec3)            { w.car = pos }
func (w *fakeWorld) SetCameraPose(pos, lookAt Vec3) { w.camPos, w.camLook = pos, lookAt }
func (w *fakeWorld) AddObstacle(id int, pos Vec3)   { w.obstacles[id] = pos }
func (w *fakeWorld) PlaceSegment(i int, z float64)  { w.segments[i] = z }
func (w *fakeWorld) RemoveObstacle(id int) {
	delete(w.obstacles, id)
	w.removed = append(w.removed, id)
}

type fakeUI struct {
	shown     int
	text      string
	answers   [quiz.NumAnswers]int
	feedback  []Feedback
	hidden    int
	board     Scoreboard
	boardSets int
}

func (u *fakeUI) ShowQuestion(text string, answers [quiz.NumAnswers]int) {
	u.shown++
	u.text, u.answers = text, answers
}
func (u *fakeUI) ShowFeedback(f Feedback)        { u.feedback = append(u.feedback, f) }
func (u *fakeUI) HideQuestion()                  { u.hidden++ }
func (u *fakeUI) UpdateScoreboard(sb Scoreboard) { u.board = sb; u.boardSets++ }

type harness struct {
	*Session
	clock *clock.Manual
	input fakeInput
	world *fakeWorld
	ui    *fakeUI
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock: clock.NewManual(epoch),
		input: fakeInput{},
		world: newFakeWorld(),
		ui:    &fakeUI{},
	}
	h.Session = NewSession(h.input, h.world, h.ui, Options{
		Rand:  rand.New(rand.NewSource(1)),
		Clock: h.clock,
	})
	return h
}

// wrongIndex returns an answer slot that is not the correct one.
func (h *harness) wrongIndex(t *testing.T) int {
	t.Helper()
	q, ok := h.quiz.Question()
	if !ok {
		t.Fatal("no active question")
	}
	return (q.CorrectIndex() + 1) % quiz.NumAnswers
}

func (h *harness) correctIndex(t *testing.T) int {
	t.Helper()
	q, ok := h.quiz.Question()
	if !ok {
		t.Fatal("no active question")
	}
	return q.CorrectIndex()
}

// openQuestion drops an obstacle on the car and runs a frame so it collides.
func (h *harness) openQuestion(t *testing.T) {
	t.Helper()
	h.obstacles.Add(Vec3{X: h.car.X, Y: ObstacleHeight, Z: h.car.Z})
	h.Frame(0)
	if !h.state.QuestionActive {
		t.Fatal("expected question to open")
	}
}
