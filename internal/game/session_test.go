package game

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestFrameMovesCarAndScores(t *testing.T) {
	h := newHarness(t)
	h.StartGame()

	h.Frame(1.0)

	if h.car.Z != -50 {
		t.Fatalf("car z = %v, want -50", h.car.Z)
	}
	if h.state.Score != 50 {
		t.Fatalf("score = %d, want 50", h.state.Score)
	}
	if h.world.car != h.car {
		t.Fatalf("world car pose %v, want %v", h.world.car, h.car)
	}
	if h.ui.board.Score != 50 || h.ui.board.Speed != 50 {
		t.Fatalf("scoreboard = %+v", h.ui.board)
	}
}

func TestFrameBeforeStartOnlyMovesCamera(t *testing.T) {
	h := newHarness(t)
	h.input[KeyUp] = true

	h.Frame(1.0)

	if h.car.Z != 0 || h.state.Score != 0 || h.state.BaseSpeed != StartSpeed {
		t.Fatalf("gameplay ran before start: car=%v state=%+v", h.car, h.state)
	}
	want := Vec3{X: 0, Y: CarHeight + CameraHeight, Z: CameraBack}
	if h.world.camPos != want || h.world.camLook != h.car {
		t.Fatalf("camera = %v looking at %v", h.world.camPos, h.world.camLook)
	}
}

func TestFrameScoreTruncatesEachFrame(t *testing.T) {
	h := newHarness(t)
	h.StartGame()

	// 50 * 0.03 = 1.5 per frame, floored to 1
	for i := 0; i < 4; i++ {
		h.Frame(0.03)
	}
	if h.state.Score != 4 {
		t.Fatalf("score = %d, want 4", h.state.Score)
	}
}

func TestFrameZeroDeltaIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.state.SpeedBoost = 30
	h.state.QuestionCooldown = 2
	h.input[KeyLeft] = true
	h.input[KeyUp] = true
	h.Frame(0.5)
	// Speed is taken before the boost decays, so settle it first
	h.Frame(0)

	before := h.Snapshot()
	cam, look := h.world.camPos, h.world.camLook

	h.Frame(0)

	after := h.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed on zero delta:\nbefore %+v\nafter  %+v", before, after)
	}
	if h.world.camPos != cam || h.world.camLook != look {
		t.Fatalf("camera moved on zero delta")
	}
}

func TestBoostDecays(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.state.SpeedBoost = 20

	h.Frame(1.0)

	if h.state.SpeedBoost != 15 {
		t.Fatalf("boost = %v, want 15", h.state.SpeedBoost)
	}
	// speed for the frame is taken before the decay
	if h.car.Z != -70 || h.state.Score != 70 {
		t.Fatalf("car z = %v score = %d, want -70 and 70", h.car.Z, h.state.Score)
	}

	for i := 0; i < 10; i++ {
		h.Frame(1.0)
	}
	if h.state.SpeedBoost != 0 {
		t.Fatalf("boost = %v, want 0", h.state.SpeedBoost)
	}
}

func TestControlsAreClamped(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		check func(h *harness) bool
	}{
		{"left", KeyLeft, func(h *harness) bool { return h.car.X == -RoadWidth/2+1 }},
		{"right", KeyRight, func(h *harness) bool { return h.car.X == RoadWidth/2-1 }},
		{"up", KeyUp, func(h *harness) bool { return h.state.BaseSpeed == MaxBaseSpeed }},
		{"down", KeyDown, func(h *harness) bool { return h.state.BaseSpeed == MinBaseSpeed }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.StartGame()
			h.input[tt.key] = true
			for i := 0; i < 40; i++ {
				h.Frame(0.25)
				if h.car.X < laneMin() || h.car.X > laneMax() {
					t.Fatalf("car x %v out of lane", h.car.X)
				}
				if h.state.BaseSpeed < MinBaseSpeed || h.state.BaseSpeed > MaxBaseSpeed {
					t.Fatalf("base speed %v out of range", h.state.BaseSpeed)
				}
			}
			if !tt.check(h) {
				t.Fatalf("not clamped: car=%v state=%+v", h.car, h.state)
			}
		})
	}
}

func TestSpawnedObstacleTriggersQuizOnce(t *testing.T) {
	h := newHarness(t)
	h.StartGame()

	h.clock.Advance(SpawnInterval)
	h.Frame(0)

	obs := h.obstacles.All()
	if len(obs) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(obs))
	}
	ob := obs[0]
	if ob.Pos.Z != -SpawnAhead || ob.Pos.Y != ObstacleHeight {
		t.Fatalf("obstacle at %v", ob.Pos)
	}
	if math.Abs(ob.Pos.X) > (RoadWidth-4)/2 {
		t.Fatalf("obstacle x %v off road", ob.Pos.X)
	}
	if _, ok := h.world.obstacles[ob.ID]; !ok {
		t.Fatal("obstacle not added to world")
	}

	h.car.X = ob.Pos.X
	for i := 0; i < 3; i++ {
		h.Frame(1.0)
	}

	if h.car.Z != -150 {
		t.Fatalf("car z = %v", h.car.Z)
	}
	if !h.state.QuestionActive || h.quiz.Phase() != QuizActive {
		t.Fatal("quiz did not trigger")
	}
	if h.ui.shown != 1 {
		t.Fatalf("question shown %d times", h.ui.shown)
	}
	if h.obstacles.Len() != 0 || len(h.world.obstacles) != 0 {
		t.Fatal("obstacle was not removed")
	}

	// frames while the question is up do nothing to gameplay
	h.Frame(1.0)
	if h.ui.shown != 1 || h.car.Z != -150 {
		t.Fatalf("gameplay ran during quiz: shown=%d z=%v", h.ui.shown, h.car.Z)
	}
}

func TestNoSpawnWhileQuestionActive(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.openQuestion(t)

	h.clock.Advance(SpawnInterval)
	h.Frame(0)
	if h.obstacles.Len() != 0 {
		t.Fatal("obstacle spawned during a question")
	}
}

func TestNoSpawnBeforeStart(t *testing.T) {
	h := newHarness(t)
	h.clock.Advance(3 * SpawnInterval)
	h.Frame(0)
	if h.obstacles.Len() != 0 {
		t.Fatal("obstacle spawned before start")
	}
}

func TestCorrectAnswer(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.state.SpeedBoost = 10
	h.openQuestion(t)
	score := h.state.Score

	if !h.SelectAnswer(h.correctIndex(t)) {
		t.Fatal("answer rejected")
	}

	if h.state.Score != score+CorrectScore {
		t.Fatalf("score = %d, want %d", h.state.Score, score+CorrectScore)
	}
	if h.state.SpeedBoost != 30 || h.state.CorrectAnswers != 1 {
		t.Fatalf("state = %+v", h.state)
	}
	if len(h.ui.feedback) != 1 || !h.ui.feedback[0].Correct {
		t.Fatalf("feedback = %+v", h.ui.feedback)
	}
	if h.ui.board.Correct != 1 || h.ui.board.Score != h.state.Score {
		t.Fatalf("scoreboard not refreshed: %+v", h.ui.board)
	}
}

func TestCorrectAnswerBoostCapped(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.state.SpeedBoost = 90
	h.openQuestion(t)

	h.SelectAnswer(h.correctIndex(t))
	if h.state.SpeedBoost != MaxBoost {
		t.Fatalf("boost = %v, want %v", h.state.SpeedBoost, MaxBoost)
	}
}

func TestWrongAnswerAndCooldown(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.state.SpeedBoost = 5
	h.openQuestion(t)

	correct := h.correctIndex(t)
	wrong := h.wrongIndex(t)
	if !h.SelectAnswer(wrong) {
		t.Fatal("answer rejected")
	}
	if h.state.WrongAnswers != 1 || h.state.SpeedBoost != 0 {
		t.Fatalf("state = %+v", h.state)
	}
	fb := h.ui.feedback[0]
	if fb.Correct || fb.Selected != wrong || fb.CorrectIndex != correct {
		t.Fatalf("feedback = %+v", fb)
	}

	// feedback stays up for the wall-clock duration, even with frames running
	h.clock.Advance(FeedbackDuration - time.Millisecond)
	h.Frame(1.0)
	if !h.state.QuestionActive || h.ui.hidden != 0 {
		t.Fatal("question closed early")
	}
	h.clock.Advance(time.Millisecond)
	h.Frame(0)
	if h.state.QuestionActive || h.ui.hidden != 1 || h.quiz.Phase() != QuizIdle {
		t.Fatal("question did not close")
	}
	if h.state.QuestionCooldown != QuestionCooldown {
		t.Fatalf("cooldown = %v", h.state.QuestionCooldown)
	}

	// keep an obstacle under the car every frame; only the third frame
	// drains the cooldown to zero
	for i := 1; i <= 3; i++ {
		h.obstacles.Add(Vec3{X: h.car.X, Y: ObstacleHeight, Z: h.car.Z - h.state.Speed})
		h.Frame(1.0)
		if got := h.state.QuestionActive; got != (i == 3) {
			t.Fatalf("frame %d: question active = %v, cooldown %v", i, got, h.state.QuestionCooldown)
		}
	}
	if h.ui.shown != 2 {
		t.Fatalf("question shown %d times", h.ui.shown)
	}
}

func TestCooldownFrozenWhileQuestionActive(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.state.QuestionCooldown = 2
	h.state.QuestionActive = true

	h.Frame(1.0)
	if h.state.QuestionCooldown != 2 {
		t.Fatalf("cooldown decayed to %v", h.state.QuestionCooldown)
	}
}

func TestAnswerGuards(t *testing.T) {
	h := newHarness(t)
	h.StartGame()

	if h.SelectAnswer(0) {
		t.Fatal("answer accepted with no question")
	}

	h.openQuestion(t)
	if h.SelectAnswer(-1) || h.SelectAnswer(4) {
		t.Fatal("out of range answer accepted")
	}
	wrong := h.wrongIndex(t)
	h.SelectAnswer(wrong)
	before := h.state
	if h.SelectAnswer(h.correctIndex(t)) || h.SelectAnswer(wrong) {
		t.Fatal("second answer accepted")
	}
	if h.state != before || len(h.ui.feedback) != 1 {
		t.Fatal("second answer changed state")
	}
}

func TestFeedbackTimerIgnoresPlayState(t *testing.T) {
	h := newHarness(t)
	h.StartGame()
	h.openQuestion(t)
	h.SelectAnswer(0)

	h.state.IsPlaying = false
	h.clock.Advance(FeedbackDuration)
	h.Frame(0)
	if h.state.QuestionActive {
		t.Fatal("feedback timer did not fire")
	}
}

func TestRoadSegmentsRecycled(t *testing.T) {
	h := newHarness(t)
	if len(h.world.segments) != SegmentCount {
		t.Fatalf("placed %d segments", len(h.world.segments))
	}
	h.StartGame()
	h.input[KeyUp] = true

	for i := 0; i < 400; i++ {
		h.Frame(0.1)
		for j, z := range h.road.Segments() {
			if z > h.car.Z+2*SegmentLength {
				t.Fatalf("segment %d at %v left behind car at %v", j, z, h.car.Z)
			}
			if h.world.segments[j] != z {
				t.Fatalf("world segment %d at %v, road has %v", j, h.world.segments[j], z)
			}
		}
	}
}

func TestClampDelta(t *testing.T) {
	if got := ClampDelta(3, MaxFrameDelta); got != MaxFrameDelta {
		t.Fatalf("ClampDelta(3) = %v", got)
	}
	if got := ClampDelta(-1, MaxFrameDelta); got != 0 {
		t.Fatalf("ClampDelta(-1) = %v", got)
	}
	if got := ClampDelta(0.016, MaxFrameDelta); got != 0.016 {
		t.Fatalf("ClampDelta(0.016) = %v", got)
	}
}
