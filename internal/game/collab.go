package game

import "mathracer/internal/quiz"

// Key is a logical driving control.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// Input is polled once per frame. Keys are level triggered.
type Input interface {
	Pressed(k Key) bool
}

// World owns every visual asset; the session only moves things around.
type World interface {
	SetCarPose(pos Vec3)
	SetCameraPose(pos, lookAt Vec3)
	AddObstacle(id int, pos Vec3)
	RemoveObstacle(id int)
	PlaceSegment(index int, z float64)
}

// Feedback describes how a question was answered.
type Feedback struct {
	Correct      bool
	Selected     int
	CorrectIndex int
}

// UI shows the scoreboard and question panel. Once ShowFeedback is called
// the answer controls should stay disabled until HideQuestion.
type UI interface {
	ShowQuestion(text string, answers [quiz.NumAnswers]int)
	ShowFeedback(f Feedback)
	HideQuestion()
	UpdateScoreboard(sb Scoreboard)
}
