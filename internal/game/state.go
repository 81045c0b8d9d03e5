package game

import "math"

type Vec3 struct{ X, Y, Z float64 }

// State is the mutable record of one play session.
type State struct {
	Score          int
	BaseSpeed      float64
	SpeedBoost     float64
	Speed          float64 // BaseSpeed + SpeedBoost, refreshed every unblocked frame
	CorrectAnswers int
	WrongAnswers   int
	IsPlaying      bool
	QuestionActive bool
	// QuestionCooldown is simulation seconds left before a collision may
	// trigger another question. It only decays while gameplay runs.
	QuestionCooldown float64
}

func newState() State {
	return State{BaseSpeed: StartSpeed, Speed: StartSpeed}
}

// Scoreboard is what the UI shows about the session.
type Scoreboard struct {
	Score   int
	Speed   int
	Correct int
	Wrong   int
}

func (s *State) scoreboard() Scoreboard {
	return Scoreboard{
		Score:   s.Score,
		Speed:   int(math.Round(s.Speed)),
		Correct: s.CorrectAnswers,
		Wrong:   s.WrongAnswers,
	}
}

// canTriggerQuiz reports whether a collision may start a new question.
func (s *State) canTriggerQuiz() bool {
	return !s.QuestionActive && s.QuestionCooldown <= 0
}

func (s *State) applyCorrect() {
	s.Score += CorrectScore
	s.CorrectAnswers++
	s.SpeedBoost = math.Min(s.SpeedBoost+CorrectBoost, MaxBoost)
}

func (s *State) applyWrong() {
	s.WrongAnswers++
	s.SpeedBoost = math.Max(s.SpeedBoost-WrongPenalty, 0)
}
