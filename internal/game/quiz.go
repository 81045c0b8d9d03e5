package game

import (
	"log"

	"mathracer/internal/clock"
	"mathracer/internal/quiz"
)

// QuizPhase is the state of the question panel.
type QuizPhase int

const (
	QuizIdle QuizPhase = iota
	QuizActive
	QuizFeedback
)

func (p QuizPhase) String() string {
	switch p {
	case QuizIdle:
		return "idle"
	case QuizActive:
		return "active"
	case QuizFeedback:
		return "feedback"
	}
	return "unknown"
}

// QuizMachine runs one question at a time: Idle -> Active -> Feedback -> Idle.
type QuizMachine struct {
	phase    QuizPhase
	question quiz.Question
	gen      *quiz.Generator
	sched    *clock.Scheduler
	ui       UI
}

func NewQuizMachine(gen *quiz.Generator, sched *clock.Scheduler, ui UI) *QuizMachine {
	return &QuizMachine{gen: gen, sched: sched, ui: ui}
}

func (m *QuizMachine) Phase() QuizPhase { return m.phase }

// Question returns the current question; ok is false while idle.
func (m *QuizMachine) Question() (q quiz.Question, ok bool) {
	return m.question, m.phase != QuizIdle
}

// Trigger opens a new question if the state allows it.
func (m *QuizMachine) Trigger(st *State) bool {
	if m.phase != QuizIdle || !st.canTriggerQuiz() {
		return false
	}
	m.question = m.gen.Generate()
	m.phase = QuizActive
	st.QuestionActive = true
	m.ui.ShowQuestion(m.question.Text, m.question.Answers)
	log.Printf("quiz: %q", m.question.Text)
	return true
}

// Answer evaluates the answer in slot index. Only the first answer to an
// active question counts; anything else is ignored and returns false.
func (m *QuizMachine) Answer(st *State, index int) bool {
	if m.phase != QuizActive || index < 0 || index >= quiz.NumAnswers {
		return false
	}
	m.phase = QuizFeedback

	fb := Feedback{
		Correct:      m.question.Answers[index] == m.question.Correct,
		Selected:     index,
		CorrectIndex: m.question.CorrectIndex(),
	}
	if fb.Correct {
		st.applyCorrect()
	} else {
		st.applyWrong()
	}
	m.ui.ShowFeedback(fb)
	log.Printf("quiz: answered %d (correct=%v)", m.question.Answers[index], fb.Correct)

	// wall-clock timer: the frame loop is paused while the panel is up
	m.sched.After(FeedbackDuration, func() { m.resolve(st) })
	return true
}

func (m *QuizMachine) resolve(st *State) {
	m.ui.HideQuestion()
	st.QuestionActive = false
	st.QuestionCooldown = QuestionCooldown
	m.phase = QuizIdle
	m.question = quiz.Question{}
}
