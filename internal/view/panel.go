package view

import (
	"strings"

	"mathracer/internal/game"
	"mathracer/internal/quiz"
)

// Mark is how an answer button is highlighted.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// Panel is the question/scoreboard model that implements game.UI.
type Panel struct {
	Board    game.Scoreboard
	Started  bool
	Visible  bool
	Text     string
	Answers  [quiz.NumAnswers]int
	Marks    [quiz.NumAnswers]Mark
	Disabled bool
	// Result is "Correct!" or "Wrong!" while feedback is shown.
	Result string

	// OnFeedback, if set, is called when an answer is judged.
	OnFeedback func(correct bool)
}

func (p *Panel) ShowQuestion(text string, answers [quiz.NumAnswers]int) {
	p.Visible = true
	p.Text = text
	p.Answers = answers
	p.Marks = [quiz.NumAnswers]Mark{}
	p.Disabled = false
	p.Result = ""
}

func (p *Panel) ShowFeedback(f game.Feedback) {
	p.Disabled = true
	if f.Correct {
		p.Marks[f.Selected] = MarkCorrect
		p.Result = "Correct!"
	} else {
		p.Marks[f.Selected] = MarkWrong
		p.Marks[f.CorrectIndex] = MarkCorrect
		p.Result = "Wrong!"
	}
	if p.OnFeedback != nil {
		p.OnFeedback(f.Correct)
	}
}

func (p *Panel) HideQuestion() {
	p.Visible = false
	p.Result = ""
	p.Marks = [quiz.NumAnswers]Mark{}
	p.Disabled = false
}

func (p *Panel) UpdateScoreboard(sb game.Scoreboard) {
	p.Started = true
	p.Board = sb
}

// Accepting reports whether answer input should be forwarded.
func (p *Panel) Accepting() bool { return p.Visible && !p.Disabled }

var asciiOps = strings.NewReplacer("×", "x", "÷", "/")

// ASCIIText is the question text with operators limited to ASCII, for
// fonts without the multiplication and division signs.
func (p *Panel) ASCIIText() string { return asciiOps.Replace(p.Text) }
