package quiz

import (
	"fmt"
	"math/rand"
)

// Op is an arithmetic operator used by a question.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	}
	return "?"
}

// NumAnswers is the number of choices shown for every question.
const NumAnswers = 4

// decoy offsets are drawn from [-decoySpread, decoySpread)
const decoySpread = 10

// maxDecoyTries bounds the decoy sampler; the fallback below only
// runs if it is exhausted.
const maxDecoyTries = 1000

type Question struct {
	Text    string
	Op      Op
	A, B    int
	Correct int
	Answers [NumAnswers]int
}

// CorrectIndex returns the slot holding the correct answer.
func (q Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a == q.Correct {
			return i
		}
	}
	return -1
}

// Generator builds random multiple choice arithmetic questions.
type Generator struct {
	rand *rand.Rand
}

func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Generate returns a new question. It never touches game state.
func (g *Generator) Generate() Question {
	r := g.rand
	q := Question{Op: Op(r.Intn(4))}

	switch q.Op {
	case Add:
		q.A = 1 + r.Intn(50)
		q.B = 1 + r.Intn(50)
		q.Correct = q.A + q.B
	case Subtract:
		q.A = 20 + r.Intn(50)
		q.B = r.Intn(q.A)
		q.Correct = q.A - q.B
	case Multiply:
		q.A = 1 + r.Intn(12)
		q.B = 1 + r.Intn(12)
		q.Correct = q.A * q.B
	case Divide:
		// build the dividend from the quotient so division is exact
		q.B = 2 + r.Intn(10)
		q.Correct = 1 + r.Intn(10)
		q.A = q.B * q.Correct
	}
	q.Text = fmt.Sprintf("%d %s %d = ?", q.A, q.Op.Symbol(), q.B)

	q.Answers = g.answers(q.Correct)
	return q
}

func (g *Generator) answers(correct int) [NumAnswers]int {
	var out [NumAnswers]int
	out[0] = correct
	n := 1

	seen := func(v int) bool {
		for _, a := range out[:n] {
			if a == v {
				return true
			}
		}
		return false
	}

	for tries := 0; n < NumAnswers && tries < maxDecoyTries; tries++ {
		off := g.rand.Intn(2*decoySpread) - decoySpread
		if off == 0 {
			continue
		}
		v := correct + off
		if v > 0 && !seen(v) {
			out[n] = v
			n++
		}
	}
	for v := correct + 1; n < NumAnswers; v++ {
		if !seen(v) {
			out[n] = v
			n++
		}
	}

	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j := g.rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
