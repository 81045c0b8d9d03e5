package view

import (
	"image"

	"mathracer/internal/quiz"
)

// Answer buttons sit in a 2x2 grid inside a centred question box.
const (
	PanelW   = 440
	PanelH   = 200
	buttonW  = 180
	buttonH  = 40
	buttonGX = 20
	buttonGY = 14
)

// PanelRect is the question box for a screen of the given size.
func PanelRect(width, height int) image.Rectangle {
	x := (width - PanelW) / 2
	y := (height - PanelH) / 2
	return image.Rect(x, y, x+PanelW, y+PanelH)
}

// AnswerRects returns the button rectangles in answer order.
func AnswerRects(width, height int) [quiz.NumAnswers]image.Rectangle {
	p := PanelRect(width, height)
	gridW := 2*buttonW + buttonGX
	x0 := p.Min.X + (PanelW-gridW)/2
	y0 := p.Min.Y + 70

	var out [quiz.NumAnswers]image.Rectangle
	for i := range out {
		x := x0 + (i%2)*(buttonW+buttonGX)
		y := y0 + (i/2)*(buttonH+buttonGY)
		out[i] = image.Rect(x, y, x+buttonW, y+buttonH)
	}
	return out
}

// AnswerAt returns the answer under a screen point, or -1.
func AnswerAt(width, height, x, y int) int {
	pt := image.Pt(x, y)
	for i, r := range AnswerRects(width, height) {
		if pt.In(r) {
			return i
		}
	}
	return -1
}
