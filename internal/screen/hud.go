package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"mathracer/internal/view"
)

var (
	shade       = color.RGBA{0, 0, 0, 0xa0}
	buttonColor = color.RGBA{0x2b, 0x6c, 0xb0, 0xff}
	rightColor  = color.RGBA{0x5c, 0xb8, 0x5c, 0xff}
	wrongColor  = color.RGBA{0xd9, 0x53, 0x4f, 0xff}
	mutedColor  = color.RGBA{0x55, 0x66, 0x77, 0xff}
)

func drawScoreboard(img *ebiten.Image, p *view.Panel) {
	rect(img, 10, 10, 150, 78, shade)
	face := basicfont.Face7x13
	text.Draw(img, fmt.Sprintf("Score:   %d", p.Board.Score), face, 20, 30, color.White)
	text.Draw(img, fmt.Sprintf("Speed:   %d", p.Board.Speed), face, 20, 46, color.White)
	text.Draw(img, fmt.Sprintf("Correct: %d", p.Board.Correct), face, 20, 62, rightColor)
	text.Draw(img, fmt.Sprintf("Wrong:   %d", p.Board.Wrong), face, 20, 78, wrongColor)
}

func drawControls(img *ebiten.Image) {
	h := float64(img.Bounds().Dy())
	rect(img, 10, h-34, 420, 24, shade)
	text.Draw(img, "Arrows/WASD drive   1-4 or click to answer   Esc quits", basicfont.Face7x13, 18, int(h)-18, color.White)
}

func drawStart(img *ebiten.Image) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	rect(img, 0, 0, w, h, shade)
	centredText(img, "MATH RACER", w/2, h/2-30, color.White)
	centredText(img, "Hit the ? boxes and answer fast to earn a speed boost.", w/2, h/2, color.White)
	centredText(img, "Press Enter to start", w/2, h/2+30, centreColor)
}

func drawQuestion(img *ebiten.Image, p *view.Panel) {
	b := img.Bounds()
	box := view.PanelRect(b.Dx(), b.Dy())
	rect(img, float64(box.Min.X), float64(box.Min.Y), view.PanelW, view.PanelH, shade)

	cx := float64(box.Min.X) + view.PanelW/2
	centredText(img, p.ASCIIText(), cx, float64(box.Min.Y)+40, color.White)

	for i, r := range view.AnswerRects(b.Dx(), b.Dy()) {
		c := buttonColor
		switch {
		case p.Marks[i] == view.MarkCorrect:
			c = rightColor
		case p.Marks[i] == view.MarkWrong:
			c = wrongColor
		case p.Disabled:
			c = mutedColor
		}
		x, y := float32(r.Min.X), float32(r.Min.Y)
		vector.DrawFilledRect(img, x, y, float32(r.Dx()), float32(r.Dy()), c, false)
		vector.StrokeRect(img, x, y, float32(r.Dx()), float32(r.Dy()), 1, color.White, false)
		label := fmt.Sprintf("%d)  %d", i+1, p.Answers[i])
		centredText(img, label, float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2+4), color.White)
	}

	if p.Result != "" {
		c := rightColor
		if p.Result != "Correct!" {
			c = wrongColor
		}
		centredText(img, p.Result, cx, float64(box.Max.Y)-14, c)
	}
}
