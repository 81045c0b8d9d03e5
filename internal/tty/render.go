package tty

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"mathracer/internal/game"
	"mathracer/internal/view"
)

// Top-down road: the car sits near the bottom and the road scrolls down.
const (
	roadCols    = 31
	unitsPerRow = 2.0
	dashUnits   = 4.0
)

var (
	grassStyle = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorGreen)
	roadStyle  = tcell.StyleDefault.Background(tcell.ColorDimGray).Foreground(tcell.ColorWhite)
	lineStyle  = roadStyle.Foreground(tcell.ColorYellow)
	treeStyle  = grassStyle.Foreground(tcell.NewRGBColor(0x8b, 0xc3, 0x4a))
	boxStyle   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	carStyle   = roadStyle.Foreground(tcell.ColorRed)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	goodStyle  = textStyle.Foreground(tcell.ColorGreen)
	badStyle   = textStyle.Foreground(tcell.ColorRed)
	hintStyle  = textStyle.Foreground(tcell.ColorYellow)
)

type layout struct {
	w, h   int
	left   int
	carRow int
	carZ   float64
}

func newLayout(s tcell.Screen, carZ float64) layout {
	w, h := s.Size()
	return layout{w: w, h: h, left: (w - roadCols) / 2, carRow: h - 3, carZ: carZ}
}

func (l layout) col(x float64) int {
	return l.left + int(math.Floor((x+game.RoadWidth/2)*roadCols/game.RoadWidth))
}

func (l layout) row(z float64) int {
	return l.carRow - int(math.Round((l.carZ-z)/unitsPerRow))
}

func (l layout) z(row int) float64 {
	return l.carZ - float64(l.carRow-row)*unitsPerRow
}

func drawText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func centre(s tcell.Screen, y int, str string, style tcell.Style) {
	w, _ := s.Size()
	drawText(s, (w-len([]rune(str)))/2, y, str, style)
}

func drawRoad(s tcell.Screen, l layout, w *view.World) {
	mid := l.col(0)
	for y := 0; y < l.h; y++ {
		dash := int(math.Floor(l.z(y)/dashUnits))%2 == 0
		for x := 0; x < l.w; x++ {
			switch {
			case x < l.left || x >= l.left+roadCols:
				s.SetContent(x, y, ' ', nil, grassStyle)
			case x == l.left || x == l.left+roadCols-1:
				s.SetContent(x, y, '│', nil, roadStyle)
			case x == mid && dash:
				s.SetContent(x, y, '¦', nil, lineStyle)
			default:
				s.SetContent(x, y, ' ', nil, roadStyle)
			}
		}
	}

	for _, seg := range w.Segments() {
		for _, tr := range seg.Trees {
			x, y := l.col(tr.X), l.row(seg.Z+tr.DZ)
			if x >= 0 && x < l.w && y >= 0 && y < l.h {
				s.SetContent(x, y, '♣', nil, treeStyle)
			}
		}
	}

	for _, ob := range w.Obstacles() {
		x, y := l.col(ob.X), l.row(ob.Z)
		if y >= 0 && y < l.h {
			drawText(s, x-1, y, "[?]", boxStyle)
		}
	}

	cx := l.col(w.Car.X)
	drawText(s, cx-1, l.carRow, "▄█▄", carStyle)
	drawText(s, cx-1, l.carRow+1, "▀ ▀", carStyle)
}

func drawHUD(s tcell.Screen, p *view.Panel) {
	b := p.Board
	drawText(s, 1, 0, fmt.Sprintf(" Score %-6d Speed %-4d ", b.Score, b.Speed), textStyle)
	drawText(s, 1, 1, fmt.Sprintf(" Correct %-3d", b.Correct), goodStyle)
	drawText(s, 13, 1, fmt.Sprintf(" Wrong %-3d ", b.Wrong), badStyle)
	_, h := s.Size()
	drawText(s, 1, h-1, " arrows/WASD drive  1-4 answer  q quits ", textStyle)
}

func drawQuestion(s tcell.Screen, p *view.Panel) {
	_, h := s.Size()
	y := h/2 - 3
	centre(s, y, fmt.Sprintf("   %s   ", p.Text), textStyle)
	for i := 0; i < len(p.Answers); i += 2 {
		row := y + 2 + i/2
		left := answerLabel(p, i)
		right := answerLabel(p, i+1)
		w, _ := s.Size()
		x := w/2 - 14
		drawText(s, x, row, left, answerStyle(p, i))
		drawText(s, x+14, row, right, answerStyle(p, i+1))
	}
	if p.Result != "" {
		style := goodStyle
		if p.Result != "Correct!" {
			style = badStyle
		}
		centre(s, y+5, "  "+p.Result+"  ", style)
	}
}

func answerLabel(p *view.Panel, i int) string {
	return fmt.Sprintf(" %d) %-6d ", i+1, p.Answers[i])
}

func answerStyle(p *view.Panel, i int) tcell.Style {
	switch p.Marks[i] {
	case view.MarkCorrect:
		return goodStyle.Reverse(true)
	case view.MarkWrong:
		return badStyle.Reverse(true)
	}
	if p.Disabled {
		return textStyle.Dim(true)
	}
	return hintStyle
}

func drawStart(s tcell.Screen) {
	_, h := s.Size()
	centre(s, h/2-2, "  M A T H   R A C E R  ", hintStyle)
	centre(s, h/2, "  Hit the [?] boxes and answer to earn a speed boost  ", textStyle)
	centre(s, h/2+2, "  press Enter to start  ", textStyle)
}

// Render draws one full frame.
func Render(s tcell.Screen, w *view.World, p *view.Panel, playing bool) {
	s.Clear()
	drawRoad(s, newLayout(s, w.Car.Z), w)
	if !playing {
		drawStart(s)
	} else {
		drawHUD(s, p)
		if p.Visible {
			drawQuestion(s, p)
		}
	}
	s.Show()
}
