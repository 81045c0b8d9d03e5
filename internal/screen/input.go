package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mathracer/internal/game"
	"mathracer/internal/quiz"
)

// arrows and WASD
var driveKeys = map[game.Key][]ebiten.Key{
	game.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	game.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

var answerKeys = [quiz.NumAnswers][2]ebiten.Key{
	{ebiten.Key1, ebiten.KeyNumpad1},
	{ebiten.Key2, ebiten.KeyNumpad2},
	{ebiten.Key3, ebiten.KeyNumpad3},
	{ebiten.Key4, ebiten.KeyNumpad4},
}

// Keyboard reads the held driving keys straight from ebiten.
type Keyboard struct{}

func (Keyboard) Pressed(k game.Key) bool {
	for _, key := range driveKeys[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// answerPressed returns the answer chosen this tick by number key or
// mouse click, or -1.
func answerPressed(width, height int, hit func(w, h, x, y int) int) int {
	for i, keys := range answerKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return i
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return hit(width, height, x, y)
	}
	return -1
}

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
