package screen

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mathracer/internal/config"
	"mathracer/internal/game"
	"mathracer/internal/view"
)

// Game adapts a game.Session to ebiten's Update/Draw loop.
type Game struct {
	session *game.Session
	world   *view.World
	panel   *view.Panel
	sound   *Sound

	width, height int
	maxDelta      float64
	last          time.Time
}

func NewGame(cfg config.Config) *Game {
	r := rand.New(rand.NewSource(cfg.SeedValue()))
	g := &Game{
		world:    view.NewWorld(r),
		panel:    &view.Panel{},
		width:    cfg.Width,
		height:   cfg.Height,
		maxDelta: cfg.MaxDelta,
	}
	if !cfg.Mute {
		g.sound = NewSound()
		g.panel.OnFeedback = g.sound.Cue
	}
	g.session = game.NewSession(Keyboard{}, g.world, g.panel, game.Options{Rand: r})
	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) { return g.width, g.height }

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("quit requested")
		return ebiten.Termination
	}

	switch {
	case !g.session.Playing():
		if startPressed() {
			g.session.StartGame()
		}
	case g.panel.Accepting():
		if i := answerPressed(g.width, g.height, view.AnswerAt); i >= 0 {
			g.session.SelectAnswer(i)
		}
	}

	g.session.Frame(game.ClampDelta(dt, g.maxDelta))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.world)

	if !g.session.Playing() {
		drawStart(screen)
		return
	}
	drawScoreboard(screen, g.panel)
	drawControls(screen)
	if g.panel.Visible {
		drawQuestion(screen, g.panel)
	}
}

// Run opens the window and blocks until it closes.
func Run(cfg config.Config) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Math Racer (Go/Ebiten)")
	return ebiten.RunGame(NewGame(cfg))
}
