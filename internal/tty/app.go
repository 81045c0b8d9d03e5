package tty

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"mathracer/internal/clock"
	"mathracer/internal/config"
	"mathracer/internal/game"
	"mathracer/internal/view"
)

const frameInterval = 33 * time.Millisecond

// App drives a session from terminal events.
type App struct {
	screen  tcell.Screen
	session *game.Session
	world   *view.World
	panel   *view.Panel
	held    *Held
	beeper  *Beeper

	maxDelta float64
}

func NewApp(s tcell.Screen, cfg config.Config, src clock.Source) *App {
	r := rand.New(rand.NewSource(cfg.SeedValue()))
	a := &App{
		screen:   s,
		world:    view.NewWorld(r),
		panel:    &view.Panel{},
		held:     NewHeld(src),
		maxDelta: cfg.MaxDelta,
	}
	a.session = game.NewSession(a.held, a.world, a.panel, game.Options{Rand: r, Clock: src})
	return a
}

// handle applies one terminal event. It returns false when the user quits.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, key, answer := decodeKey(ev)
		switch act {
		case actQuit:
			return false
		case actStart:
			if !a.session.Playing() {
				a.session.StartGame()
			}
		case actDrive:
			a.held.Press(key)
		case actAnswer:
			if a.panel.Accepting() {
				a.session.SelectAnswer(answer)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) frame(dt float64) {
	a.session.Frame(game.ClampDelta(dt, a.maxDelta))
	Render(a.screen, a.world, a.panel, a.session.Playing())
}

func (a *App) loop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	a.frame(0)
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			a.frame(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Run plays in the current terminal until the user quits.
func Run(cfg config.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tty: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tty: init screen: %w", err)
	}
	defer s.Fini()

	a := NewApp(s, cfg, clock.Real{})
	if !cfg.Mute {
		b, err := NewBeeper()
		if err != nil {
			// non-fatal, play without sound
			log.Printf("audio initialization failed: %v", err)
		}
		a.beeper = b
		a.panel.OnFeedback = b.Cue
		defer b.Close()
	}

	a.loop()
	return nil
}
