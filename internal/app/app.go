package app

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/AhmedAllam0/pingpong/internal/audio"
	"github.com/AhmedAllam0/pingpong/internal/config"
	"github.com/AhmedAllam0/pingpong/internal/game"
	"github.com/AhmedAllam0/pingpong/internal/ui"
)

// App is the host controller: it owns the tick loop, feeds controls
// into the engine, and fans the engine's snapshots and feedback events
// out to the render and audio collaborators.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *game.Engine
	fx       *ui.Effects

	leftInput  ui.InputState
	rightInput ui.InputState

	mode  game.Mode
	sound bool

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		mode: cfg.Mode(),
		quit: make(chan struct{}),
	}
}

// Run initializes the collaborators and enters the main loop.
func (a *App) Run() error {
	// Audio is best-effort; the game works without sound
	a.sound = a.cfg.SoundEnabled
	if a.sound {
		if err := audio.Init(); err != nil {
			a.sound = false
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return errors.Wrap(err, "initializing screen")
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.fx = ui.NewEffects()

	a.engine = game.NewEngine()
	a.engine.SetDifficulty(a.cfg.Difficulty)
	a.engine.SetTheme(a.cfg.Theme)
	a.engine.SetReducedMotion(a.cfg.ReducedMotion)
	a.engine.SetAdaptiveAI(a.cfg.AdaptiveAI)
	a.engine.SetPowerUpsEnabled(a.cfg.PowerUps)
	a.engine.SetSpawnRate(a.cfg.SpawnRate)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// mainLoop runs keyboard events against a fixed 60Hz tick.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// tick advances the simulation one step and refreshes all output.
func (a *App) tick() {
	left := a.leftInput.Control()
	right := a.rightInput.Control()
	a.engine.Update(left, right)

	for _, ev := range a.engine.DrainEvents() {
		if tone, ok := ev.(game.ToneEvent); ok {
			if a.sound {
				audio.PlayTone(tone.Freq, tone.Duration, tone.Volume, tone.Delay)
			}
			continue
		}
		a.fx.Consume(ev)
	}

	snap := a.engine.Snapshot()

	// Cosmetics keep decaying while the ball is frozen or the game is
	// paused, so the screen never looks stuck.
	ballLive := snap.Status == game.StatusPlaying && snap.ServeSeconds == 0
	a.fx.Step(snap.Ball.X, snap.Ball.Y, ballLive)

	a.render(snap)
}

func (a *App) render(snap game.Snapshot) {
	switch snap.Status {
	case game.StatusMenu:
		a.renderer.RenderMenu(snap)
	case game.StatusGameOver:
		a.renderer.RenderGameOver(snap)
	default:
		a.renderer.RenderGame(snap, a.fx)
	}
}

// handleEvent processes one terminal event. Returns true to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		switch a.engine.Status {
		case game.StatusMenu:
			a.handleMenuKey(ev)
		case game.StatusPlaying, game.StatusPaused:
			a.handleGameKey(ev)
		case game.StatusGameOver:
			a.handleGameOverKey(ev)
		}

	case *tcell.EventResize:
		a.screen.Clear()
	}
	return false
}

func (a *App) handleMenuKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter {
		a.engine.Start(a.engine.Difficulty, a.cfg.PointsToWin, a.mode)
		return
	}
	switch ev.Rune() {
	case '2':
		if a.mode == game.ModeSingle {
			a.mode = game.ModeMulti
		} else {
			a.mode = game.ModeSingle
		}
	case 'd', 'D':
		a.engine.SetDifficulty((a.engine.Difficulty + 1) % 3)
	case 't', 'T':
		a.engine.CycleTheme()
	case 'a', 'A':
		a.engine.SetAdaptiveAI(!a.engine.AdaptiveAI)
	case 'o', 'O':
		a.engine.SetPowerUpsEnabled(!a.engine.PowerUpsEnabled)
	case 'r', 'R':
		a.engine.SetSpawnRate((a.engine.SpawnRate + 1) % 3)
	case 'x', 'X':
		a.toggleSound()
	case 'n', 'N':
		a.engine.SetReducedMotion(!a.engine.ReducedMotion)
	}
}

func (a *App) handleGameKey(ev *tcell.EventKey) {
	switch ev.Rune() {
	case 'p', 'P':
		a.engine.TogglePause()
		return
	case 'm', 'M':
		a.engine.ReturnToMenu()
		a.fx.Reset()
		return
	case 'x', 'X':
		a.toggleSound()
		return
	}

	single := a.engine.Mode == game.ModeSingle
	if move, ok := ui.LeftPaddleKey(ev.Key(), ev.Rune(), single); ok {
		a.leftInput.Press(move)
	}
	if !single {
		if move, ok := ui.RightPaddleKey(ev.Key()); ok {
			a.rightInput.Press(move)
		}
	}
}

func (a *App) handleGameOverKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter {
		a.engine.Rematch()
		return
	}
	if ev.Rune() == 'm' || ev.Rune() == 'M' {
		a.engine.ReturnToMenu()
		a.fx.Reset()
	}
}

func (a *App) toggleSound() {
	if a.sound {
		a.sound = false
		return
	}
	if err := audio.Init(); err == nil {
		a.sound = true
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()
	if a.screen != nil {
		a.screen.Fini()
	}
	signal.Stop(a.sigChan)
}
