package main

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/nightglass/bootsplash/assets"
	"github.com/nightglass/bootsplash/boottime"
	cfg "github.com/nightglass/bootsplash/config"
	"github.com/nightglass/bootsplash/display"
	"github.com/nightglass/bootsplash/fonts"
	"github.com/nightglass/bootsplash/host"
	"github.com/nightglass/bootsplash/splash"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

// Game is the demo host: it stands in for the boot manager, feeding
// the splash a refresh tick per frame, a simulated boot progression,
// and keyboard-driven password/message/quit events.
//
//	P      open the password dialog (type to add bullets, backspace
//	       to remove, Esc to return to normal display)
//	M      show a status message
//	Q      quit event (ends the simulated boot)
type Game struct {
	loop    *host.Loop
	display *display.Display

	start    time.Time
	progress *gween.Tween
	booted   bool
	quit     bool

	passwordMode bool
	entered      []rune
	inputChars   []rune
}

func (g *Game) Update() error {
	g.loop.Post(host.Event{Type: host.EventRefreshTick})

	if !g.quit && !g.booted {
		fraction, done := g.progress.Update(1.0 / 60.0)
		g.loop.Post(host.Event{
			Type:     host.EventBootProgress,
			Elapsed:  time.Since(g.start),
			Fraction: float64(fraction),
		})
		if done {
			g.booted = true
			g.loop.Post(host.Event{Type: host.EventMessage, Text: "Boot complete"})
			_ = boottime.SaveRecord(&boottime.Record{BootSeconds: time.Since(g.start).Seconds()})
		}
	}

	g.handleKeys()
	g.loop.Dispatch()
	return nil
}

func (g *Game) handleKeys() {
	if g.passwordMode {
		g.inputChars = ebiten.AppendInputChars(g.inputChars[:0])
		changed := false
		for _, r := range g.inputChars {
			g.entered = append(g.entered, r)
			changed = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.entered) > 0 {
			g.entered = g.entered[:len(g.entered)-1]
			changed = true
		}
		if changed {
			g.loop.Post(host.Event{
				Type:    host.EventDisplayPassword,
				Prompt:  "Password:",
				Bullets: len(g.entered),
			})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.passwordMode = false
			g.entered = g.entered[:0]
			g.loop.Post(host.Event{Type: host.EventDisplayNormal})
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.passwordMode = true
		g.loop.Post(host.Event{
			Type:    host.EventDisplayPassword,
			Prompt:  "Password:",
			Bullets: 0,
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.loop.Post(host.Event{Type: host.EventMessage, Text: "Starting services..."})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && !g.quit {
		g.quit = true
		g.loop.Post(host.Event{Type: host.EventQuit})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.display.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return windowWidth, windowHeight
}

func main() {
	theme, err := cfg.LoadTheme("theme.json")
	if err != nil {
		log.Printf("Warning: Could not load theme file: %v", err)
	}

	// The boot mode would normally come from the boot manager; the
	// demo takes it from the command line ("shutdown" hides the
	// branding on quit).
	bootMode := "boot"
	if len(os.Args) > 1 {
		bootMode = os.Args[1]
	}

	fonts.LoadDefaults()

	if err := boottime.InitPersistence(theme.Name); err != nil {
		log.Printf("Warning: Could not initialize boot record storage: %v", err)
	}
	rec, _ := boottime.LoadRecord()
	estimator := boottime.NewEstimator(rec)

	d := display.New(assets.NewStore(theme.AssetDir), windowWidth, windowHeight, fonts.Prompt.Get())
	s := splash.New(d, theme, func() string { return bootMode })

	game := &Game{
		loop:     host.NewLoop(s),
		display:  d,
		start:    time.Now(),
		progress: gween.New(0, 1, float32(estimator.Expected().Seconds()), ease.OutCubic),
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(theme.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
