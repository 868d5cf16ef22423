package splash

import (
	"fmt"
	"log"
	"time"

	"github.com/nightglass/bootsplash/config"
)

// Branding and progress z-order. Everything here composites below the
// dialog and message layers.
const (
	zProgressBox = 1
	zProgressBar = 2
	zBranding    = 99
	zAnimation   = 100
)

// watermarkMargin is the distance of the watermark from the bottom
// right window corner.
const watermarkMargin = 20

// Splash wires the controllers to one display and exposes the handler
// surface the host dispatches into. Construct it once, before event
// dispatch begins; all handlers assume the single-active-callback
// model and hold no locks.
type Splash struct {
	animation *AnimationController
	progress  *ProgressController
	dialog    *DialogController
	message   *MessageController
	shutdown  *ShutdownController
}

// New builds the full sprite set for the theme. Missing assets are
// logged and leave their sprite unbound; the splash still runs with
// whatever loaded.
func New(display Display, cfg config.ThemeConfig, bootMode BootModeFunc) *Splash {
	winW := display.WindowWidth()
	winH := display.WindowHeight()

	// Static branding: logo centered behind the animation, watermark
	// in the bottom right corner.
	logo := display.NewSprite()
	if img := loadImage(display, cfg.Branding.Logo); img != nil {
		logo.SetImage(img)
		logo.SetPosition(float64(winW-img.Width())/2, float64(winH-img.Height())/2, zBranding)
	}
	watermark := display.NewSprite()
	if img := loadImage(display, cfg.Branding.Watermark); img != nil {
		watermark.SetImage(img)
		watermark.SetPosition(float64(winW-img.Width()-watermarkMargin), float64(winH-img.Height()-watermarkMargin), zBranding)
	}
	branding := SpriteGroup{logo, watermark}

	// Animation frames form a dense sequence; stop at the first gap.
	frames := make([]Image, 0, cfg.Animation.Frames)
	for i := 0; i < cfg.Animation.Frames; i++ {
		img, err := display.LoadImage(fmt.Sprintf(cfg.Animation.FramePattern, i))
		if err != nil {
			log.Printf("Warning: Could not load animation frame %d: %v", i, err)
			break
		}
		frames = append(frames, img)
	}
	animSprite := display.NewSprite()
	if len(frames) > 0 {
		animSprite.SetPosition(float64(winW-frames[0].Width())/2, float64(winH-frames[0].Height())/2, zAnimation)
	}

	// Progress bar over its static box, both centered at the
	// progression ratio. The bar keeps its full-width rest position;
	// rescaling grows it from the left edge.
	boxImg := loadImage(display, cfg.Progression.Box)
	barImg := loadImage(display, cfg.Progression.Bar)
	boxW, boxH := imageSize(boxImg)
	boxX := float64(winW-boxW) / 2
	boxY := float64(winH)*cfg.Progression.Ratio - float64(boxH)/2
	progressBox := display.NewSprite()
	if boxImg != nil {
		progressBox.SetImage(boxImg)
		progressBox.SetPosition(boxX, boxY, zProgressBox)
	}
	barSprite := display.NewSprite()
	if barImg != nil {
		barW, barH := imageSize(barImg)
		barSprite.SetPosition(float64(winW-barW)/2, float64(winH)*cfg.Progression.Ratio-float64(barH)/2, zProgressBar)
	}

	s := &Splash{
		animation: NewAnimationController(animSprite, frames),
		progress:  NewProgressController(display, barSprite, barImg),
		dialog:    NewDialogController(display, cfg.Dialog, branding),
		message:   NewMessageController(display, display.NewSprite(), cfg.MessageRatio),
		shutdown:  NewShutdownController(animSprite, branding, bootMode),
	}

	// Build the dialog now, while the theme filesystem is guaranteed
	// available. It stays hidden until the first password request.
	s.dialog.Preload()

	return s
}

func (s *Splash) OnRefreshTick() {
	s.animation.OnRefreshTick()
}

func (s *Splash) OnBootProgress(elapsed time.Duration, fraction float64) {
	s.progress.OnBootProgress(elapsed, fraction)
}

func (s *Splash) OnDisplayNormal() {
	s.dialog.OnDisplayNormal()
}

func (s *Splash) OnDisplayPassword(prompt string, bulletCount int) {
	s.dialog.OnDisplayPassword(prompt, bulletCount)
}

func (s *Splash) OnMessage(text string) {
	s.message.OnMessage(text)
}

func (s *Splash) OnQuit() {
	s.shutdown.OnQuit()
}

// Mode reports the current dialog display mode.
func (s *Splash) Mode() DialogMode {
	return s.dialog.Mode()
}

func loadImage(display Display, name string) Image {
	img, err := display.LoadImage(name)
	if err != nil {
		log.Printf("Warning: Could not load theme asset %s: %v", name, err)
		return nil
	}
	return img
}
