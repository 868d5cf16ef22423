package splash

import (
	"image/color"
	"log"

	"github.com/nightglass/bootsplash/config"
)

// DialogMode is the splash display mode reported by the host.
type DialogMode int

const (
	ModeNormal DialogMode = iota
	ModePassword
)

// Dialog z-order: the box composites above everything but the message
// line, lock and entry sit on the box, bullets sit on the entry.
const (
	zDialogBox    = 10000
	zDialogLock   = zDialogBox + 1
	zDialogEntry  = zDialogBox + 1
	zDialogPrompt = zDialogBox + 1
	zDialogBullet = zDialogEntry + 1
)

// bulletSlot is one password bullet position. Slots are created lazily
// as passwords grow and are only ever hidden afterwards, never
// destroyed, so a slot can be reused by any later password of equal or
// greater length.
type bulletSlot struct {
	sprite Sprite
	active bool
}

// DialogController owns the modal password dialog: box, lock icon,
// entry field, prompt text and bullet slots. The sprite group is built
// once, on the first call that needs it, and toggled by opacity from
// then on.
type DialogController struct {
	display  Display
	cfg      config.DialogConfig
	branding SpriteGroup

	mode        DialogMode
	constructed bool

	box    Sprite
	lock   Sprite
	entry  Sprite
	prompt Sprite

	bullets   []bulletSlot
	bulletImg Image

	// layout captured at construction, used to place the prompt and
	// bullet slots
	boxX, boxY float64
	boxW       int
	entryX     float64
	entryY     float64
	entryH     int
}

func NewDialogController(display Display, cfg config.DialogConfig, branding SpriteGroup) *DialogController {
	return &DialogController{
		display:  display,
		cfg:      cfg,
		branding: branding,
	}
}

// Mode reports the current display mode.
func (d *DialogController) Mode() DialogMode {
	return d.mode
}

// OnDisplayNormal hides the dialog. Before the first password request
// the dialog may not exist yet; there is nothing to hide then.
func (d *DialogController) OnDisplayNormal() {
	d.mode = ModeNormal
	if !d.constructed {
		return
	}
	d.setGroupOpacity(0)
}

// OnDisplayPassword shows the dialog with the given prompt and bullet
// count, building the sprite group first if this is the first request.
// The static branding sprites are hidden so the dialog never overlaps
// them.
func (d *DialogController) OnDisplayPassword(prompt string, bulletCount int) {
	if !d.constructed {
		d.construct()
	}
	d.mode = ModePassword

	d.setGroupOpacity(1)
	d.branding.SetOpacity(0)

	img := d.display.RenderText(prompt, color.White)
	d.prompt.SetImage(img)
	if img != nil {
		// Centered above the box; width varies with the prompt text.
		d.prompt.SetPosition(d.boxX+float64(d.boxW-img.Width())/2, d.boxY-float64(img.Height()), zDialogPrompt)
	}

	d.reconcileBullets(bulletCount)
}

// Preload builds the dialog during startup so the asset loads happen
// while the theme filesystem is still guaranteed available, then hides
// it until the first password request.
func (d *DialogController) Preload() {
	if d.constructed {
		return
	}
	d.construct()
	d.setGroupOpacity(0)
}

// construct loads the dialog assets and lays out the sprite group.
// Asset failures leave the affected sprite unbound; the layout falls
// back to zero sizes and the splash keeps running.
func (d *DialogController) construct() {
	d.constructed = true

	boxImg := d.loadImage(d.cfg.Box)
	lockImg := d.loadImage(d.cfg.Lock)
	entryImg := d.loadImage(d.cfg.Entry)
	d.bulletImg = d.loadImage(d.cfg.Bullet)

	winW := d.display.WindowWidth()
	winH := d.display.WindowHeight()

	boxW, boxH := imageSize(boxImg)
	lockW, lockH := imageSize(lockImg)
	entryW, entryH := imageSize(entryImg)

	d.boxW = boxW
	d.boxX = float64(winW-boxW) / 2
	d.boxY = float64(winH)*d.cfg.Ratio - float64(boxH)/2

	// The leftover horizontal space splits into three equal gaps:
	// before the lock, between lock and entry, and after the entry.
	gap := float64(boxW-lockW-entryW) / 3
	lockX := d.boxX + gap
	lockY := d.boxY + float64(boxH-lockH)/2
	d.entryX = lockX + float64(lockW) + gap
	d.entryY = d.boxY + float64(boxH-entryH)/2
	d.entryH = entryH

	d.box = d.newSprite(boxImg, d.boxX, d.boxY, zDialogBox)
	d.lock = d.newSprite(lockImg, lockX, lockY, zDialogLock)
	d.entry = d.newSprite(entryImg, d.entryX, d.entryY, zDialogEntry)
	d.prompt = d.display.NewSprite()
}

// reconcileBullets grows the slot arena to bulletCount and flips each
// slot active or inactive. Slots beyond the count are hidden, not
// removed. The loop stops at the first index with neither an existing
// slot nor a pending one; slots are dense and append-only, so that is
// exactly the larger of the two counts. A negative count degrades to
// hiding every existing slot.
func (d *DialogController) reconcileBullets(bulletCount int) {
	bulletW, bulletH := imageSize(d.bulletImg)

	for i := 0; i < len(d.bullets) || i < bulletCount; i++ {
		if i >= len(d.bullets) {
			x := d.entryX + float64(i*bulletW)
			y := d.entryY + float64(d.entryH-bulletH)/2
			d.bullets = append(d.bullets, bulletSlot{
				sprite: d.newSprite(d.bulletImg, x, y, zDialogBullet),
			})
		}

		slot := &d.bullets[i]
		slot.active = i < bulletCount
		if slot.active {
			slot.sprite.SetOpacity(1)
		} else {
			slot.sprite.SetOpacity(0)
		}
	}
}

// setGroupOpacity broadcasts one opacity to the whole dialog,
// including every existing bullet slot, active or not. Distinct from
// the per-slot toggling during password entry.
func (d *DialogController) setGroupOpacity(opacity float64) {
	SpriteGroup{d.box, d.lock, d.entry, d.prompt}.SetOpacity(opacity)
	for _, slot := range d.bullets {
		slot.sprite.SetOpacity(opacity)
	}
}

func (d *DialogController) loadImage(name string) Image {
	img, err := d.display.LoadImage(name)
	if err != nil {
		log.Printf("Warning: Could not load dialog asset %s: %v", name, err)
		return nil
	}
	return img
}

func (d *DialogController) newSprite(img Image, x, y float64, z int) Sprite {
	s := d.display.NewSprite()
	if img != nil {
		s.SetImage(img)
	}
	s.SetPosition(x, y, z)
	return s
}

func imageSize(img Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	return img.Width(), img.Height()
}
