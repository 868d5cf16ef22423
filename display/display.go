// Package display implements the splash rendering backend on ebiten.
// Sprites are donburi entities carrying a SpriteSlot component; the
// render system composites them in z order each frame.
package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"

	"github.com/nightglass/bootsplash/assets"
	"github.com/nightglass/bootsplash/components"
	"github.com/nightglass/bootsplash/splash"
	"github.com/nightglass/bootsplash/systems"
)

type Display struct {
	world donburi.World
	store *assets.Store
	face  font.Face

	winW int
	winH int
}

func New(store *assets.Store, winW, winH int, face font.Face) *Display {
	return &Display{
		world: donburi.NewWorld(),
		store: store,
		face:  face,
		winW:  winW,
		winH:  winH,
	}
}

// LoadImage loads a theme asset through the store cache.
func (d *Display) LoadImage(name string) (splash.Image, error) {
	img, err := d.store.LoadImage(name)
	if err != nil {
		return nil, err
	}
	return &imageHandle{img: img}, nil
}

// ScaleImage scales img to the given pixel size. The source image is
// left untouched. Non-positive target dimensions yield a nil image,
// which unbinds the sprite it is assigned to.
func (d *Display) ScaleImage(img splash.Image, width, height int) splash.Image {
	if img == nil || width <= 0 || height <= 0 {
		return nil
	}

	src := img.(*imageHandle).img
	out := ebiten.NewImage(width, height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(img.Width()), float64(height)/float64(img.Height()))
	out.DrawImage(src, op)

	return &imageHandle{img: out}
}

// RenderText renders one line of text to a fresh image.
func (d *Display) RenderText(s string, clr color.Color) splash.Image {
	bounds := text.BoundString(d.face, s) //nolint:staticcheck // TODO: migrate to text/v2
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := ebiten.NewImage(w, h)
	text.Draw(img, s, d.face, -bounds.Min.X, -bounds.Min.Y, clr)

	return &imageHandle{img: img}
}

// NewSprite creates a sprite slot entity, fully visible with no image.
func (d *Display) NewSprite() splash.Sprite {
	entry := d.world.Entry(d.world.Create(components.SpriteSlot))
	components.SpriteSlot.SetValue(entry, components.SpriteSlotData{
		Opacity: 1,
	})
	return &spriteHandle{entry: entry}
}

func (d *Display) WindowWidth() int {
	return d.winW
}

func (d *Display) WindowHeight() int {
	return d.winH
}

// Draw composites all sprite slots onto the screen.
func (d *Display) Draw(screen *ebiten.Image) {
	systems.DrawSprites(d.world, screen)
}

type imageHandle struct {
	img *ebiten.Image
}

func (i *imageHandle) Width() int {
	return i.img.Bounds().Dx()
}

func (i *imageHandle) Height() int {
	return i.img.Bounds().Dy()
}

type spriteHandle struct {
	entry *donburi.Entry
}

func (s *spriteHandle) SetImage(img splash.Image) {
	slot := components.SpriteSlot.Get(s.entry)
	if img == nil {
		slot.Image = nil
		return
	}
	slot.Image = img.(*imageHandle).img
}

func (s *spriteHandle) SetPosition(x, y float64, z int) {
	slot := components.SpriteSlot.Get(s.entry)
	slot.X = x
	slot.Y = y
	slot.Z = z
}

func (s *spriteHandle) SetOpacity(opacity float64) {
	slot := components.SpriteSlot.Get(s.entry)
	slot.Opacity = opacity
}
