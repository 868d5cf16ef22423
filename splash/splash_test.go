package splash

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/nightglass/bootsplash/config"
)

// fakeImage, fakeSprite and fakeDisplay record every backend call so
// the controller tests can assert on bindings, rescales and layout
// without a real compositor.

type fakeImage struct {
	w, h int
}

func (f *fakeImage) Width() int  { return f.w }
func (f *fakeImage) Height() int { return f.h }

type fakeSprite struct {
	image   Image
	x, y    float64
	z       int
	opacity float64
	binds   int
}

func (s *fakeSprite) SetImage(img Image) {
	s.image = img
	s.binds++
}

func (s *fakeSprite) SetPosition(x, y float64, z int) {
	s.x = x
	s.y = y
	s.z = z
}

func (s *fakeSprite) SetOpacity(opacity float64) {
	s.opacity = opacity
}

type scaleCall struct {
	src  Image
	w, h int
}

type fakeDisplay struct {
	winW, winH int
	images     map[string]*fakeImage
	sprites    []*fakeSprite
	scales     []scaleCall
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		winW:   1000,
		winH:   600,
		images: map[string]*fakeImage{},
	}
}

func (d *fakeDisplay) LoadImage(name string) (Image, error) {
	img, ok := d.images[name]
	if !ok {
		return nil, fmt.Errorf("no such asset %s", name)
	}
	return img, nil
}

func (d *fakeDisplay) ScaleImage(img Image, width, height int) Image {
	d.scales = append(d.scales, scaleCall{src: img, w: width, h: height})
	if width <= 0 || height <= 0 {
		return nil
	}
	return &fakeImage{w: width, h: height}
}

// RenderText sizes text at 8px per rune, 16px tall, so tests can
// predict centering arithmetic.
func (d *fakeDisplay) RenderText(text string, clr color.Color) Image {
	return &fakeImage{w: 8 * len([]rune(text)), h: 16}
}

func (d *fakeDisplay) NewSprite() Sprite {
	s := &fakeSprite{opacity: 1}
	d.sprites = append(d.sprites, s)
	return s
}

func (d *fakeDisplay) WindowWidth() int  { return d.winW }
func (d *fakeDisplay) WindowHeight() int { return d.winH }

// fullTheme returns a display stocked with every asset the default
// theme names, plus the matching config.
func fullTheme(frames int) (*fakeDisplay, config.ThemeConfig) {
	d := newFakeDisplay()
	d.images["logo.png"] = &fakeImage{w: 200, h: 80}
	d.images["watermark.png"] = &fakeImage{w: 64, h: 24}
	d.images["box.png"] = &fakeImage{w: 400, h: 100}
	d.images["lock.png"] = &fakeImage{w: 40, h: 40}
	d.images["entry.png"] = &fakeImage{w: 240, h: 40}
	d.images["bullet.png"] = &fakeImage{w: 20, h: 20}
	d.images["progress_bar.png"] = &fakeImage{w: 200, h: 10}
	d.images["progress_box.png"] = &fakeImage{w: 220, h: 20}
	for i := 0; i < frames; i++ {
		d.images[fmt.Sprintf("animation_frame_%d.png", i)] = &fakeImage{w: 120, h: 120}
	}

	cfg := config.Default
	cfg.Animation.Frames = frames
	return d, cfg
}

// TestNewBuildsHiddenDialog verifies the dialog is constructed eagerly
// at startup but stays invisible until a password request arrives.
func TestNewBuildsHiddenDialog(t *testing.T) {
	d, cfg := fullTheme(2)
	s := New(d, cfg, func() string { return "boot" })

	// logo, watermark, animation, progress box, bar, dialog
	// box/lock/entry/prompt, message
	if got, want := len(d.sprites), 10; got != want {
		t.Fatalf("Expected %d sprites after startup, got %d", want, got)
	}

	for i, sp := range d.sprites {
		if sp.z >= zDialogBox && sp.opacity != 0 {
			t.Errorf("Dialog sprite %d visible before password request (opacity=%v)", i, sp.opacity)
		}
	}

	// A later password request must not construct a second group.
	s.OnDisplayPassword("Password:", 2)
	if got, want := len(d.sprites), 12; got != want {
		t.Errorf("Expected %d sprites after 2-bullet password (2 new slots), got %d", want, got)
	}
}

// TestSplashHandlerSurface runs one of each event through the wired
// splash to make sure every handler reaches its controller.
func TestSplashHandlerSurface(t *testing.T) {
	d, cfg := fullTheme(4)
	mode := "boot"
	s := New(d, cfg, func() string { return mode })

	s.OnRefreshTick()
	s.OnBootProgress(0, 0.5)
	if len(d.scales) != 1 || d.scales[0].w != 100 {
		t.Errorf("Expected one 100px rescale after 0.5 progress, got %+v", d.scales)
	}

	s.OnDisplayPassword("Password:", 3)
	if s.Mode() != ModePassword {
		t.Errorf("Expected password mode, got %v", s.Mode())
	}
	s.OnDisplayNormal()
	if s.Mode() != ModeNormal {
		t.Errorf("Expected normal mode, got %v", s.Mode())
	}

	s.OnMessage("Starting services...")

	mode = "shutdown"
	s.OnQuit()
	for i, sp := range d.sprites[:2] { // logo, watermark
		if sp.opacity != 0 {
			t.Errorf("Branding sprite %d still visible after shutdown quit", i)
		}
	}
}

func TestSpriteGroupBroadcast(t *testing.T) {
	a := &fakeSprite{opacity: 1}
	b := &fakeSprite{opacity: 1}
	SpriteGroup{a, b}.SetOpacity(0.5)
	if a.opacity != 0.5 || b.opacity != 0.5 {
		t.Errorf("Expected both sprites at 0.5, got %v and %v", a.opacity, b.opacity)
	}
}
