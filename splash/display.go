package splash

import "image/color"

// Image is an opaque handle to a loaded or rendered image.
type Image interface {
	Width() int
	Height() int
}

// Sprite is one compositing slot on the splash surface: a positioned,
// z-ordered, opacity-controlled binding to a single image. Controllers
// mutate sprites; they never draw.
type Sprite interface {
	SetImage(img Image)
	SetPosition(x, y float64, z int)
	SetOpacity(opacity float64)
}

// Display is the rendering backend the controllers run against. The
// ebiten implementation lives in the display package; tests substitute
// a recording fake.
type Display interface {
	// LoadImage loads a theme asset by name. A missing or corrupt
	// asset is an error; the caller leaves the sprite unbound.
	LoadImage(name string) (Image, error)

	// ScaleImage produces a copy of img scaled to the given pixel
	// size. Non-positive dimensions yield a nil image.
	ScaleImage(img Image, width, height int) Image

	// RenderText renders a line of text to a new image.
	RenderText(text string, clr color.Color) Image

	// NewSprite creates a sprite slot, fully visible, with no image
	// bound.
	NewSprite() Sprite

	WindowWidth() int
	WindowHeight() int
}
