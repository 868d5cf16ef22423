package splash

import (
	"math"
	"time"
)

// ProgressController renders the boot progress bar. The bar image is
// rescaled only when the rounded pixel width actually changes, and
// always from the original unscaled image so interpolation artifacts
// never compound.
type ProgressController struct {
	display Display
	sprite  Sprite
	bar     Image // original bar image, never rescaled in place

	lastWidth int
}

func NewProgressController(display Display, sprite Sprite, bar Image) *ProgressController {
	return &ProgressController{
		display: display,
		sprite:  sprite,
		bar:     bar,
	}
}

// OnBootProgress resizes the bar to fraction of its full width. The
// elapsed duration is part of the host contract but unused here;
// boot-duration bookkeeping lives with the host.
func (p *ProgressController) OnBootProgress(elapsed time.Duration, fraction float64) {
	if p.bar == nil {
		return
	}

	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	target := int(math.Round(fraction * float64(p.bar.Width())))
	if target == p.lastWidth {
		return
	}

	p.sprite.SetImage(p.display.ScaleImage(p.bar, target, p.bar.Height()))
	p.lastWidth = target
}
