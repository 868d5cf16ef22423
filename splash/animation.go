package splash

// ticksPerFrame slows the animation to one frame advance per three
// refresh ticks, decoupling playback speed from the host tick rate.
const ticksPerFrame = 3

// AnimationController advances the logo animation. The tick counter
// grows without bound; the frame index is reduced modulo the frame
// count at read time.
type AnimationController struct {
	sprite Sprite
	frames []Image
	tick   int
}

func NewAnimationController(sprite Sprite, frames []Image) *AnimationController {
	return &AnimationController{
		sprite: sprite,
		frames: frames,
	}
}

// OnRefreshTick binds the current frame to the animation sprite and
// advances the tick counter.
func (a *AnimationController) OnRefreshTick() {
	if len(a.frames) > 0 {
		a.sprite.SetImage(a.frames[(a.tick/ticksPerFrame)%len(a.frames)])
	}
	a.tick++
}
