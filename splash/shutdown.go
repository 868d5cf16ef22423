package splash

// BootModeFunc reports the host boot mode, e.g. "boot" or "shutdown".
type BootModeFunc func() string

// ShutdownController handles the terminal quit event.
type ShutdownController struct {
	animation Sprite
	branding  SpriteGroup
	bootMode  BootModeFunc
}

func NewShutdownController(animation Sprite, branding SpriteGroup, bootMode BootModeFunc) *ShutdownController {
	return &ShutdownController{
		animation: animation,
		branding:  branding,
		bootMode:  bootMode,
	}
}

// OnQuit hides the animation. The branding sprites stay up through a
// normal startup-to-running transition but are hidden on a true
// shutdown. No further events are expected after this, though the
// process need not exit immediately.
func (s *ShutdownController) OnQuit() {
	s.animation.SetOpacity(0)
	if s.bootMode() == "shutdown" {
		s.branding.SetOpacity(0)
	}
}
