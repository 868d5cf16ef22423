package splash

import "testing"

// TestQuitDuringStartup hides only the animation; branding stays up
// through the startup-to-running transition.
func TestQuitDuringStartup(t *testing.T) {
	anim := &fakeSprite{opacity: 1}
	logo := &fakeSprite{opacity: 1}
	watermark := &fakeSprite{opacity: 1}
	s := NewShutdownController(anim, SpriteGroup{logo, watermark}, func() string { return "boot" })

	s.OnQuit()

	if anim.opacity != 0 {
		t.Errorf("Animation still visible after quit")
	}
	if logo.opacity != 1 || watermark.opacity != 1 {
		t.Errorf("Branding hidden on a non-shutdown quit: logo=%v watermark=%v", logo.opacity, watermark.opacity)
	}
}

// TestQuitDuringShutdown hides the animation and the branding group.
func TestQuitDuringShutdown(t *testing.T) {
	anim := &fakeSprite{opacity: 1}
	logo := &fakeSprite{opacity: 1}
	watermark := &fakeSprite{opacity: 1}
	s := NewShutdownController(anim, SpriteGroup{logo, watermark}, func() string { return "shutdown" })

	s.OnQuit()

	if anim.opacity != 0 || logo.opacity != 0 || watermark.opacity != 0 {
		t.Errorf("Expected everything hidden on shutdown quit: anim=%v logo=%v watermark=%v",
			anim.opacity, logo.opacity, watermark.opacity)
	}
}
