package splash

import "testing"

// TestAnimationFrameSelection checks frame index = (tick/3) mod count
// for every tick, across several full cycles.
func TestAnimationFrameSelection(t *testing.T) {
	frames := []Image{
		&fakeImage{w: 1, h: 1},
		&fakeImage{w: 2, h: 2},
		&fakeImage{w: 3, h: 3},
		&fakeImage{w: 4, h: 4},
	}
	sprite := &fakeSprite{}
	a := NewAnimationController(sprite, frames)

	for tick := 0; tick < 60; tick++ {
		a.OnRefreshTick()
		want := frames[(tick/3)%len(frames)]
		if sprite.image != want {
			t.Fatalf("Tick %d: bound frame %v, want %v", tick, sprite.image, want)
		}
	}

	if sprite.binds != 60 {
		t.Errorf("Expected exactly one binding per tick, got %d for 60 ticks", sprite.binds)
	}
}

// TestAnimationWithoutFrames makes sure a theme with no loadable
// frames ticks without binding or panicking.
func TestAnimationWithoutFrames(t *testing.T) {
	sprite := &fakeSprite{}
	a := NewAnimationController(sprite, nil)

	for i := 0; i < 10; i++ {
		a.OnRefreshTick()
	}

	if sprite.binds != 0 {
		t.Errorf("Expected no bindings without frames, got %d", sprite.binds)
	}
}
