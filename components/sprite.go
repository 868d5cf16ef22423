package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteSlotData is one positioned, z-ordered, opacity-controlled
// display slot. Image may be nil if the slot's asset never loaded; the
// renderer skips such slots.
type SpriteSlotData struct {
	Image   *ebiten.Image
	X       float64
	Y       float64
	Z       int
	Opacity float64
}

var SpriteSlot = donburi.NewComponentType[SpriteSlotData]()
