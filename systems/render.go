package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/nightglass/bootsplash/components"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawSprites composites every visible sprite slot onto the screen in
// z order. Slots with no bound image or zero opacity are skipped.
func DrawSprites(world donburi.World, screen *ebiten.Image) {
	var entries []*donburi.Entry
	components.SpriteSlot.Each(world, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	// Stable sort keeps creation order for equal z values, so slots
	// created later composite above their siblings.
	sort.SliceStable(entries, func(i, j int) bool {
		return components.SpriteSlot.Get(entries[i]).Z < components.SpriteSlot.Get(entries[j]).Z
	})

	for _, e := range entries {
		slot := components.SpriteSlot.Get(e)
		if slot.Image == nil || slot.Opacity <= 0 {
			continue
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(slot.X, slot.Y)
		drawOp.ColorScale.ScaleAlpha(float32(slot.Opacity))
		screen.DrawImage(slot.Image, drawOp)
	}
}
