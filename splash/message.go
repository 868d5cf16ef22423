package splash

import "image/color"

const zMessage = 10000

// MessageController owns the single status message line near the
// bottom of the window. Each message replaces the previous one.
type MessageController struct {
	display Display
	sprite  Sprite
	ratio   float64
}

func NewMessageController(display Display, sprite Sprite, ratio float64) *MessageController {
	return &MessageController{
		display: display,
		sprite:  sprite,
		ratio:   ratio,
	}
}

// OnMessage renders the text and re-centers the sprite. The position
// is recomputed on every call because the rendered width varies with
// the text.
func (m *MessageController) OnMessage(text string) {
	img := m.display.RenderText(text, color.White)
	m.sprite.SetImage(img)
	if img == nil {
		return
	}

	x := float64(m.display.WindowWidth()-img.Width()) / 2
	y := float64(m.display.WindowHeight()) * m.ratio
	m.sprite.SetPosition(x, y, zMessage)
}
