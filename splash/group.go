package splash

// SpriteGroup is a set of sprites manipulated as one logical object.
type SpriteGroup []Sprite

// SetOpacity broadcasts one opacity value to every sprite in the group.
func (g SpriteGroup) SetOpacity(opacity float64) {
	for _, s := range g {
		s.SetOpacity(opacity)
	}
}
