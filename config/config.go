package config

import (
	"encoding/json"
	"os"
)

// DialogConfig names the password dialog assets and places the dialog
// vertically as a ratio of window height.
type DialogConfig struct {
	Box    string  `json:"box"`
	Entry  string  `json:"entry"`
	Bullet string  `json:"bullet"`
	Lock   string  `json:"lock"`
	Ratio  float64 `json:"ratio"`
}

// ProgressionConfig names the progress bar assets and places the bar
// vertically as a ratio of window height.
type ProgressionConfig struct {
	Bar   string  `json:"bar"`
	Box   string  `json:"box"`
	Ratio float64 `json:"ratio"`
}

// AnimationConfig describes the logo animation frame sequence. Frames
// are individual images named FramePattern with indices 0..Frames-1.
type AnimationConfig struct {
	Frames       int    `json:"frames"`
	FramePattern string `json:"framePattern"`
}

// BrandingConfig names the static sprites shown outside password mode.
type BrandingConfig struct {
	Logo      string `json:"logo"`
	Watermark string `json:"watermark"`
}

// ThemeConfig contains everything the splash needs to find and place
// its assets. The zero-value fields are filled from Default.
type ThemeConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	AssetDir    string            `json:"source"`
	Animation   AnimationConfig   `json:"animation"`
	Dialog      DialogConfig      `json:"dialog"`
	Progression ProgressionConfig `json:"progression"`
	Branding    BrandingConfig    `json:"branding"`

	// MessageRatio places the status message line as a ratio of
	// window height.
	MessageRatio float64 `json:"messageRatio"`
}

// Default is the built-in theme configuration. A theme file only needs
// to override the fields it cares about.
var Default = ThemeConfig{
	Name:        "custom",
	Description: "A custom boot splash theme",
	AssetDir:    "./source",
	Animation: AnimationConfig{
		Frames:       25,
		FramePattern: "animation_frame_%d.png",
	},
	Dialog: DialogConfig{
		Box:    "box.png",
		Entry:  "entry.png",
		Bullet: "bullet.png",
		Lock:   "lock.png",
		Ratio:  0.6,
	},
	Progression: ProgressionConfig{
		Bar:   "progress_bar.png",
		Box:   "progress_box.png",
		Ratio: 0.6,
	},
	Branding: BrandingConfig{
		Logo:      "logo.png",
		Watermark: "watermark.png",
	},
	MessageRatio: 0.93,
}

// LoadTheme reads a theme JSON file and overlays it on Default.
// A missing file is not an error; the defaults are returned as-is.
func LoadTheme(path string) (ThemeConfig, error) {
	cfg := Default

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default, err
	}
	return cfg, nil
}
