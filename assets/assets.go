package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Store loads theme images from a directory and caches them by name.
// Boot themes are read-only after packaging, so entries are never
// evicted.
type Store struct {
	dir   string
	cache map[string]*ebiten.Image
}

func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage returns the image for a theme asset name. Asset loading is
// best-effort during boot: callers are expected to log and leave the
// affected sprite unbound rather than fail the splash.
func (s *Store) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := s.cache[name]; ok {
		return img, nil
	}

	imgBytes, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read image file %s: %w", name, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}

	s.cache[name] = img
	return img, nil
}
