package systems

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"

	"github.com/spaghettifunk/litecraft/engine/assets/loaders"
	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

// FontManager parses fonts once and builds faces from them.
type FontManager struct {
	loader *loaders.FontLoader
	fonts  map[resources.Identifier]*sfnt.Font
}

func NewFontManager(loader *loaders.FontLoader) *FontManager {
	return &FontManager{
		loader: loader,
		fonts:  make(map[resources.Identifier]*sfnt.Font),
	}
}

func (fm *FontManager) Load(id resources.Identifier) error {
	if _, ok := fm.fonts[id]; ok {
		core.LogWarn("Font %s is already loaded!", id)
		return nil
	}
	f, err := fm.loader.Load(id)
	if err != nil {
		return err
	}
	fm.fonts[id] = f
	core.LogDebug("font %s loaded with %d glyphs", id, f.NumGlyphs())
	return nil
}

func (fm *FontManager) Get(id resources.Identifier) (*sfnt.Font, bool) {
	f, ok := fm.fonts[id]
	return f, ok
}

// Face returns a new face of a loaded font. The caller closes it.
func (fm *FontManager) Face(id resources.Identifier, size, dpi float64) (font.Face, error) {
	f, ok := fm.fonts[id]
	if !ok {
		return nil, fmt.Errorf("font %s is not loaded: %w", id, core.ErrNotFound)
	}
	return loaders.NewFace(f, size, dpi)
}

func (fm *FontManager) Count() int {
	return len(fm.fonts)
}
