package loaders

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

type FontLoader struct {
	source Source
}

func NewFontLoader(source Source) *FontLoader {
	return &FontLoader{source: source}
}

// Load resolves and parses a TrueType or OpenType font.
func (fl *FontLoader) Load(id resources.Identifier) (*sfnt.Font, error) {
	if id.Kind != resources.KindFont {
		return nil, fmt.Errorf("%s is not a font", id)
	}
	data, err := fl.source.Resolve(id)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: %s: %w", id, err, core.ErrDecode)
	}
	return f, nil
}

// NewFace creates a face of the given point size, fully hinted.
func NewFace(f *sfnt.Font, size, dpi float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
