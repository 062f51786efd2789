package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

func TestFontLoad(t *testing.T) {
	regular := resources.Litecraft("regular", resources.KindFont)
	broken := resources.Litecraft("broken", resources.KindFont)
	fl := NewFontLoader(memorySource{
		regular: goregular.TTF,
		broken:  []byte("not a font"),
	})

	f, err := fl.Load(regular)
	require.NoError(t, err)
	assert.Positive(t, f.NumGlyphs())

	face, err := NewFace(f, 12, 72)
	require.NoError(t, err)
	defer face.Close()
	assert.Positive(t, face.Metrics().Height.Ceil())

	_, err = fl.Load(broken)
	assert.ErrorIs(t, err, core.ErrDecode)

	_, err = fl.Load(resources.Litecraft("missing", resources.KindFont))
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = fl.Load(resources.Litecraft("regular", resources.KindTexture))
	assert.Error(t, err)
}
