package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 128}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func rgba(c color.NRGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

func TestDecodeReversesRows(t *testing.T) {
	id := resources.Litecraft("logo", resources.KindTexture)
	data := encodePNG(t, [][]color.NRGBA{
		{red, green},
		{blue, white},
	})
	tl, err := NewTextureLoader(memorySource{}, nil)
	require.NoError(t, err)

	img, err := tl.Decode(id, data, metadata.TextureTargetScene)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), img.Width)
	assert.Equal(t, uint32(2), img.Height)
	assert.False(t, img.Fallback)
	require.Len(t, img.Pixels, 2*2*4)
	// the last source row comes first
	assert.Equal(t, rgba(blue), img.PixelAt(0, 0))
	assert.Equal(t, rgba(white), img.PixelAt(1, 0))
	assert.Equal(t, rgba(red), img.PixelAt(0, 1))
	assert.Equal(t, rgba(green), img.PixelAt(1, 1))
}

func TestDecodeConvertsToNRGBA(t *testing.T) {
	id := resources.Minecraft("stone", resources.KindTexture)
	palette := color.Palette{color.NRGBA{R: 10, G: 20, B: 30, A: 255}, color.NRGBA{A: 0}}
	src := image.NewPaletted(image.Rect(0, 0, 3, 1), palette)
	src.SetColorIndex(1, 0, 1)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	tl, err := NewTextureLoader(memorySource{}, []string{"png"})
	require.NoError(t, err)

	img, err := tl.Decode(id, buf.Bytes(), metadata.TextureTargetUI)
	require.NoError(t, err)
	assert.Equal(t, metadata.TextureTargetUI, img.Target)
	assert.Equal(t, [4]uint8{10, 20, 30, 255}, img.PixelAt(0, 0))
	assert.Equal(t, uint8(0), img.PixelAt(1, 0)[3])
}

func TestDecodeFormatAllowList(t *testing.T) {
	id := resources.Minecraft("dirt", resources.KindTexture)
	var buf bytes.Buffer
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, bmp.Encode(&buf, src))

	pngOnly, err := NewTextureLoader(memorySource{}, nil)
	require.NoError(t, err)
	_, err = pngOnly.Decode(id, buf.Bytes(), metadata.TextureTargetScene)
	assert.ErrorIs(t, err, core.ErrDecode)

	withBMP, err := NewTextureLoader(memorySource{}, []string{"PNG", "bmp"})
	require.NoError(t, err)
	img, err := withBMP.Decode(id, buf.Bytes(), metadata.TextureTargetScene)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), img.Width)

	_, err = NewTextureLoader(memorySource{}, []string{"jpeg"})
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	id := resources.Minecraft("broken", resources.KindTexture)
	tl, err := NewTextureLoader(memorySource{}, nil)
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":         nil,
		"truncated png": []byte("\x89PNG\r\n\x1a\n\x00\x00"),
		"text as image": []byte("this is not an image"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tl.Decode(id, data, metadata.TextureTargetScene)
			assert.ErrorIs(t, err, core.ErrDecode)
		})
	}
}

func TestLoadFallsBack(t *testing.T) {
	logo := resources.Litecraft("logo", resources.KindTexture)
	corrupt := resources.Litecraft("corrupt", resources.KindTexture)
	source := memorySource{
		logo:    encodePNG(t, [][]color.NRGBA{{red}}),
		corrupt: []byte("\x89PNG garbage"),
	}
	tl, err := NewTextureLoader(source, nil)
	require.NoError(t, err)

	img, err := tl.Load(logo, metadata.TextureTargetScene)
	require.NoError(t, err)
	assert.False(t, img.Fallback)
	assert.Equal(t, rgba(red), img.PixelAt(0, 0))

	missing := resources.Litecraft("missing", resources.KindTexture)
	img, err = tl.Load(missing, metadata.TextureTargetUI)
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NotNil(t, img)
	assert.True(t, img.Fallback)
	assert.Equal(t, missing, img.ID)
	assert.Equal(t, metadata.TextureTargetUI, img.Target)
	assert.Equal(t, metadata.FallbackColorA, img.PixelAt(0, 0))
	assert.Equal(t, metadata.FallbackColorB, img.PixelAt(1, 0))

	img, err = tl.Load(corrupt, metadata.TextureTargetScene)
	assert.ErrorIs(t, err, core.ErrDecode)
	assert.True(t, img.Fallback)
	assert.Equal(t, uint32(16), img.Width)
}
