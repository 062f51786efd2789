package systems

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer/headless"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

var drainAll = TextureManagerConfig{Workers: 4, UploadsPerTick: 0}

func tickTextures(t *testing.T, tm *TextureManager, backend *headless.Backend) func() {
	return func() {
		_, err := tm.Tick(backend)
		require.NoError(t, err)
	}
}

func TestTextureRequestUploads(t *testing.T) {
	f := newFixture(t)
	logo := resources.Litecraft("logo", resources.KindTexture)
	f.writePNG(t, logo, 4, 2, color.NRGBA{R: 200, A: 255})
	tm := f.textureManager(t, drainAll)
	backend := headless.New()

	tm.Request(logo)
	assert.Equal(t, 1, tm.Pending())
	assert.False(t, tm.Loaded())
	_, ok := tm.Get(logo)
	assert.False(t, ok)

	tickUntil(t, tickTextures(t, tm, backend), tm.Loaded)

	texture, ok := tm.Get(logo)
	require.True(t, ok)
	assert.NotZero(t, texture.Handle)
	assert.Equal(t, uint32(4), texture.Width)
	assert.Equal(t, uint32(2), texture.Height)
	assert.False(t, texture.Fallback)
	assert.Zero(t, tm.Pending())

	_, ok = tm.GetUI(logo)
	assert.False(t, ok)
}

func TestTextureMissingUsesFallback(t *testing.T) {
	f := newFixture(t)
	tm := f.textureManager(t, drainAll)
	backend := headless.New()
	missing := resources.Minecraft("missing", resources.KindTexture)

	tm.Request(missing)
	tickUntil(t, tickTextures(t, tm, backend), tm.Loaded)

	texture, ok := tm.Get(missing)
	require.True(t, ok)
	assert.True(t, texture.Fallback)
	assert.Equal(t, metadata.FALLBACK_TEXTURE_SIZE, texture.Width)

	pixels, ok := backend.Pixels(texture.Handle)
	require.True(t, ok)
	uploaded := &metadata.DecodedImage{Pixels: pixels, Width: texture.Width, Height: texture.Height}
	for y := uint32(0); y < texture.Height; y++ {
		for x := uint32(0); x < texture.Width; x++ {
			want := metadata.FallbackColorB
			if x%2 == y%2 {
				want = metadata.FallbackColorA
			}
			require.Equal(t, want, uploaded.PixelAt(x, y))
		}
	}
}

func TestTextureCorruptUsesFallback(t *testing.T) {
	f := newFixture(t)
	corrupt := resources.Minecraft("corrupt", resources.KindTexture)
	f.write(t, corrupt, []byte("\x89PNG\r\n\x1a\nnot really"))
	tm := f.textureManager(t, drainAll)
	backend := headless.New()

	tm.Request(corrupt)
	tickUntil(t, tickTextures(t, tm, backend), tm.Loaded)

	texture, ok := tm.Get(corrupt)
	require.True(t, ok)
	assert.True(t, texture.Fallback)
}

func TestTextureDuplicateRequests(t *testing.T) {
	f := newFixture(t)
	logo := resources.Litecraft("logo", resources.KindTexture)
	f.writePNG(t, logo, 1, 1, color.NRGBA{G: 255, A: 255})
	tm := f.textureManager(t, drainAll)
	backend := headless.New()

	tm.Request(logo)
	tm.Request(logo)
	assert.Equal(t, 1, tm.Pending())

	tickUntil(t, tickTextures(t, tm, backend), tm.Loaded)
	first, _ := tm.Get(logo)

	// resident textures are not loaded again
	tm.Request(logo)
	assert.Zero(t, tm.Pending())
	assert.True(t, tm.Loaded())
	again, _ := tm.Get(logo)
	assert.Same(t, first, again)
	assert.Equal(t, 1, backend.Textures())
}

func TestTextureUITable(t *testing.T) {
	f := newFixture(t)
	title := resources.MinecraftPath("minecraft", "gui/title", resources.KindTexture)
	f.writePNG(t, title, 8, 4, color.NRGBA{B: 255, A: 255})
	tm := f.textureManager(t, drainAll)
	backend := headless.New()

	tm.RequestUI(title)
	tm.Request(title)
	assert.Equal(t, 2, tm.Pending())
	tickUntil(t, tickTextures(t, tm, backend), tm.Loaded)

	ui, ok := tm.GetUI(title)
	require.True(t, ok)
	assert.Equal(t, title, ui.ID)
	assert.Equal(t, 8.0, ui.Width)
	assert.Equal(t, 4.0, ui.Height)

	scene, ok := tm.Get(title)
	require.True(t, ok)
	assert.NotEqual(t, scene.Handle, ui.Texture.Handle)
	assert.Equal(t, 2, tm.Count())
}

func TestTextureUploadsPerTick(t *testing.T) {
	f := newFixture(t)
	ids := make([]resources.Identifier, 3)
	for i := range ids {
		ids[i] = resources.Minecraft(fmt.Sprintf("block_%d", i), resources.KindTexture)
		f.writePNG(t, ids[i], 2, 2, color.NRGBA{R: uint8(i), A: 255})
	}
	tm := f.textureManager(t, TextureManagerConfig{Workers: 3, UploadsPerTick: 1})
	backend := headless.New()

	for _, id := range ids {
		tm.Request(id)
	}
	waitFor(t, func() bool { return tm.completed.Len() == len(ids) })

	for i := 1; i <= len(ids); i++ {
		applied, err := tm.Tick(backend)
		require.NoError(t, err)
		assert.Equal(t, 1, applied)
		assert.Equal(t, len(ids)-i, tm.Pending())
	}

	applied, err := tm.Tick(backend)
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.True(t, tm.Loaded())
}

func TestTextureDrainAll(t *testing.T) {
	f := newFixture(t)
	tm := f.textureManager(t, drainAll)
	backend := headless.New()

	const n = 25
	for i := 0; i < n; i++ {
		tm.Request(resources.Minecraft(fmt.Sprintf("missing_%d", i), resources.KindTexture))
	}
	assert.Equal(t, n, tm.Pending())
	waitFor(t, func() bool { return tm.completed.Len() == n })

	applied, err := tm.Tick(backend)
	require.NoError(t, err)
	assert.Equal(t, n, applied)
	assert.True(t, tm.Loaded())
	assert.Equal(t, n, tm.Count())
}

func TestTextureTickWithoutWork(t *testing.T) {
	f := newFixture(t)
	tm := f.textureManager(t, drainAll)

	applied, err := tm.Tick(headless.New())
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.True(t, tm.Loaded())
}

func TestTextureUploadFailure(t *testing.T) {
	f := newFixture(t)
	tm := f.textureManager(t, drainAll)
	// the 16x16 fallback does not fit
	backend := headless.New(headless.WithMaxTextureSize(8))
	missing := resources.Minecraft("missing", resources.KindTexture)

	tm.Request(missing)
	waitFor(t, func() bool { return tm.completed.Len() == 1 })

	_, err := tm.Tick(backend)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUpload)
	assert.Contains(t, err.Error(), missing.String())
	assert.False(t, tm.Loaded())
}

func TestTextureShutdown(t *testing.T) {
	f := newFixture(t)
	tm := f.textureManager(t, drainAll)

	require.NoError(t, tm.Shutdown())
	tm.Request(resources.Litecraft("logo", resources.KindTexture))
	assert.Zero(t, tm.Pending())
	assert.True(t, tm.Loaded())
}
