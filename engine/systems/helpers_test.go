package systems

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/litecraft/engine/assets/loaders"
	"github.com/spaghettifunk/litecraft/engine/config"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

const (
	vertexSource   = "#version 140\nin vec2 position;\nvoid main() { gl_Position = vec4(position, 0.0, 1.0); }\n"
	fragmentSource = "#version 140\nout vec4 color;\nvoid main() { color = vec4(1.0); }\n"
)

// fixture is a scratch game folder with a loose resource tree and a pack folder.
type fixture struct {
	root        string
	packDir     string
	resourceDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	return &fixture{
		root:        root,
		packDir:     filepath.Join(root, "resourcepacks"),
		resourceDir: filepath.Join(root, "resources"),
	}
}

func (f *fixture) settings() *config.Settings {
	s := config.Default()
	s.Resources.PackDir = f.packDir
	s.Resources.ResourceDir = f.resourceDir
	s.Textures.Workers = 4
	return s
}

func (f *fixture) resolver(packs ...string) *resources.Resolver {
	return resources.NewResolver(f.packDir, f.resourceDir, packs)
}

func (f *fixture) write(t *testing.T, id resources.Identifier, data []byte) {
	t.Helper()
	path := id.Folder(f.resourceDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func (f *fixture) writePNG(t *testing.T, id resources.Identifier, width, height int, c color.NRGBA) {
	t.Helper()
	f.write(t, id, encodePNG(t, width, height, c))
}

func (f *fixture) writeShader(t *testing.T, name, subpath string) {
	t.Helper()
	f.write(t, resources.LitecraftPath(name, subpath, resources.KindVertexShader), []byte(vertexSource))
	f.write(t, resources.LitecraftPath(name, subpath, resources.KindFragmentShader), []byte(fragmentSource))
}

func (f *fixture) writePack(t *testing.T, name string, files map[resources.Identifier][]byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(f.packDir, 0o755))
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for id, data := range files {
		entry, err := w.Create(id.Folder(resources.PackRoot))
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(filepath.Join(f.packDir, name+".zip"), buf.Bytes(), 0o644))
}

func (f *fixture) textureManager(t *testing.T, cfg TextureManagerConfig) *TextureManager {
	t.Helper()
	tl, err := loaders.NewTextureLoader(f.resolver(), nil)
	require.NoError(t, err)
	tm, err := NewTextureManager(cfg, tl)
	require.NoError(t, err)
	t.Cleanup(func() { tm.Shutdown() })
	return tm
}

func encodePNG(t *testing.T, width, height int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// tickUntil calls tick on the test goroutine until done reports true.
func tickUntil(t *testing.T, tick func(), done func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !done() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached before the deadline")
		}
		tick()
		time.Sleep(time.Millisecond)
	}
}

// waitFor polls cond without ticking.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	tickUntil(t, func() {}, cond)
}
