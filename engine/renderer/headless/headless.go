// Package headless implements an in-memory renderer backend. It validates what
// it is given the way a driver would and hands out handles, without a GPU.
package headless

import (
	"fmt"
	"regexp"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
)

var mainFunction = regexp.MustCompile(`\bvoid\s+main\s*\(`)

type Option func(*Backend)

// WithMaxTextureSize makes uploads wider or taller than size fail. Zero disables the check.
func WithMaxTextureSize(size uint32) Option {
	return func(b *Backend) {
		b.maxTextureSize = size
	}
}

// Backend keeps every uploaded texture and linked program in memory.
type Backend struct {
	maxTextureSize uint32
	nextHandle     uint32
	textures       map[uint32][]uint8
	programs       map[string]*metadata.Program
}

func New(opts ...Option) *Backend {
	b := &Backend{
		nextHandle: 1,
		textures:   make(map[uint32][]uint8),
		programs:   make(map[string]*metadata.Program),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) TextureCreate(img *metadata.DecodedImage) (*metadata.Texture, error) {
	if img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("texture %s has no pixels", img.ID)
	}
	if b.maxTextureSize > 0 && (img.Width > b.maxTextureSize || img.Height > b.maxTextureSize) {
		return nil, fmt.Errorf("texture %s is %dx%d, the maximum size is %d", img.ID, img.Width, img.Height, b.maxTextureSize)
	}
	expected := int(img.Width) * int(img.Height) * metadata.ImageChannelCount
	if len(img.Pixels) != expected {
		return nil, fmt.Errorf("texture %s has %d bytes of pixel data, expected %d", img.ID, len(img.Pixels), expected)
	}

	handle := b.handle()
	b.textures[handle] = append([]uint8(nil), img.Pixels...)
	core.LogDebug("headless: texture %s uploaded as %d (%dx%d)", img.ID, handle, img.Width, img.Height)

	return &metadata.Texture{
		Handle:   handle,
		Width:    img.Width,
		Height:   img.Height,
		Fallback: img.Fallback,
	}, nil
}

func (b *Backend) ShaderCreate(name string, sources []metadata.ShaderSource) (*metadata.Program, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("shader %s has no sources", name)
	}
	for _, src := range sources {
		if !mainFunction.MatchString(src.Vertex) {
			return nil, fmt.Errorf("shader %s: GLSL %d vertex stage has no main function", name, src.Version)
		}
		if !mainFunction.MatchString(src.Fragment) {
			return nil, fmt.Errorf("shader %s: GLSL %d fragment stage has no main function", name, src.Version)
		}
	}

	program := &metadata.Program{
		Name:    name,
		Handle:  b.handle(),
		Sources: append([]metadata.ShaderSource(nil), sources...),
	}
	b.programs[name] = program
	return program, nil
}

// Pixels returns the data uploaded for the texture handle.
func (b *Backend) Pixels(handle uint32) ([]uint8, bool) {
	px, ok := b.textures[handle]
	return px, ok
}

// Program returns the program linked under name.
func (b *Backend) Program(name string) (*metadata.Program, bool) {
	p, ok := b.programs[name]
	return p, ok
}

// Textures returns how many textures were uploaded.
func (b *Backend) Textures() int {
	return len(b.textures)
}

func (b *Backend) handle() uint32 {
	h := b.nextHandle
	b.nextHandle++
	return h
}
