package renderer

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/litecraft/engine/renderer/headless"
)

type RendererType uint8

const (
	Headless RendererType = iota
	Vulkan
	OpenGL
)

func (t RendererType) String() string {
	switch t {
	case Headless:
		return "headless"
	case Vulkan:
		return "vulkan"
	case OpenGL:
		return "opengl"
	default:
		return fmt.Sprintf("renderer(%d)", uint8(t))
	}
}

func ParseRendererType(name string) (RendererType, error) {
	for _, t := range []RendererType{Headless, Vulkan, OpenGL} {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown renderer %q", name)
}

// Options configures the backend built by New.
type Options struct {
	// MaxTextureSize limits the side of uploaded textures, 0 means unlimited.
	MaxTextureSize uint32
}

// New creates the backend of the given type. Only the headless backend ships
// with the engine, windowed backends are provided by the embedding application.
func New(t RendererType, opts Options) (Backend, error) {
	switch t {
	case Headless:
		return headless.New(headless.WithMaxTextureSize(opts.MaxTextureSize)), nil
	default:
		return nil, fmt.Errorf("renderer %s is not available in this build", t)
	}
}
