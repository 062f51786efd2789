package scenes

import (
	"fmt"

	"github.com/spaghettifunk/litecraft/engine/renderer"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

// Kind names a scene of the game.
type Kind int

const (
	// KindLoading shows the logo while the first assets load.
	KindLoading Kind = iota
	// KindMainMenu is the title screen.
	KindMainMenu
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindMainMenu:
		return "main_menu"
	default:
		return fmt.Sprintf("scene(%d)", int(k))
	}
}

// Next returns the scene shown once k is done, false when k is the last one.
func (k Kind) Next() (Kind, bool) {
	switch k {
	case KindLoading:
		return KindMainMenu, true
	default:
		return k, false
	}
}

// Resources is what scenes need from the resource manager.
type Resources interface {
	LoadTexture(id resources.Identifier)
	LoadUITexture(id resources.Identifier)
	LoadShader(name string, backend renderer.Backend) error
	Loaded() bool
}

// Assets lists what a scene requests when it starts loading.
type Assets struct {
	Textures   []resources.Identifier
	UITextures []resources.Identifier
	Shaders    []string
}

// Assets returns the assets requested by the scene.
func (k Kind) Assets() Assets {
	switch k {
	case KindLoading:
		return Assets{
			Textures: []resources.Identifier{resources.Litecraft("logo", resources.KindTexture)},
			Shaders:  []string{"noise", "quad", "logo"},
		}
	case KindMainMenu:
		return Assets{
			UITextures: []resources.Identifier{
				resources.MinecraftPath("minecraft", "gui/title", resources.KindTexture),
				resources.MinecraftPath("options_background", "gui", resources.KindTexture),
			},
		}
	default:
		return Assets{}
	}
}

func (a Assets) request(res Resources, backend renderer.Backend) error {
	for _, id := range a.Textures {
		res.LoadTexture(id)
	}
	for _, id := range a.UITextures {
		res.LoadUITexture(id)
	}
	for _, name := range a.Shaders {
		if err := res.LoadShader(name, backend); err != nil {
			return err
		}
	}
	return nil
}
