package loaders

import (
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

// ShaderTier is one GLSL flavour of a program. Its sources live under
// shaders/<Subpath>/ of the namespace, or directly under shaders/ when
// Subpath is empty.
type ShaderTier struct {
	Version uint16
	Subpath string
}

// DefaultShaderTiers is the core profile first, then the GLSL 140 sources.
var DefaultShaderTiers = []ShaderTier{
	{Version: 330, Subpath: "core"},
	{Version: metadata.DefaultShaderVersion, Subpath: ""},
}

type ShaderLoader struct {
	source Source
}

func NewShaderLoader(source Source) *ShaderLoader {
	return &ShaderLoader{source: source}
}

// Load reads the vertex and fragment sources of one tier of the named program.
func (sl *ShaderLoader) Load(namespace, name string, tier ShaderTier) (metadata.ShaderSource, error) {
	vertex, err := sl.source.LoadText(resources.WithPath(namespace, name, tier.Subpath, resources.KindVertexShader))
	if err != nil {
		return metadata.ShaderSource{}, err
	}
	fragment, err := sl.source.LoadText(resources.WithPath(namespace, name, tier.Subpath, resources.KindFragmentShader))
	if err != nil {
		return metadata.ShaderSource{}, err
	}
	return metadata.ShaderSource{
		Version:  tier.Version,
		Vertex:   vertex,
		Fragment: fragment,
	}, nil
}
