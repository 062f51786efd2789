package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

func TestShaderLoad(t *testing.T) {
	source := memorySource{
		resources.LitecraftPath("quad", "core", resources.KindVertexShader):   []byte("#version 330 core\nvoid main() {}"),
		resources.LitecraftPath("quad", "core", resources.KindFragmentShader): []byte("#version 330 core\nout vec4 c;\nvoid main() {}"),
		resources.Litecraft("quad", resources.KindVertexShader):               []byte("#version 140\nvoid main() {}"),
	}
	sl := NewShaderLoader(source)

	src, err := sl.Load(resources.NamespaceLitecraft, "quad", DefaultShaderTiers[0])
	require.NoError(t, err)
	assert.Equal(t, uint16(330), src.Version)
	assert.Contains(t, src.Vertex, "330 core")
	assert.Contains(t, src.Fragment, "out vec4")

	// the 140 tier misses its fragment stage
	_, err = sl.Load(resources.NamespaceLitecraft, "quad", DefaultShaderTiers[1])
	assert.ErrorIs(t, err, core.ErrNotFound)
}
