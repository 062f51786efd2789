package renderer

import "github.com/spaghettifunk/litecraft/engine/renderer/metadata"

// Backend is the GPU side of the asset pipeline. Implementations are not safe
// for concurrent use: only the goroutine owning the graphics context calls them.
type Backend interface {
	// TextureCreate uploads the decoded image and returns the created texture.
	TextureCreate(img *metadata.DecodedImage) (*metadata.Texture, error)
	// ShaderCreate compiles and links one program out of every tier in sources.
	ShaderCreate(name string, sources []metadata.ShaderSource) (*metadata.Program, error)
}
