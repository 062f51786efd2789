package metadata

import (
	"github.com/spaghettifunk/litecraft/engine/resources"
)

const (
	/** @brief The size of the fallback texture, in pixels per side. */
	FALLBACK_TEXTURE_SIZE uint32 = 16
)

var (
	/** @brief Fallback colour used where column and row parity match. */
	FallbackColorA = [4]uint8{255, 0, 255, 255}
	/** @brief Fallback colour used everywhere else. */
	FallbackColorB = [4]uint8{0, 0, 0, 255}
)

/**
 * @brief Represents a texture living on the GPU.
 */
type Texture struct {
	/** @brief The handle given by the renderer backend. Never zero once created. */
	Handle uint32
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	/** @brief Set when the texture is the fallback pattern. */
	Fallback bool
}

/**
 * @brief A texture used by the user interface along with its size.
 */
type UITexture struct {
	/** @brief The identifier the texture was loaded with. */
	ID resources.Identifier
	/** @brief The GPU texture. */
	Texture *Texture
	/** @brief The texture Width as used by the layout code. */
	Width float64
	/** @brief The texture Height as used by the layout code. */
	Height float64
}

func NewUITexture(id resources.Identifier, texture *Texture) *UITexture {
	return &UITexture{
		ID:      id,
		Texture: texture,
		Width:   float64(texture.Width),
		Height:  float64(texture.Height),
	}
}

// NewFallbackImage creates the 16x16 checkerboard shown in place of a texture that
// could not be loaded. The pattern is written directly in buffer order.
func NewFallbackImage(id resources.Identifier, target TextureTarget) *DecodedImage {
	size := FALLBACK_TEXTURE_SIZE
	pixels := make([]uint8, size*size*ImageChannelCount)
	for row := uint32(0); row < size; row++ {
		for col := uint32(0); col < size; col++ {
			index := (row*size + col) * ImageChannelCount
			color := FallbackColorB
			if row%2 == col%2 {
				color = FallbackColorA
			}
			copy(pixels[index:index+ImageChannelCount], color[:])
		}
	}
	return &DecodedImage{
		ID:       id,
		Pixels:   pixels,
		Width:    size,
		Height:   size,
		Target:   target,
		Fallback: true,
	}
}
