package metadata

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/litecraft/engine/resources"
)

/** @brief The number of channels of a decoded image, RGBA8. */
const ImageChannelCount = 4

/**
 * @brief The table a decoded texture is inserted into once uploaded.
 */
type TextureTarget int

const (
	/** @brief A world texture, looked up with the scene table. */
	TextureTargetScene TextureTarget = iota
	/** @brief A user interface texture, stored with its dimensions. */
	TextureTargetUI
)

func (t TextureTarget) String() string {
	switch t {
	case TextureTargetScene:
		return "scene"
	case TextureTargetUI:
		return "ui"
	default:
		return "unknown"
	}
}

/**
 * @brief Pixel data produced by a worker and consumed once by the texture manager.
 */
type DecodedImage struct {
	/** @brief The identifier the image was requested with. */
	ID resources.Identifier
	/** @brief RGBA8 pixels, row-major, rows stored bottom-up. */
	Pixels []uint8
	/** @brief The width of the image. */
	Width uint32
	/** @brief The height of the image. */
	Height uint32
	/** @brief The table the image goes to. */
	Target TextureTarget
	/** @brief Set when the image is the placeholder produced after a failed load. */
	Fallback bool
	/** @brief The job that produced the image. */
	JobID uuid.UUID
}

// PixelAt returns the RGBA value stored at column x of buffer row y.
func (img *DecodedImage) PixelAt(x, y uint32) [4]uint8 {
	offset := (y*img.Width + x) * ImageChannelCount
	var px [4]uint8
	copy(px[:], img.Pixels[offset:offset+ImageChannelCount])
	return px
}
