package loaders

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// DefaultFormats are the texture formats accepted unless configured otherwise.
var DefaultFormats = []string{FormatPNG}

type codec struct {
	name   string
	match  func(data []byte) bool
	decode func(r io.Reader) (image.Image, error)
}

// TGA has no signature so it is tried last.
var codecs = []codec{
	{FormatPNG, hasPrefix("\x89PNG\r\n\x1a\n"), png.Decode},
	{FormatBMP, hasPrefix("BM"), bmp.Decode},
	{FormatWebP, isWebP, webp.Decode},
	{FormatTGA, func([]byte) bool { return true }, tga.Decode},
}

func hasPrefix(magic string) func([]byte) bool {
	return func(data []byte) bool {
		return bytes.HasPrefix(data, []byte(magic))
	}
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

// SupportedFormats lists every format the loader can decode.
func SupportedFormats() []string {
	names := make([]string, len(codecs))
	for i, c := range codecs {
		names[i] = c.name
	}
	return names
}

// TextureLoader resolves and decodes textures on worker goroutines.
type TextureLoader struct {
	source  Source
	formats map[string]struct{}
}

// NewTextureLoader creates a loader accepting only the listed formats. An
// empty list means DefaultFormats.
func NewTextureLoader(source Source, formats []string) (*TextureLoader, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	allowed := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		f = strings.ToLower(f)
		if !isSupported(f) {
			return nil, fmt.Errorf("texture format %q is not supported, use one of %v", f, SupportedFormats())
		}
		allowed[f] = struct{}{}
	}
	return &TextureLoader{
		source:  source,
		formats: allowed,
	}, nil
}

func isSupported(format string) bool {
	for _, c := range codecs {
		if c.name == format {
			return true
		}
	}
	return false
}

// Load resolves and decodes the texture. It always returns an image: when
// anything fails the error is logged, returned, and the fallback pattern is
// handed out instead.
func (tl *TextureLoader) Load(id resources.Identifier, target metadata.TextureTarget) (*metadata.DecodedImage, error) {
	data, err := tl.source.Resolve(id)
	if err != nil {
		core.LogError("could not load texture %s: %s", id, err)
		return metadata.NewFallbackImage(id, target), err
	}
	img, err := tl.Decode(id, data, target)
	if err != nil {
		core.LogError("could not decode texture %s: %s", id, err)
		return metadata.NewFallbackImage(id, target), err
	}
	return img, nil
}

// Decode turns encoded bytes into RGBA8 pixels with the rows stored bottom-up.
func (tl *TextureLoader) Decode(id resources.Identifier, data []byte, target metadata.TextureTarget) (*metadata.DecodedImage, error) {
	c, ok := sniff(data)
	if !ok {
		return nil, fmt.Errorf("texture %s: empty data: %w", id, core.ErrDecode)
	}
	if _, ok := tl.formats[c.name]; !ok {
		return nil, fmt.Errorf("texture %s: format %s is not enabled: %w", id, c.name, core.ErrDecode)
	}

	src, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture %s: decode %s: %s: %w", id, c.name, err, core.ErrDecode)
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("texture %s: image has no pixels: %w", id, core.ErrDecode)
	}

	return &metadata.DecodedImage{
		ID:     id,
		Pixels: flipRows(toNRGBA(src)),
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
		Target: target,
	}, nil
}

func sniff(data []byte) (codec, bool) {
	if len(data) == 0 {
		return codec{}, false
	}
	for _, c := range codecs {
		if c.match(data) {
			return c, true
		}
	}
	return codec{}, false
}

// toNRGBA converts any image to non-premultiplied RGBA anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == 4*b.Dx() {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// flipRows copies the pixels with the last row first, the layout GPUs expect
// for bottom-left texture origins.
func flipRows(img *image.NRGBA) []uint8 {
	width := img.Rect.Dx() * metadata.ImageChannelCount
	height := img.Rect.Dy()
	pixels := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		copy(pixels[(height-1-y)*width:], row)
	}
	return pixels
}
