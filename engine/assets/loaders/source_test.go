package loaders

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

// memorySource serves resources from a map.
type memorySource map[resources.Identifier][]byte

func (m memorySource) Resolve(id resources.Identifier) ([]byte, error) {
	data, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("resource %s does not exist on any resource pack: %w", id, core.ErrNotFound)
	}
	return data, nil
}

func (m memorySource) LoadText(id resources.Identifier) (string, error) {
	data, err := m.Resolve(id)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("resource %s is not valid UTF-8: %w", id, core.ErrDecode)
	}
	return string(data), nil
}

// encodePNG builds a PNG whose rows are the given colours.
func encodePNG(t *testing.T, rows [][]color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
