package loaders_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/uchiha/engine/assets/loaders"
	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texture.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, png.Encode(file, img))
	return path
}

func TestImageLoaderNormalizesToRGBA(t *testing.T) {
	// grayscale source: one channel on disk, four after loading
	gray := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 16)
	}
	path := writePNG(t, gray)

	loader := &loaders.ImageLoader{}
	result, err := loader.Load(path)
	require.NoError(t, err)

	data := result.(*metadata.ImageData)
	assert.Equal(t, uint32(4), data.Width)
	assert.Equal(t, uint32(2), data.Height)
	assert.Equal(t, uint8(4), data.ChannelCount)
	assert.Len(t, data.Pixels, 4*2*4)
	// alpha is opaque for an alpha-less source
	assert.Equal(t, uint8(0xff), data.Pixels[3])
}

func TestImageLoaderPreservesColors(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	path := writePNG(t, src)

	loader := &loaders.ImageLoader{}
	result, err := loader.Load(path)
	require.NoError(t, err)

	data := result.(*metadata.ImageData)
	assert.Equal(t, []uint8{10, 20, 30, 255, 200, 100, 50, 255}, data.Pixels)
}

func TestImageLoaderMissingFile(t *testing.T) {
	loader := &loaders.ImageLoader{}
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestImageLoaderCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	loader := &loaders.ImageLoader{}
	_, err := loader.Load(path)
	assert.ErrorIs(t, err, core.ErrTextureDecodeFailed)
}
