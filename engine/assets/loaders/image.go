package loaders

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"

	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

type ImageLoader struct{}

// Load decodes the image file at path and normalizes it to a 4-channel RGBA
// pixel buffer. Channel normalization is the decode side's responsibility:
// whatever the source format carries (grayscale, paletted, RGB), the
// renderer uploads exactly the Width*Height*4 bytes produced here.
func (il *ImageLoader) Load(path string) (interface{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		core.LogError("failed to decode image '%s': %s", path, err.Error())
		return nil, core.ErrTextureDecodeFailed
	}
	core.LogDebug("decoded '%s' (%s)", path, format)

	return Normalize(img), nil
}

// Normalize converts any decoded image into the non-premultiplied RGBA
// shape the texture upload path expects.
func Normalize(img image.Image) *metadata.ImageData {
	bounds := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &metadata.ImageData{
		Width:        uint32(bounds.Dx()),
		Height:       uint32(bounds.Dy()),
		ChannelCount: 4,
		Pixels:       rgba.Pix,
	}
}
