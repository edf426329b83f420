package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

// TextureCreate uploads a decoded RGBA image into a new 2D texture. Wrap
// mode is repeat and filtering linear in both directions; mipmaps are
// generated unconditionally after the upload. The frontend has already
// verified the pixel buffer is non-nil and 4-channel.
func (b *Backend) TextureCreate(image *metadata.ImageData) (*metadata.Texture, error) {
	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(image.Width), int32(image.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(image.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := b.checkError("texture upload"); err != nil {
		gl.DeleteTextures(1, &handle)
		return nil, err
	}

	return &metadata.Texture{
		Width:  image.Width,
		Height: image.Height,
		Handle: handle,
	}, nil
}

func (b *Backend) TextureDestroy(texture *metadata.Texture) {
	if texture == nil || texture.Handle == 0 {
		return
	}
	b.units.release(texture.Handle)
	gl.DeleteTextures(1, &texture.Handle)
	texture.Handle = 0
}
