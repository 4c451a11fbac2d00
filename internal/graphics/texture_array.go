package graphics

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// NewTextureArray uploads equally sized layers as a GL_TEXTURE_2D_ARRAY
// with nearest filtering and mipmaps.
func NewTextureArray(layers []*image.NRGBA) (uint32, error) {
	if len(layers) == 0 {
		return 0, fmt.Errorf("texture array: no layers")
	}
	size := layers[0].Bounds().Size()
	pix := make([]uint8, 0, len(layers)*size.X*size.Y*4)
	for i, l := range layers {
		if l.Bounds().Size() != size {
			return 0, fmt.Errorf("texture array: layer %d is %v, want %v", i, l.Bounds().Size(), size)
		}
		pix = append(pix, l.Pix...)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, tex)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8,
		int32(size.X), int32(size.Y), int32(len(layers)),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D_ARRAY)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("texture array: gl error 0x%x", code)
	}
	return tex, nil
}
