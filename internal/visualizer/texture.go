package visualizer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// fieldTexture owns the GPU storage the field is streamed into. Storage is
// allocated once at the declared dimensions; every frame updates it in
// place.
type fieldTexture struct {
	id   uint32
	w, h int32
}

func newFieldTexture(w, h int) (*fieldTexture, error) {
	t := &fieldTexture{w: int32(w), h: int32(h)}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.w, t.h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &t.id)
		return nil, &Error{
			Op:   fmt.Sprintf("texture storage %dx%d", w, h),
			Kind: ErrBufferAllocation,
			Err:  glError(e),
		}
	}
	return t, nil
}

// upload streams one frame of RGBA pixels into the existing storage. pix
// must hold exactly 4*w*h bytes.
func (t *fieldTexture) upload(pix []byte) {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.w, t.h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func (t *fieldTexture) release() {
	gl.DeleteTextures(1, &t.id)
}
