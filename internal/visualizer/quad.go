package visualizer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// quadVertices returns the six-vertex full-screen quad as interleaved
// position/texcoord pairs. Texture V is flipped so grid row 0 lands at the
// top of the window.
func quadVertices() []float32 {
	corners := [6]struct{ pos, tex mgl32.Vec2 }{
		{mgl32.Vec2{-1, -1}, mgl32.Vec2{0, 1}},
		{mgl32.Vec2{1, -1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec2{1, 1}, mgl32.Vec2{1, 0}},
		{mgl32.Vec2{-1, -1}, mgl32.Vec2{0, 1}},
		{mgl32.Vec2{-1, 1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{1, 1}, mgl32.Vec2{1, 0}},
	}
	out := make([]float32, 0, len(corners)*4)
	for _, c := range corners {
		out = append(out, c.pos.X(), c.pos.Y(), c.tex.X(), c.tex.Y())
	}
	return out
}

// quad owns the vertex state for the full-screen draw.
type quad struct {
	vao, vbo uint32
}

// newQuad uploads the quad vertices and binds the a_position and a_texcoord
// attributes of the given program. The current GL context must be valid.
func newQuad(program uint32) (*quad, error) {
	vertices := quadVertices()

	q := &quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	if e := gl.GetError(); e != gl.NO_ERROR {
		q.release()
		return nil, &Error{Op: "vertex buffer", Kind: ErrBufferAllocation, Err: glError(e)}
	}

	const stride = 4 * 4
	position := gl.GetAttribLocation(program, gl.Str("a_position\x00"))
	if position < 0 {
		q.release()
		return nil, &Error{Op: "attribute a_position", Kind: ErrShaderCompile, Err: errors.New("not found in program")}
	}
	gl.EnableVertexAttribArray(uint32(position))
	gl.VertexAttribPointer(uint32(position), 2, gl.FLOAT, false, stride, gl.PtrOffset(0))

	texcoord := gl.GetAttribLocation(program, gl.Str("a_texcoord\x00"))
	if texcoord < 0 {
		q.release()
		return nil, &Error{Op: "attribute a_texcoord", Kind: ErrShaderCompile, Err: errors.New("not found in program")}
	}
	gl.EnableVertexAttribArray(uint32(texcoord))
	gl.VertexAttribPointer(uint32(texcoord), 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.BindVertexArray(0)
	return q, nil
}

func (q *quad) release() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}

func glError(code uint32) error {
	return fmt.Errorf("gl error 0x%04x", code)
}
