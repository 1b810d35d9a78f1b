package visualizer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/avaldr/morphogen/internal/field"
)

// Default window dimensions in screen coordinates.
const (
	DefaultWindowW = 600
	DefaultWindowH = 600
)

// Config describes the window and the field it displays.
type Config struct {
	Title        string
	FieldWidth   int
	FieldHeight  int
	Shaders      fs.FS  // provider for shader sources
	VertexPath   string // path of the vertex shader within Shaders
	FragmentPath string // path of the fragment shader within Shaders
	WindowWidth  int    // 0 means DefaultWindowW
	WindowHeight int    // 0 means DefaultWindowH
	VSync        bool
}

// Visualizer owns the window, GL context, quad program and field texture,
// and drives the blocking render loop.
type Visualizer struct {
	win     *glfw.Window
	program uint32
	quad    *quad
	tex     *fieldTexture
	sampler int32
	fieldW  int
	fieldH  int
	pix     []byte
}

// New builds the window and all GPU state. Shader sources are read through
// cfg.Shaders before any window or driver call, so an unreadable resource
// fails before a context exists. The window appears immediately; nothing is
// rendered until [Visualizer.Run].
//
// Must be called on the goroutine locked to the main OS thread.
func New(cfg Config) (*Visualizer, error) {
	if cfg.FieldWidth < 1 || cfg.FieldHeight < 1 {
		return nil, &Error{
			Op:   fmt.Sprintf("field size %dx%d", cfg.FieldWidth, cfg.FieldHeight),
			Kind: ErrRender,
			Err:  errors.New("dimensions must be positive"),
		}
	}
	vertSource, fragSource, err := loadShaderSources(cfg.Shaders, cfg.VertexPath, cfg.FragmentPath)
	if err != nil {
		return nil, err
	}

	winW, winH := cfg.WindowWidth, cfg.WindowHeight
	if winW <= 0 {
		winW = DefaultWindowW
	}
	if winH <= 0 {
		winH = DefaultWindowH
	}

	if err := glfw.Init(); err != nil {
		return nil, &Error{Op: "init glfw", Kind: ErrRender, Err: err}
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(winW, winH, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &Error{Op: "create window", Kind: ErrRender, Err: err}
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, &Error{Op: "init gl", Kind: ErrRender, Err: err}
	}

	// Framebuffer size can differ from window size on high-DPI displays.
	fbW, fbH := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	v := &Visualizer{win: win, fieldW: cfg.FieldWidth, fieldH: cfg.FieldHeight}

	v.program, err = newProgram(vertSource, fragSource)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.sampler = gl.GetUniformLocation(v.program, gl.Str("u_texture\x00"))
	if v.sampler < 0 {
		v.Close()
		return nil, &Error{Op: "uniform u_texture", Kind: ErrShaderCompile, Err: errors.New("not found in program")}
	}

	v.quad, err = newQuad(v.program)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.tex, err = newFieldTexture(cfg.FieldWidth, cfg.FieldHeight)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.pix = make([]byte, 0, 4*cfg.FieldWidth*cfg.FieldHeight)

	slog.Info("visualizer ready",
		"window", fmt.Sprintf("%dx%d", winW, winH),
		"field", fmt.Sprintf("%dx%d", cfg.FieldWidth, cfg.FieldHeight),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return v, nil
}

// Run drives the render loop until the window is closed or a frame fails.
// A nil error means the user closed the window.
func (v *Visualizer) Run(src field.Source) error {
	frames := 0
	err := runLoop(src, func(g *field.Grid) error {
		frames++
		return v.renderFrame(g)
	}, v.pump)
	if err == nil {
		slog.Info("window closed", "frames", frames)
	}
	return err
}

// runLoop is the frame cycle: advance the source, render the grid, then
// poll for a close request. A close observed while polling stops the loop
// before another frame starts.
func runLoop(src field.Source, frame func(*field.Grid) error, pump func() bool) error {
	for {
		if err := frame(src.Advance()); err != nil {
			return err
		}
		if pump() {
			return nil
		}
	}
}

// pump processes pending window events and reports whether a close was
// requested.
func (v *Visualizer) pump() bool {
	glfw.PollEvents()
	return v.win.ShouldClose()
}

// checkGrid validates the borrowed grid against the texture dimensions
// fixed at construction.
func (v *Visualizer) checkGrid(g *field.Grid) error {
	if g == nil {
		return &Error{Op: "frame", Kind: ErrRender, Err: errors.New("source returned nil grid")}
	}
	if g.W != v.fieldW || g.H != v.fieldH {
		return &Error{
			Op:   "frame",
			Kind: ErrRender,
			Err:  fmt.Errorf("grid %dx%d does not match texture %dx%d", g.W, g.H, v.fieldW, v.fieldH),
		}
	}
	return nil
}

// renderFrame converts the grid, streams it into the texture and draws the
// quad over a red clear. The red background is never visible while the quad
// covers the viewport; it shows up immediately if the draw breaks.
func (v *Visualizer) renderFrame(g *field.Grid) error {
	if err := v.checkGrid(g); err != nil {
		return err
	}
	v.pix = g.AppendRGBA(v.pix[:0])
	v.tex.upload(v.pix)

	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(v.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, v.tex.id)
	gl.Uniform1i(v.sampler, 0)
	gl.BindVertexArray(v.quad.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return &Error{Op: "draw", Kind: ErrRender, Err: glError(e)}
	}
	v.win.SwapBuffers()
	return nil
}

// Close releases GPU state and destroys the window. Safe to call on a
// partially constructed visualizer.
func (v *Visualizer) Close() {
	if v.tex != nil {
		v.tex.release()
		v.tex = nil
	}
	if v.quad != nil {
		v.quad.release()
		v.quad = nil
	}
	if v.program != 0 {
		gl.DeleteProgram(v.program)
		v.program = 0
	}
	if v.win != nil {
		v.win.Destroy()
		v.win = nil
	}
	glfw.Terminate()
}
