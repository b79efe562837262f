package main

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const overlayHeight = 100

// hostSurface draws into a glfw window. Sprites are queued in blit order
// and flushed in Present, followed by the text overlay.
type hostSurface struct {
	window *glfw.Window

	spriteProgram uint32
	spriteVAO     uint32
	spriteVBO     uint32
	spriteTex     uint32
	sprites       []float32

	overlayProgram uint32
	overlayVAO     uint32
	overlayTex     uint32
	text           *TextCanvas
}

func newHostSurface(window *glfw.Window) (*hostSurface, error) {
	s := &hostSurface{
		window: window,
		text:   NewTextCanvas(width, overlayHeight),
	}

	var err error
	s.spriteProgram, err = newProgram(spriteVertexShaderSource, spriteFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	s.overlayProgram, err = newProgram(overlayVertexShaderSource, overlayFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	projection := mgl32.Ortho2D(0, width, height, 0)

	gl.UseProgram(s.spriteProgram)
	gl.UniformMatrix4fv(gl.GetUniformLocation(s.spriteProgram, gl.Str("projection\x00")), 1, false, &projection[0])
	gl.Uniform1f(gl.GetUniformLocation(s.spriteProgram, gl.Str("pointSize\x00")), spriteSize)
	gl.Uniform1i(gl.GetUniformLocation(s.spriteProgram, gl.Str("sprite\x00")), 0)

	gl.GenVertexArrays(1, &s.spriteVAO)
	gl.BindVertexArray(s.spriteVAO)
	gl.GenBuffers(1, &s.spriteVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.spriteVBO)
	posAttrib := uint32(gl.GetAttribLocation(s.spriteProgram, gl.Str("pos\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	s.spriteTex = newTexture(NewBallSprite(spriteSize))

	gl.UseProgram(s.overlayProgram)
	gl.UniformMatrix4fv(gl.GetUniformLocation(s.overlayProgram, gl.Str("projection\x00")), 1, false, &projection[0])
	gl.Uniform1i(gl.GetUniformLocation(s.overlayProgram, gl.Str("overlay\x00")), 0)

	// x, y, u, v; image row 0 is the top of the window
	quad := []float32{
		0, 0, 0, 0,
		width, 0, 1, 0,
		0, overlayHeight, 0, 1,
		width, overlayHeight, 1, 1,
	}
	gl.GenVertexArrays(1, &s.overlayVAO)
	gl.BindVertexArray(s.overlayVAO)
	var quadVBO uint32
	gl.GenBuffers(1, &quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	vpAttrib := uint32(gl.GetAttribLocation(s.overlayProgram, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vpAttrib)
	gl.VertexAttribPointer(vpAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	uvAttrib := uint32(gl.GetAttribLocation(s.overlayProgram, gl.Str("uv\x00")))
	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointer(uvAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	s.overlayTex = newTexture(s.text.Image)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("gl setup failed: error 0x%x", code)
	}
	return s, nil
}

func newTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

func (s *hostSurface) PollEvents() {
	glfw.PollEvents()
}

func (s *hostSurface) ShouldClose() bool {
	return s.window.ShouldClose()
}

func (s *hostSurface) Keys() KeyState {
	held := func(k glfw.Key) bool {
		return s.window.GetKey(k) == glfw.Press
	}
	return KeyState{
		Left:    held(glfw.KeyLeft),
		Right:   held(glfw.KeyRight),
		Up:      held(glfw.KeyUp),
		Down:    held(glfw.KeyDown),
		Forward: held(glfw.KeyQ),
		Back:    held(glfw.KeyA),
		FOVUp:   held(glfw.KeyW),
		FOVDown: held(glfw.KeyS),
	}
}

func (s *hostSurface) Clear() {
	fbWidth, fbHeight := s.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	s.sprites = s.sprites[:0]
	s.text.Clear()
}

func (s *hostSurface) DrawSprite(x, y float64) {
	s.sprites = append(s.sprites, float32(x), float32(y))
}

func (s *hostSurface) DrawText(x, y int, str string) {
	s.text.WriteLine(x, y, str)
}

func (s *hostSurface) Present() error {
	gl.ActiveTexture(gl.TEXTURE0)

	if n := len(s.sprites) / 2; n > 0 {
		gl.UseProgram(s.spriteProgram)
		gl.BindVertexArray(s.spriteVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, s.spriteVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(s.sprites)*4, gl.Ptr(s.sprites), gl.STREAM_DRAW)
		gl.BindTexture(gl.TEXTURE_2D, s.spriteTex)
		gl.DrawArrays(gl.POINTS, 0, int32(n))
	}

	gl.UseProgram(s.overlayProgram)
	gl.BindVertexArray(s.overlayVAO)
	gl.BindTexture(gl.TEXTURE_2D, s.overlayTex)
	b := s.text.Image.Bounds()
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.Dx()), int32(b.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(s.text.Image.Pix))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	s.window.SwapBuffers()

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}
