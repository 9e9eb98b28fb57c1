// Package glsurface implements scene.Surface on an OpenGL 4.1 core context.
//
// Vertices are streamed into one dynamic buffer per draw call. The caller
// owns the context and must keep it current on the calling thread.
package glsurface

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/col-workshop/internal/logger"
	"github.com/Faultbox/col-workshop/internal/scene"
	"github.com/Faultbox/col-workshop/pkg/math"
)

// floatsPerVertex is position plus normal.
const floatsPerVertex = 6

// Surface draws through a single flat/Lambert shader.
type Surface struct {
	program  uint32
	uniforms uniforms
	vao      uint32
	vbo      uint32
	vboBytes int

	width, height int

	projection math.Mat4
	modelView  math.Mat4

	// Checkerboard replaces the clear color with a two-tone pattern.
	Checkerboard bool
	CheckerSize  int

	// LightDir is the view-space direction towards the light used for Lit triangles.
	LightDir math.Vec3
	Ambient  float32
	Diffuse  float32

	buf []float32
	log *zap.Logger
}

// New loads GL function pointers, compiles the shader and sets up buffers.
func New(width, height int) (*Surface, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	program, err := compileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("compiling surface shader: %w", err)
	}
	u, err := lookupUniforms(program)
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	s := &Surface{
		program:     program,
		uniforms:    u,
		projection:  math.Identity(),
		modelView:   math.Identity(),
		CheckerSize: 16,
		LightDir:    math.Vec3{X: 1, Y: 1, Z: 1}.Normalize(),
		Ambient:     0.3,
		Diffuse:     0.8,
		log:         logger.Named("glsurface"),
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)

	s.Resize(width, height)

	s.log.Info("GL surface ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return s, nil
}

// Resize updates the GL viewport. Use drawable size on high-DPI displays.
func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Size implements scene.Surface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Clear implements scene.Surface.
func (s *Surface) Clear(bg scene.Color) {
	if !s.Checkerboard {
		gl.ClearColor(bg.R, bg.G, bg.B, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		return
	}

	gl.ClearColor(150.0/255, 150.0/255, 150.0/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// Light cells are cleared one scissor rectangle at a time.
	size := s.CheckerSize
	if size < 1 {
		size = 16
	}
	gl.Enable(gl.SCISSOR_TEST)
	gl.ClearColor(200.0/255, 200.0/255, 200.0/255, 1)
	for _, r := range checkerCells(s.width, s.height, size) {
		gl.Scissor(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()))
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	gl.Disable(gl.SCISSOR_TEST)
}

// SetProjection implements scene.Surface.
func (s *Surface) SetProjection(m math.Mat4) {
	s.projection = m
}

// SetModelView implements scene.Surface.
func (s *Surface) SetModelView(m math.Mat4) {
	s.modelView = m
}

// DrawLines implements scene.Surface.
func (s *Surface) DrawLines(_ scene.Layer, vertices []math.Vec3, c scene.Color) {
	n := len(vertices) &^ 1
	if n == 0 {
		return
	}
	s.buf = packLines(s.buf[:0], vertices[:n])
	s.draw(gl.LINES, n, c, false)
}

// DrawTriangles implements scene.Surface.
func (s *Surface) DrawTriangles(_ scene.Layer, vertices []math.Vec3, c scene.Color, style scene.Style) {
	n := len(vertices) / 3 * 3
	if n == 0 {
		return
	}
	s.buf = packTriangles(s.buf[:0], vertices[:n])

	if style.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	s.draw(gl.TRIANGLES, n, c, style.Lit && !style.Wireframe)
}

func (s *Surface) draw(mode uint32, count int, c scene.Color, lit bool) {
	mvp := s.projection.Mul(s.modelView)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uniforms.mvp, 1, false, &mvp[0])
	gl.UniformMatrix4fv(s.uniforms.modelView, 1, false, &s.modelView[0])
	gl.Uniform4f(s.uniforms.color, c.R, c.G, c.B, c.A)
	var litFlag int32
	if lit {
		litFlag = 1
	}
	gl.Uniform1i(s.uniforms.lit, litFlag)
	gl.Uniform3f(s.uniforms.lightDir, s.LightDir.X, s.LightDir.Y, s.LightDir.Z)
	gl.Uniform1f(s.uniforms.ambient, s.Ambient)
	gl.Uniform1f(s.uniforms.diffuse, s.Diffuse)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	size := len(s.buf) * 4
	if size > s.vboBytes {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(s.buf), gl.STREAM_DRAW)
		s.vboBytes = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(s.buf))
	}
	gl.DrawArrays(mode, 0, int32(count))
	gl.BindVertexArray(0)
}

// ReadPixels returns the current color buffer as a top-down RGBA image.
func (s *Surface) ReadPixels() *image.RGBA {
	pixels := make([]byte, s.width*s.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return flipRows(pixels, s.width, s.height)
}

// Destroy releases all GL resources.
func (s *Surface) Destroy() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

var _ scene.Surface = (*Surface)(nil)
