// Package device implements the renderer's Graphics interface on OpenGL 4.1.
package device

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/logoanim/internal/engine/shader"
	"github.com/Faultbox/logoanim/internal/engine/shaders"
	"github.com/Faultbox/logoanim/internal/logger"
	"github.com/Faultbox/logoanim/internal/mesh"
	"github.com/Faultbox/logoanim/pkg/math"
)

// Config holds device configuration.
type Config struct {
	Width  int
	Height int
}

// GLError is a non-zero glGetError code seen after an operation.
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("%s: GL error 0x%04X", e.Op, e.Code)
}

// Device owns the GPU copy of the mesh and the logo shader program.
// IMPORTANT: must be created after the OpenGL context exists, on the thread
// that owns it.
type Device struct {
	width, height int

	program   *shader.Program
	mvUniform int32
	posAttrib uint32
	colAttrib uint32

	vao      uint32
	posVBO   uint32
	colorVBO uint32
}

// New initializes OpenGL, compiles the logo shaders and uploads buf.
func New(cfg Config, buf *mesh.Buffer) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	d := &Device{}

	var err error
	d.program, err = shader.Compile(shaders.LogoVertexShader, shaders.LogoFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	if d.mvUniform, err = d.program.Uniform(shaders.UniformMatrix); err != nil {
		d.Close()
		return nil, err
	}
	if d.posAttrib, err = d.program.Attrib(shaders.AttrPosition); err != nil {
		d.Close()
		return nil, err
	}
	if d.colAttrib, err = d.program.Attrib(shaders.AttrColor); err != nil {
		d.Close()
		return nil, err
	}

	d.uploadMesh(buf)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(1.0, 1.0, 1.0, 1.0)
	d.Resize(cfg.Width, cfg.Height)

	if err := checkError("device setup"); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// uploadMesh copies positions and colors into static VBOs under one VAO.
func (d *Device) uploadMesh(buf *mesh.Buffer) {
	positions := buf.Positions()
	colors := buf.Colors()

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &d.colorVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(colors)*4, gl.Ptr(colors), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Int("vertices", buf.VertexCount()),
		zap.Uint32("vao", d.vao),
	)
}

// Resize sets the viewport.
func (d *Device) Resize(width, height int) {
	d.width, d.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ClearFrame clears the color and depth buffers.
func (d *Device) ClearFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UploadModelMatrix sets uMVMatrix.
func (d *Device) UploadModelMatrix(m math.Mat4) error {
	d.program.Use()
	gl.UniformMatrix4fv(d.mvUniform, 1, false, m.Ptr())
	return checkError("upload model matrix")
}

// BindVertexAttributes points both attributes at their full buffers.
func (d *Device) BindVertexAttributes() error {
	gl.BindVertexArray(d.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.posVBO)
	gl.VertexAttribPointer(d.posAttrib, mesh.PositionSize, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(d.posAttrib)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.colorVBO)
	gl.VertexAttribPointer(d.colAttrib, mesh.ColorSize, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(d.colAttrib)

	return checkError("bind vertex attributes")
}

// DrawTriangles draws count vertices from start as a triangle list.
func (d *Device) DrawTriangles(start, count int) error {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
	return checkError("draw triangles")
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (d *Device) ReadPixels() (pixels []byte, width, height int) {
	pixels = make([]byte, d.width*d.height*4)
	if len(pixels) == 0 {
		return pixels, d.width, d.height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(d.width), int32(d.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, d.width, d.height
}

// Close releases GPU resources.
func (d *Device) Close() {
	logger.Info("closing device")
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.posVBO != 0 {
		gl.DeleteBuffers(1, &d.posVBO)
	}
	if d.colorVBO != 0 {
		gl.DeleteBuffers(1, &d.colorVBO)
	}
	if d.program != nil {
		d.program.Delete()
	}
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return &GLError{Op: op, Code: code}
	}
	return nil
}
