package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/platform"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

// Backend drives an OpenGL 3.3 core context. It owns the one shared vertex
// buffer all draw calls re-upload into, the VAO the attribute slots live in,
// and the texture unit pool. The platform's GL context must be current on
// the calling thread for the lifetime of the backend.
type Backend struct {
	platform *platform.Platform

	vbo   uint32
	vao   uint32
	units *unitPool
}

func New(p *platform.Platform) *Backend {
	return &Backend{
		platform: p,
		units:    newUnitPool(),
	}
}

func (b *Backend) Initialize(appName string, width, height uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to load GL functions: %w", err)
	}
	core.LogInfo("OpenGL %s, %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.0, 0.0, 0.0, 0.0)
	gl.Viewport(0, 0, int32(width), int32(height))

	return b.checkError("initialize")
}

func (b *Backend) Shutdown() error {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	return nil
}

func (b *Backend) Resized(width, height uint16) error {
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

// BufferUpload replaces the contents of the shared vertex buffer with the
// given interleaved stream. Full re-upload every call, no partial updates.
func (b *Backend) BufferUpload(vertices []float32) error {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	return b.checkError("vertex buffer upload")
}

func (b *Backend) AttributesEnable(attributes []metadata.VertexAttribute) {
	for _, a := range attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, metadata.VERTEX_SIZE, uintptr(a.Offset))
	}
}

func (b *Backend) AttributesDisable(attributes []metadata.VertexAttribute) {
	for _, a := range attributes {
		gl.DisableVertexAttribArray(a.Location)
	}
}

func (b *Backend) Draw(vertexCount uint32) error {
	gl.DrawArrays(gl.TRIANGLES, 0, int32(vertexCount))
	return b.checkError("draw")
}

// EndFrame swaps the backbuffer to the screen and clears the new backbuffer
// to the frame clear color.
func (b *Backend) EndFrame() error {
	b.platform.SwapBuffers()

	gl.ClearColor(0.0, 0.0, 1.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return b.checkError("present")
}

// checkError drains the GL error flag. Draw-time failures are not
// recoverable mid-frame; they are surfaced to the caller instead of being
// left to corrupt subsequent frames.
func (b *Backend) checkError(operation string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("GL error 0x%04x during %s", code, operation)
	}
	return nil
}
