package renderer

import "github.com/spaghettifunk/uchiha/engine/renderer/metadata"

// RendererBackend is the GPU command surface of the engine. All global GPU
// state (active program, bound texture units, enabled attribute slots, the
// shared vertex buffer binding) lives behind this interface, and every
// operation must leave that state in a well-defined condition on return so
// the next call starts from a known baseline.
//
// There is exactly one backend per engine and no internal locking: every
// call must happen on the thread that owns the GPU context.
type RendererBackend interface {
	Initialize(appName string, width, height uint32) error
	Shutdown() error
	Resized(width, height uint16) error

	// ShaderCreate compiles both stages, applies the attribute bindings
	// before linking, and links. It either returns a usable program or an
	// error carrying the driver diagnostic, never both.
	ShaderCreate(config *metadata.ShaderConfig) (*metadata.ShaderProgram, error)
	ShaderDestroy(program *metadata.ShaderProgram)
	ShaderUse(program *metadata.ShaderProgram) error
	// ShaderBindSampler resolves the named sampler uniform, assigns the
	// texture a unit from the backend's unit pool, binds it and points the
	// uniform at that unit.
	ShaderBindSampler(program *metadata.ShaderProgram, uniformName string, texture *metadata.Texture) error

	// TextureCreate uploads a decoded RGBA image into a new GPU texture.
	// The caller guarantees the pixel buffer is non-nil and 4-channel.
	TextureCreate(image *metadata.ImageData) (*metadata.Texture, error)
	TextureDestroy(texture *metadata.Texture)

	// BufferUpload replaces the full contents of the single shared vertex
	// buffer with the given interleaved stream.
	BufferUpload(vertices []float32) error
	AttributesEnable(attributes []metadata.VertexAttribute)
	AttributesDisable(attributes []metadata.VertexAttribute)
	// Draw issues a draw of vertexCount vertices interpreted as a flat list
	// of independent triangles out of the shared buffer.
	Draw(vertexCount uint32) error

	// EndFrame presents the rendered output and prepares the backbuffer for
	// the next frame.
	EndFrame() error
}
