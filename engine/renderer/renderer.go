package renderer

import (
	"github.com/google/uuid"

	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

// Renderer is the frontend of the rendering subsystem. It owns the backend,
// the two built-in shader programs (flat color and textured) and the policy
// of the two draw paths; everything GPU specific stays behind the
// RendererBackend interface.
type Renderer struct {
	backend         RendererBackend
	flatProgram     *metadata.ShaderProgram
	texturedProgram *metadata.ShaderProgram
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend: backend,
	}
}

// Initialize brings up the backend and creates both built-in programs. On
// any failure the backend is shut down again; no partially constructed
// renderer survives.
func (r *Renderer) Initialize(appName string, width, height uint32) error {
	if err := r.backend.Initialize(appName, width, height); err != nil {
		return &core.InitError{Stage: "renderer backend", Err: err}
	}

	flat, err := r.backend.ShaderCreate(metadata.FlatShaderConfig())
	if err != nil {
		core.LogError("failed to create the flat color shader: %s", err.Error())
		r.backend.Shutdown()
		return &core.InitError{Stage: "flat shader", Err: err}
	}
	r.flatProgram = flat

	textured, err := r.backend.ShaderCreate(metadata.TexturedShaderConfig())
	if err != nil {
		core.LogError("failed to create the textured shader: %s", err.Error())
		r.backend.ShaderDestroy(r.flatProgram)
		r.flatProgram = nil
		r.backend.Shutdown()
		return &core.InitError{Stage: "textured shader", Err: err}
	}
	r.texturedProgram = textured

	core.LogInfo("Renderer initialized (%dx%d).", width, height)
	return nil
}

// DrawTriangles draws a batch of flat-colored triangles. The full batch is
// re-uploaded to the shared vertex buffer every call. An empty batch is a
// documented no-op: no buffer access, no GPU calls.
func (r *Renderer) DrawTriangles(triangles []metadata.Triangle) error {
	if len(triangles) == 0 {
		return nil
	}
	if r.flatProgram == nil {
		return core.ErrProgramUnusable
	}

	if err := r.backend.ShaderUse(r.flatProgram); err != nil {
		return err
	}
	return r.drawCurrent(triangles, metadata.FlatAttributes())
}

// DrawTrianglesTextured draws a batch of triangles sampling the given
// texture. Same shape as DrawTriangles plus the sampler binding and the
// texture coordinate attribute slot.
func (r *Renderer) DrawTrianglesTextured(triangles []metadata.Triangle, texture *metadata.Texture) error {
	if len(triangles) == 0 {
		return nil
	}
	if r.texturedProgram == nil {
		return core.ErrProgramUnusable
	}
	if texture == nil {
		return core.ErrInvalidTexture
	}

	if err := r.backend.ShaderUse(r.texturedProgram); err != nil {
		return err
	}
	if err := r.backend.ShaderBindSampler(r.texturedProgram, metadata.SAMPLER_UNIFORM_NAME, texture); err != nil {
		return err
	}
	return r.drawCurrent(triangles, metadata.TexturedAttributes())
}

// drawCurrent uploads the flattened stream and issues the draw with the
// given attribute slots. Slot enablement is global GPU state, so the enabled
// slots are disabled again on every path out, including a failed draw.
func (r *Renderer) drawCurrent(triangles []metadata.Triangle, attributes []metadata.VertexAttribute) error {
	if err := r.backend.BufferUpload(metadata.FlattenTriangles(triangles)); err != nil {
		return err
	}

	r.backend.AttributesEnable(attributes)
	err := r.backend.Draw(uint32(len(triangles) * 3))
	r.backend.AttributesDisable(attributes)
	return err
}

// CreateTexture turns a decoded image into a GPU texture. Decode failures
// and channel-count mismatches are rejected before any GPU call; no texture
// object is ever constructed around an uninitialized buffer.
func (r *Renderer) CreateTexture(image *metadata.ImageData) (*metadata.Texture, error) {
	if image == nil || image.Pixels == nil {
		return nil, core.ErrTextureDecodeFailed
	}
	if image.ChannelCount != 4 || uint32(len(image.Pixels)) != image.Width*image.Height*4 {
		return nil, core.ErrTextureChannelCount
	}

	texture, err := r.backend.TextureCreate(image)
	if err != nil {
		return nil, err
	}
	if texture.Name == "" {
		texture.Name = uuid.New().String()
	}
	return texture, nil
}

// DestroyTexture releases the GPU resources of a texture created through
// CreateTexture. The renderer takes no ownership of textures it returns;
// releasing them is the caller's responsibility.
func (r *Renderer) DestroyTexture(texture *metadata.Texture) {
	if texture == nil {
		return
	}
	r.backend.TextureDestroy(texture)
}

// Present makes the rendered output visible and prepares the next frame.
func (r *Renderer) Present() error {
	return r.backend.EndFrame()
}

func (r *Renderer) OnResize(width, height uint16) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) Shutdown() error {
	if r.texturedProgram != nil {
		r.backend.ShaderDestroy(r.texturedProgram)
		r.texturedProgram = nil
	}
	if r.flatProgram != nil {
		r.backend.ShaderDestroy(r.flatProgram)
		r.flatProgram = nil
	}
	return r.backend.Shutdown()
}
