package renderer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/renderer"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

type samplerBind struct {
	program string
	uniform string
	texture *metadata.Texture
}

// fakeBackend records every call so tests can assert the exact command
// sequence a draw path produces, without a GPU.
type fakeBackend struct {
	calls      []string
	uploads    [][]float32
	drawCounts []uint32
	enabled    [][]metadata.VertexAttribute
	disabled   [][]metadata.VertexAttribute
	binds      []samplerBind

	activeProgram     string
	destroyedPrograms []string
	shutdowns         int

	shaderErrs map[string]error
	drawErr    error
	textureErr error
	nextHandle uint32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{shaderErrs: map[string]error{}}
}

func (f *fakeBackend) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeBackend) Initialize(appName string, width, height uint32) error {
	f.record("Initialize")
	return nil
}

func (f *fakeBackend) Shutdown() error {
	f.record("Shutdown")
	f.shutdowns++
	return nil
}

func (f *fakeBackend) Resized(width, height uint16) error {
	f.record("Resized")
	return nil
}

func (f *fakeBackend) ShaderCreate(config *metadata.ShaderConfig) (*metadata.ShaderProgram, error) {
	f.record("ShaderCreate")
	if err := f.shaderErrs[config.Name]; err != nil {
		return nil, err
	}
	f.nextHandle++
	return &metadata.ShaderProgram{Name: config.Name, Handle: f.nextHandle}, nil
}

func (f *fakeBackend) ShaderDestroy(program *metadata.ShaderProgram) {
	f.record("ShaderDestroy")
	f.destroyedPrograms = append(f.destroyedPrograms, program.Name)
}

func (f *fakeBackend) ShaderUse(program *metadata.ShaderProgram) error {
	f.record("ShaderUse")
	f.activeProgram = program.Name
	return nil
}

func (f *fakeBackend) ShaderBindSampler(program *metadata.ShaderProgram, uniformName string, texture *metadata.Texture) error {
	f.record("ShaderBindSampler")
	f.binds = append(f.binds, samplerBind{program: program.Name, uniform: uniformName, texture: texture})
	return nil
}

func (f *fakeBackend) TextureCreate(image *metadata.ImageData) (*metadata.Texture, error) {
	f.record("TextureCreate")
	if f.textureErr != nil {
		return nil, f.textureErr
	}
	f.nextHandle++
	return &metadata.Texture{Width: image.Width, Height: image.Height, Handle: f.nextHandle}, nil
}

func (f *fakeBackend) TextureDestroy(texture *metadata.Texture) {
	f.record("TextureDestroy")
	texture.Handle = 0
}

func (f *fakeBackend) BufferUpload(vertices []float32) error {
	f.record("BufferUpload")
	f.uploads = append(f.uploads, vertices)
	return nil
}

func (f *fakeBackend) AttributesEnable(attributes []metadata.VertexAttribute) {
	f.record("AttributesEnable")
	f.enabled = append(f.enabled, attributes)
}

func (f *fakeBackend) AttributesDisable(attributes []metadata.VertexAttribute) {
	f.record("AttributesDisable")
	f.disabled = append(f.disabled, attributes)
}

func (f *fakeBackend) Draw(vertexCount uint32) error {
	f.record("Draw")
	if f.drawErr != nil {
		return f.drawErr
	}
	f.drawCounts = append(f.drawCounts, vertexCount)
	return nil
}

func (f *fakeBackend) EndFrame() error {
	f.record("EndFrame")
	return nil
}

func (f *fakeBackend) reset() { f.calls = nil }

func twoTriangles() []metadata.Triangle {
	return []metadata.Triangle{
		metadata.NewTriangle(
			metadata.Vertex{X: 0.3, Y: -0.3, R: 1, A: 1},
			metadata.Vertex{X: 0.0, Y: 0.3, R: 1, A: 1},
			metadata.Vertex{X: -0.3, Y: -0.3, R: 1, A: 1},
		),
		metadata.NewTriangle(
			metadata.Vertex{X: 0.6, Y: 0.3, G: 1, A: 1},
			metadata.Vertex{X: 0.9, Y: 0.3, G: 1, A: 1},
			metadata.Vertex{X: 0.75, Y: 0.6, G: 1, A: 1},
		),
	}
}

func rgbaImage(width, height uint32) *metadata.ImageData {
	return &metadata.ImageData{
		Width:        width,
		Height:       height,
		ChannelCount: 4,
		Pixels:       make([]uint8, width*height*4),
	}
}

func initializedRenderer(t *testing.T) (*renderer.Renderer, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	r := renderer.New(backend)
	require.NoError(t, r.Initialize("test", 800, 600))
	backend.reset()
	return r, backend
}

func TestInitializeCreatesBothPrograms(t *testing.T) {
	backend := newFakeBackend()
	r := renderer.New(backend)

	require.NoError(t, r.Initialize("test", 800, 600))
	assert.Equal(t, []string{"Initialize", "ShaderCreate", "ShaderCreate"}, backend.calls)
}

func TestInitializeShaderFailureTearsDown(t *testing.T) {
	backend := newFakeBackend()
	backend.shaderErrs[metadata.BUILTIN_SHADER_NAME_TEXTURED] = &core.ShaderCompileError{
		Stage: metadata.ShaderStageFragment,
		Log:   "0:3(1): error: syntax error",
	}
	r := renderer.New(backend)

	err := r.Initialize("test", 800, 600)
	require.Error(t, err)

	var initErr *core.InitError
	require.ErrorAs(t, err, &initErr)
	var compileErr *core.ShaderCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.NotEmpty(t, compileErr.Log, "compile error must carry the diagnostic")

	// the flat program and the backend were released again
	assert.Equal(t, []string{metadata.BUILTIN_SHADER_NAME_FLAT}, backend.destroyedPrograms)
	assert.Equal(t, 1, backend.shutdowns)
}

func TestDrawTrianglesEmptyIsNoOp(t *testing.T) {
	r, backend := initializedRenderer(t)

	require.NoError(t, r.DrawTriangles(nil))
	require.NoError(t, r.DrawTriangles([]metadata.Triangle{}))
	assert.Empty(t, backend.calls, "empty draw must not touch the backend")
}

func TestDrawTrianglesTexturedEmptyIsNoOp(t *testing.T) {
	r, backend := initializedRenderer(t)

	require.NoError(t, r.DrawTrianglesTextured(nil, &metadata.Texture{Handle: 1}))
	assert.Empty(t, backend.calls)
}

func TestDrawBeforeInitialize(t *testing.T) {
	r := renderer.New(newFakeBackend())

	assert.ErrorIs(t, r.DrawTriangles(twoTriangles()), core.ErrProgramUnusable)
	assert.ErrorIs(t, r.DrawTrianglesTextured(twoTriangles(), &metadata.Texture{Handle: 1}), core.ErrProgramUnusable)
}

func TestDrawTrianglesFlatPath(t *testing.T) {
	r, backend := initializedRenderer(t)

	require.NoError(t, r.DrawTriangles(twoTriangles()))

	assert.Equal(t, []string{
		"ShaderUse", "BufferUpload", "AttributesEnable", "Draw", "AttributesDisable",
	}, backend.calls)
	assert.Equal(t, metadata.BUILTIN_SHADER_NAME_FLAT, backend.activeProgram)
	require.Len(t, backend.uploads, 1)
	assert.Len(t, backend.uploads[0], 2*3*metadata.VERTEX_FLOATS)
	assert.Equal(t, []uint32{6}, backend.drawCounts)
	require.Len(t, backend.enabled, 1)
	assert.Equal(t, metadata.FlatAttributes(), backend.enabled[0])
	require.Len(t, backend.disabled, 1)
	assert.Equal(t, backend.enabled[0], backend.disabled[0], "cleanup must mirror enablement")
}

func TestDrawTrianglesTexturedPath(t *testing.T) {
	r, backend := initializedRenderer(t)
	texture := &metadata.Texture{Handle: 7, Width: 2, Height: 2}

	require.NoError(t, r.DrawTrianglesTextured(twoTriangles(), texture))

	assert.Equal(t, []string{
		"ShaderUse", "ShaderBindSampler", "BufferUpload", "AttributesEnable", "Draw", "AttributesDisable",
	}, backend.calls)
	assert.Equal(t, metadata.BUILTIN_SHADER_NAME_TEXTURED, backend.activeProgram)
	require.Len(t, backend.binds, 1)
	assert.Equal(t, metadata.SAMPLER_UNIFORM_NAME, backend.binds[0].uniform)
	assert.Same(t, texture, backend.binds[0].texture)
	require.Len(t, backend.enabled, 1)
	assert.Equal(t, metadata.TexturedAttributes(), backend.enabled[0])
}

func TestDrawTrianglesTexturedNilTexture(t *testing.T) {
	r, backend := initializedRenderer(t)

	assert.ErrorIs(t, r.DrawTrianglesTextured(twoTriangles(), nil), core.ErrInvalidTexture)
	assert.Empty(t, backend.calls)
}

func TestDrawErrorStillDisablesAttributes(t *testing.T) {
	r, backend := initializedRenderer(t)
	backend.drawErr = errors.New("GL error 0x0502 during draw")

	err := r.DrawTriangles(twoTriangles())
	require.Error(t, err)
	assert.Equal(t, "AttributesDisable", backend.calls[len(backend.calls)-1],
		"attribute slots are global state and must be disabled on the error path too")
}

func TestIdenticalResubmissionUploadsIdenticalData(t *testing.T) {
	r, backend := initializedRenderer(t)
	triangles := twoTriangles()

	require.NoError(t, r.DrawTriangles(triangles))
	require.NoError(t, r.DrawTriangles(triangles))

	require.Len(t, backend.uploads, 2)
	assert.Equal(t, backend.uploads[0], backend.uploads[1])
}

func TestCreateTextureDecodeFailure(t *testing.T) {
	r, backend := initializedRenderer(t)

	texture, err := r.CreateTexture(nil)
	assert.ErrorIs(t, err, core.ErrTextureDecodeFailed)
	assert.Nil(t, texture)

	texture, err = r.CreateTexture(&metadata.ImageData{Width: 4, Height: 4, ChannelCount: 4})
	assert.ErrorIs(t, err, core.ErrTextureDecodeFailed)
	assert.Nil(t, texture)

	assert.Empty(t, backend.calls, "a failed decode must never reach the GPU")
}

func TestCreateTextureRejectsNonRGBA(t *testing.T) {
	r, backend := initializedRenderer(t)

	image := &metadata.ImageData{
		Width:        4,
		Height:       4,
		ChannelCount: 3,
		Pixels:       make([]uint8, 4*4*3),
	}
	texture, err := r.CreateTexture(image)
	assert.ErrorIs(t, err, core.ErrTextureChannelCount)
	assert.Nil(t, texture)
	assert.Empty(t, backend.calls)
}

func TestCreateTextureAssignsName(t *testing.T) {
	r, _ := initializedRenderer(t)

	texture, err := r.CreateTexture(rgbaImage(2, 2))
	require.NoError(t, err)
	assert.NotEmpty(t, texture.Name)
	assert.Equal(t, uint32(2), texture.Width)
	assert.Equal(t, uint32(2), texture.Height)
}

func TestEndToEndFrame(t *testing.T) {
	backend := newFakeBackend()
	r := renderer.New(backend)
	require.NoError(t, r.Initialize("test", 800, 600))

	texture, err := r.CreateTexture(rgbaImage(2, 2))
	require.NoError(t, err)

	require.NoError(t, r.DrawTriangles(twoTriangles()))
	require.NoError(t, r.DrawTrianglesTextured(twoTriangles(), texture))
	require.NoError(t, r.Present())

	assert.Equal(t, []uint32{6, 6}, backend.drawCounts, "two completed draw operations")
	assert.Equal(t, "EndFrame", backend.calls[len(backend.calls)-1])

	require.NoError(t, r.Shutdown())
	assert.ElementsMatch(t, []string{
		metadata.BUILTIN_SHADER_NAME_FLAT,
		metadata.BUILTIN_SHADER_NAME_TEXTURED,
	}, backend.destroyedPrograms)
	assert.Equal(t, 1, backend.shutdowns)
}
