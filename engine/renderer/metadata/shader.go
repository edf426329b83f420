package metadata

const (
	/** @brief The name of the built-in flat color shader. */
	BUILTIN_SHADER_NAME_FLAT string = "shader.builtin.flat"
	/** @brief The name of the built-in textured shader. */
	BUILTIN_SHADER_NAME_TEXTURED string = "shader.builtin.textured"

	/** @brief The sampler uniform the textured shader reads its texture from. */
	SAMPLER_UNIFORM_NAME string = "s_texture"
)

// Shader stage names used in diagnostics.
const (
	ShaderStageVertex   = "vertex"
	ShaderStageFragment = "fragment"
)

/**
 * @brief An attribute name bound to an explicit slot index. Bindings take
 * effect only when applied before the program link step, so the backend
 * applies them between compile and link.
 */
type AttributeBinding struct {
	Location uint32
	Name     string
}

/**
 * @brief Everything needed to compile and link one shader program.
 */
type ShaderConfig struct {
	Name           string
	VertexSource   string
	FragmentSource string
	/** @brief Ordered attribute bindings, applied before linking. */
	Attributes []AttributeBinding
}

/**
 * @brief A linked shader program on the frontend. A ShaderProgram only
 * exists in a usable state: creation either returns a linked program or an
 * error, never a half-compiled handle.
 */
type ShaderProgram struct {
	/** @brief The program Name, for diagnostics. */
	Name string
	/** @brief The linked program handle. Owned by the backend. */
	Handle uint32
	/** @brief Backend specific data. Owned by the backend. */
	InternalData interface{}
}

const flatVertexSource = `#version 330 core
layout (location = 0) in vec3 a_position;
layout (location = 1) in vec4 a_color;

out vec4 v_color;

void main()
{
    v_color = a_color;
    gl_Position = vec4(a_position, 1.0);
}
`

const flatFragmentSource = `#version 330 core
in vec4 v_color;

out vec4 frag_color;

void main()
{
    frag_color = v_color;
}
`

const texturedVertexSource = `#version 330 core
layout (location = 0) in vec3 a_position;
layout (location = 1) in vec4 a_color;
layout (location = 2) in vec2 a_tex_coord;

out vec4 v_color;
out vec2 v_tex_coord;

void main()
{
    v_color = a_color;
    v_tex_coord = a_tex_coord;
    gl_Position = vec4(a_position, 1.0);
}
`

const texturedFragmentSource = `#version 330 core
in vec4 v_color;
in vec2 v_tex_coord;

uniform sampler2D s_texture;
out vec4 frag_color;

void main()
{
    frag_color = texture(s_texture, v_tex_coord) * v_color;
}
`

// FlatShaderConfig returns the configuration of the built-in flat color
// program used by the untextured draw path.
func FlatShaderConfig() *ShaderConfig {
	return &ShaderConfig{
		Name:           BUILTIN_SHADER_NAME_FLAT,
		VertexSource:   flatVertexSource,
		FragmentSource: flatFragmentSource,
		Attributes: []AttributeBinding{
			{Location: 0, Name: "a_position"},
			{Location: 1, Name: "a_color"},
		},
	}
}

// TexturedShaderConfig returns the configuration of the built-in textured
// program used by the textured draw path.
func TexturedShaderConfig() *ShaderConfig {
	return &ShaderConfig{
		Name:           BUILTIN_SHADER_NAME_TEXTURED,
		VertexSource:   texturedVertexSource,
		FragmentSource: texturedFragmentSource,
		Attributes: []AttributeBinding{
			{Location: 0, Name: "a_position"},
			{Location: 1, Name: "a_color"},
			{Location: 2, Name: "a_tex_coord"},
		},
	}
}
