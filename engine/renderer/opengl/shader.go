package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

// ShaderCreate compiles both stages, binds the attribute locations and links
// the program. Attribute bindings are applied between compile and link
// because they only take effect when made before the link step. Stage
// handles are released on every exit path; a failed create never leaks GPU
// objects and never returns a program.
func (b *Backend) ShaderCreate(config *metadata.ShaderConfig) (*metadata.ShaderProgram, error) {
	vertex, err := compileStage(metadata.ShaderStageVertex, gl.VERTEX_SHADER, config.VertexSource)
	if err != nil {
		return nil, err
	}
	fragment, err := compileStage(metadata.ShaderStageFragment, gl.FRAGMENT_SHADER, config.FragmentSource)
	if err != nil {
		gl.DeleteShader(vertex)
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)

	for _, attribute := range config.Attributes {
		gl.BindAttribLocation(program, attribute.Location, gl.Str(attribute.Name+"\x00"))
	}
	gl.LinkProgram(program)

	// The linked program keeps its own copy of the stages.
	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)
	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		lg := readProgramLog(program)
		gl.DeleteProgram(program)
		return nil, &core.ShaderLinkError{Log: lg}
	}

	core.LogDebug("shader program '%s' compiled and linked", config.Name)
	return &metadata.ShaderProgram{
		Name:   config.Name,
		Handle: program,
	}, nil
}

func (b *Backend) ShaderDestroy(program *metadata.ShaderProgram) {
	if program == nil || program.Handle == 0 {
		return
	}
	gl.DeleteProgram(program.Handle)
	program.Handle = 0
}

func (b *Backend) ShaderUse(program *metadata.ShaderProgram) error {
	if program == nil || program.Handle == 0 {
		return core.ErrProgramUnusable
	}
	gl.UseProgram(program.Handle)
	return nil
}

// ShaderBindSampler points the named sampler uniform at the given texture.
// The texture unit comes from the backend's unit pool rather than from the
// texture handle value: handles are driver-chosen and unbounded, units are a
// small fixed resource.
func (b *Backend) ShaderBindSampler(program *metadata.ShaderProgram, uniformName string, texture *metadata.Texture) error {
	if program == nil || program.Handle == 0 {
		return core.ErrProgramUnusable
	}
	if texture == nil || texture.Handle == 0 {
		return core.ErrInvalidTexture
	}

	location := gl.GetUniformLocation(program.Handle, gl.Str(uniformName+"\x00"))
	if location < 0 {
		return fmt.Errorf("uniform '%s' not found in program '%s'", uniformName, program.Name)
	}

	unit, err := b.units.acquire(texture.Handle)
	if err != nil {
		return err
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, texture.Handle)
	gl.Uniform1i(location, int32(unit))
	return b.checkError("sampler bind")
}

func compileStage(stageName string, stageType uint32, source string) (uint32, error) {
	handle := gl.CreateShader(stageType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		lg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(lg))
		gl.DeleteShader(handle)

		return 0, &core.ShaderCompileError{
			Stage: stageName,
			Log:   strings.TrimRight(lg, "\x00"),
		}
	}
	return handle, nil
}

func readProgramLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	lg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}
