package core

import (
	"errors"
	"fmt"
)

var (
	// ErrTextureDecodeFailed is returned when an image could not be decoded
	// into a pixel buffer. No GPU texture is ever created in that case.
	ErrTextureDecodeFailed = errors.New("texture decode failed")
	// ErrTextureChannelCount is returned when a decoded image does not carry
	// the four channels the upload path requires.
	ErrTextureChannelCount = errors.New("texture pixel data is not RGBA")
	// ErrProgramUnusable is returned when a draw is attempted with a shader
	// program that never compiled or linked successfully.
	ErrProgramUnusable = errors.New("shader program is unusable")
	// ErrNoTextureUnits is returned when every texture unit of the sampler
	// pool is already occupied.
	ErrNoTextureUnits = errors.New("no free texture units")
	// ErrInvalidTexture is returned when a draw references a nil or already
	// destroyed texture.
	ErrInvalidTexture = errors.New("invalid texture")
	ErrUnknown        = errors.New("unknown")
)

// InitError is raised when engine startup fails. Fatal: the caller must not
// keep a partially constructed engine around.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("engine initialization failed at %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// ShaderCompileError carries the driver diagnostic log of a failed shader
// stage compilation. Non-fatal to the process, but the owning program must
// not be used for drawing.
type ShaderCompileError struct {
	Stage string
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ShaderLinkError carries the driver diagnostic log of a failed program link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link shader program: %s", e.Log)
}
