package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderErrorsCarryDiagnostics(t *testing.T) {
	compile := &ShaderCompileError{Stage: "fragment", Log: "0:3: 'vec5' : undeclared identifier"}
	assert.Contains(t, compile.Error(), "fragment")
	assert.Contains(t, compile.Error(), "vec5")

	link := &ShaderLinkError{Log: "error: varying v_color not written"}
	assert.Contains(t, link.Error(), "v_color")
}

func TestInitErrorUnwraps(t *testing.T) {
	err := &InitError{Stage: "platform", Err: ErrUnknown}
	assert.Contains(t, err.Error(), "platform")
	assert.True(t, errors.Is(err, ErrUnknown))
}
