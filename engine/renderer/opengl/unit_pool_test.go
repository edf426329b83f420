package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/uchiha/engine/core"
)

func TestUnitPoolIgnoresHandleValues(t *testing.T) {
	pool := newUnitPool()

	// handles well beyond the unit count still get small unit indices
	unit, err := pool.acquire(4093)
	require.NoError(t, err)
	assert.Equal(t, 0, unit)

	unit, err = pool.acquire(70000)
	require.NoError(t, err)
	assert.Equal(t, 1, unit)
}

func TestUnitPoolIsStablePerHandle(t *testing.T) {
	pool := newUnitPool()

	first, err := pool.acquire(42)
	require.NoError(t, err)
	second, err := pool.acquire(42)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnitPoolReleaseRecycles(t *testing.T) {
	pool := newUnitPool()

	unit, err := pool.acquire(1)
	require.NoError(t, err)
	pool.release(1)

	reused, err := pool.acquire(2)
	require.NoError(t, err)
	assert.Equal(t, unit, reused)

	// releasing an unknown handle is harmless
	pool.release(999)
}

func TestUnitPoolExhaustion(t *testing.T) {
	pool := newUnitPool()

	for i := 0; i < maxTextureUnits; i++ {
		_, err := pool.acquire(uint32(100 + i))
		require.NoError(t, err)
	}
	_, err := pool.acquire(9999)
	assert.ErrorIs(t, err, core.ErrNoTextureUnits)
}
