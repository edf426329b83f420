package metadata_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

func TestVertexLayoutMatchesWireContract(t *testing.T) {
	var v metadata.Vertex

	assert.Equal(t, uintptr(metadata.VERTEX_SIZE), unsafe.Sizeof(v), "vertex stride")
	assert.Equal(t, uintptr(metadata.VERTEX_POSITION_OFFSET), unsafe.Offsetof(v.X), "position offset")
	assert.Equal(t, uintptr(metadata.VERTEX_COLOR_OFFSET), unsafe.Offsetof(v.R), "color offset")
	assert.Equal(t, uintptr(metadata.VERTEX_TEXCOORD_OFFSET), unsafe.Offsetof(v.U), "texcoord offset")

	assert.Equal(t, 36, metadata.VERTEX_SIZE)
	assert.Equal(t, 0, metadata.VERTEX_POSITION_OFFSET)
	assert.Equal(t, 12, metadata.VERTEX_COLOR_OFFSET)
	assert.Equal(t, 28, metadata.VERTEX_TEXCOORD_OFFSET)
}

func TestAttributeSlots(t *testing.T) {
	flat := metadata.FlatAttributes()
	require.Len(t, flat, 2)
	assert.Equal(t, metadata.VertexAttribute{Location: 0, Components: 3, Offset: 0}, flat[0])
	assert.Equal(t, metadata.VertexAttribute{Location: 1, Components: 4, Offset: 12}, flat[1])

	textured := metadata.TexturedAttributes()
	require.Len(t, textured, 3)
	assert.Equal(t, flat[0], textured[0])
	assert.Equal(t, flat[1], textured[1])
	assert.Equal(t, metadata.VertexAttribute{Location: 2, Components: 2, Offset: 28}, textured[2])
}

// numberedTriangle builds a triangle whose scalar fields hold consecutive
// values starting at base, so flattening order is fully observable.
func numberedTriangle(base float32) metadata.Triangle {
	var vs [3]metadata.Vertex
	n := base
	for i := range vs {
		vs[i] = metadata.Vertex{
			X: n, Y: n + 1, Z: n + 2,
			R: n + 3, G: n + 4, B: n + 5, A: n + 6,
			U: n + 7, V: n + 8,
		}
		n += metadata.VERTEX_FLOATS
	}
	return metadata.Triangle{Vertices: vs}
}

func TestFlattenTrianglesPreservesInputOrder(t *testing.T) {
	triangles := []metadata.Triangle{numberedTriangle(0), numberedTriangle(27)}

	stream := metadata.FlattenTriangles(triangles)
	require.Len(t, stream, 2*3*metadata.VERTEX_FLOATS)

	for i, value := range stream {
		assert.Equal(t, float32(i), value, "scalar %d out of order", i)
	}
}

func TestFlattenTrianglesIdempotent(t *testing.T) {
	triangles := []metadata.Triangle{numberedTriangle(3), numberedTriangle(99)}

	first := metadata.FlattenTriangles(triangles)
	second := metadata.FlattenTriangles(triangles)
	assert.Equal(t, first, second, "identical re-submission must produce identical streams")
}

func TestFlattenTrianglesEmpty(t *testing.T) {
	assert.Empty(t, metadata.FlattenTriangles(nil))
	assert.Empty(t, metadata.FlattenTriangles([]metadata.Triangle{}))
}
