package metadata

/**
 * @brief A single vertex of the fixed pipeline layout.
 *
 * The field order and count are part of the wire contract with the GPU:
 * the backend reads position, color and texture coordinate by byte offset
 * out of the interleaved stream, so reordering fields breaks the attribute
 * offset math below.
 */
type Vertex struct {
	/** @brief Position in normalized device coordinates. */
	X, Y, Z float32
	/** @brief Vertex Color, including alpha. */
	R, G, B, A float32
	/** @brief Texture coordinate. Ignored by the flat draw path. */
	U, V float32
}

const (
	/** @brief Number of float32 scalars packed per vertex. */
	VERTEX_FLOATS = 9
	/** @brief Byte stride between consecutive vertex records. */
	VERTEX_SIZE = VERTEX_FLOATS * 4

	/** @brief Byte offset of the position field within a vertex record. */
	VERTEX_POSITION_OFFSET = 0
	/** @brief Byte offset of the color field within a vertex record. */
	VERTEX_COLOR_OFFSET = 3 * 4
	/** @brief Byte offset of the texture coordinate field within a vertex record. */
	VERTEX_TEXCOORD_OFFSET = 7 * 4

	VERTEX_POSITION_COMPONENTS = 3
	VERTEX_COLOR_COMPONENTS    = 4
	VERTEX_TEXCOORD_COMPONENTS = 2
)

/**
 * @brief A Triangle is exactly three vertices. Value type, constructed fully
 * formed and immutable thereafter.
 */
type Triangle struct {
	Vertices [3]Vertex
}

func NewTriangle(v0, v1, v2 Vertex) Triangle {
	return Triangle{Vertices: [3]Vertex{v0, v1, v2}}
}

/**
 * @brief Describes one enabled attribute slot of the vertex layout.
 */
type VertexAttribute struct {
	/** @brief The attribute slot index the shader reads from. */
	Location uint32
	/** @brief Number of float scalars read per vertex. */
	Components int32
	/** @brief Byte offset from the start of a vertex record. */
	Offset int
}

// FlatAttributes returns the attribute slots enabled by the untextured draw
// path: position and color. The stride is always the full vertex size.
func FlatAttributes() []VertexAttribute {
	return []VertexAttribute{
		{Location: 0, Components: VERTEX_POSITION_COMPONENTS, Offset: VERTEX_POSITION_OFFSET},
		{Location: 1, Components: VERTEX_COLOR_COMPONENTS, Offset: VERTEX_COLOR_OFFSET},
	}
}

// TexturedAttributes returns the attribute slots enabled by the textured draw
// path: position, color and texture coordinate.
func TexturedAttributes() []VertexAttribute {
	return append(FlatAttributes(),
		VertexAttribute{Location: 2, Components: VERTEX_TEXCOORD_COMPONENTS, Offset: VERTEX_TEXCOORD_OFFSET},
	)
}

// FlattenTriangles turns a triangle sequence into the contiguous interleaved
// vertex stream uploaded to the GPU buffer: 3*N vertices in input order,
// VERTEX_FLOATS scalars each. An empty sequence yields an empty stream.
func FlattenTriangles(triangles []Triangle) []float32 {
	out := make([]float32, 0, len(triangles)*3*VERTEX_FLOATS)
	for _, t := range triangles {
		for _, v := range t.Vertices {
			out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B, v.A, v.U, v.V)
		}
	}
	return out
}
