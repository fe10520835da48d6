package renderer

import (
	"github.com/eabellows/chickpea/engine/math"
	"github.com/eabellows/chickpea/engine/shading"
)

// QuadMesh is the shared geometry every tile instance draws with: four
// corner vertices and the six indices that split the quad into two
// triangles. The same mesh is reused across all instances of a draw call;
// per-tile placement comes from the instance WorldPos attribute.
type QuadMesh struct {
	Vertices [4]shading.Vertex
	Indices  [6]uint32
}

// NewQuadMesh builds a quad of the given size whose lower-left corner sits
// at the instance origin, textured with the given UV rectangle and tinted
// uniformly.
func NewQuadMesh(size math.Vec2, uv math.UVRect, tint math.Vec3) *QuadMesh {
	return NewQuadMeshTinted(size, uv, [4]math.Vec3{tint, tint, tint, tint})
}

// NewQuadMeshTinted builds a quad with an individual tint per corner, in the
// order bottom-left, bottom-right, top-right, top-left. Corner tints are
// interpolated across the quad's surface by the rasterizer.
func NewQuadMeshTinted(size math.Vec2, uv math.UVRect, tints [4]math.Vec3) *QuadMesh {
	return &QuadMesh{
		Vertices: [4]shading.Vertex{
			{
				Position:  math.NewVec2(0, 0),
				Color:     tints[0],
				TexCoords: math.NewVec2(uv.Min.X, uv.Min.Y),
			},
			{
				Position:  math.NewVec2(size.X, 0),
				Color:     tints[1],
				TexCoords: math.NewVec2(uv.Max.X, uv.Min.Y),
			},
			{
				Position:  math.NewVec2(size.X, size.Y),
				Color:     tints[2],
				TexCoords: math.NewVec2(uv.Max.X, uv.Max.Y),
			},
			{
				Position:  math.NewVec2(0, size.Y),
				Color:     tints[3],
				TexCoords: math.NewVec2(uv.Min.X, uv.Max.Y),
			},
		},
		Indices: [6]uint32{0, 1, 2, 2, 3, 0},
	}
}

// FullUV is the rectangle covering an entire texture.
func FullUV() math.UVRect {
	return math.UVRect{Min: math.NewVec2Zero(), Max: math.NewVec2One()}
}
