package shading

import (
	"github.com/eabellows/chickpea/engine/math"
)

// OverbrightFactor is the fixed brightness boost applied by the fragment
// stage before clamping. Base values at or below 0.5 survive the doubling
// unchanged in ratio; anything above saturates to full brightness, which is
// what gives tinted tiles their two-tone highlight.
const OverbrightFactor float32 = 2.0

// Vertex is one corner of a quad as uploaded by the batcher. Position is the
// corner offset local to the instance, Color the linear RGB tint and
// TexCoords the atlas sample coordinate for this corner.
type Vertex struct {
	Position  math.Vec2
	Color     math.Vec3
	TexCoords math.Vec2
}

// Instance carries the per-quad attributes. WorldPos places the whole quad
// within the tile-grid world and is constant across its four corners; keeping
// it separate from Vertex.Position lets the batcher upload one instance
// record per tile instead of re-deriving combined positions on the host side.
type Instance struct {
	WorldPos math.Vec2
}

// Uniforms is the state shared by every vertex of a draw call. It is supplied
// once per call by the renderer and never mutated by either stage.
type Uniforms struct {
	Matrix math.Mat4
}

// Varyings is the vertex stage output: the clip-space position consumed by
// the rasterizer plus the attributes interpolated across the primitive and
// handed to the fragment stage.
type Varyings struct {
	ClipPosition math.Vec4
	TexCoords    math.Vec2
	Color        math.Vec3
}

// Sampler2D yields an RGBA sample for a normalized texture coordinate.
// Filtering and wrapping are the sampler's decision, not the fragment
// stage's.
type Sampler2D interface {
	Sample(uv math.Vec2) math.Vec4
}

// VertexStage transforms one corner into clip space and forwards its
// attributes. The clip position is Matrix * (Position + WorldPos, 0, 1):
// depth is fixed at zero and w at one, and no clamping or bounds checking is
// performed. Out-of-frustum results are legitimate and left to downstream
// clipping.
func VertexStage(u Uniforms, inst Instance, v Vertex) Varyings {
	world := v.Position.Add(inst.WorldPos)
	return Varyings{
		ClipPosition: u.Matrix.MulVec4(math.NewVec4Create(world.X, world.Y, 0.0, 1.0)),
		TexCoords:    v.TexCoords,
		Color:        v.Color,
	}
}

// FragmentStage composites one output color from the interpolated varyings
// and the bound texture. The tint is extended with a constant 1.0 alpha, so
// the texture's own alpha is the only factor that can lower output opacity.
// Every channel, alpha included, goes through the same overbright multiply
// and [0,1] clamp; channels above 0.5 saturating to 1.0 is intended, not an
// overflow.
func FragmentStage(tex Sampler2D, v Varyings) math.Vec4 {
	sample := tex.Sample(v.TexCoords)
	provisional := v.Color.ToVec4(1.0).Mul(sample)
	return provisional.MulScalar(OverbrightFactor).Clamp01()
}
