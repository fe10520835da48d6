package renderer

import (
	"github.com/eabellows/chickpea/engine/core"
	"github.com/eabellows/chickpea/engine/shading"
)

// DrawCall is one batched submission: shared uniforms, a bound sampler, the
// quad geometry and the per-instance attributes. Everything here is
// read-only for the duration of Draw; updates between draw calls are the
// caller's business.
type DrawCall struct {
	Uniforms  shading.Uniforms
	Sampler   *Sampler
	Vertices  []shading.Vertex
	Indices   []uint32
	Instances []shading.Instance
}

// NewQuadDrawCall assembles a draw call rendering the given mesh once per
// instance.
func NewQuadDrawCall(u shading.Uniforms, s *Sampler, mesh *QuadMesh, instances []shading.Instance) *DrawCall {
	return &DrawCall{
		Uniforms:  u,
		Sampler:   s,
		Vertices:  mesh.Vertices[:],
		Indices:   mesh.Indices[:],
		Instances: instances,
	}
}

// Draw runs the whole two-stage pipeline for one call: the vertex stage once
// per corner per instance, triangle assembly from the index list, then
// rasterization which interpolates the varyings and invokes the fragment
// stage per covered pixel. Fragment output overwrites the target; blending
// stays disabled like the original draw parameters.
func (fb *Framebuffer) Draw(call *DrawCall) error {
	if len(call.Vertices) == 0 || len(call.Indices) == 0 || len(call.Instances) == 0 {
		return core.ErrEmptyDrawCall
	}
	if call.Sampler == nil || call.Sampler.Texture == nil {
		return core.ErrTextureUnbound
	}

	varyings := make([]shading.Varyings, len(call.Vertices))
	var vertexCount, fragmentCount uint64

	for _, inst := range call.Instances {
		for i, v := range call.Vertices {
			varyings[i] = shading.VertexStage(call.Uniforms, inst, v)
		}
		vertexCount += uint64(len(call.Vertices))

		for i := 0; i+2 < len(call.Indices); i += 3 {
			fragmentCount += fb.rasterTriangle(
				call.Sampler,
				varyings[call.Indices[i+0]],
				varyings[call.Indices[i+1]],
				varyings[call.Indices[i+2]],
			)
		}
	}

	core.MetricsCountShading(vertexCount, fragmentCount)
	return nil
}
