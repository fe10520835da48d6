package renderer

import (
	"github.com/eabellows/chickpea/engine/math"
)

// FilterMode selects how a sampler reconstructs a value between texels.
type FilterMode uint8

const (
	// FilterNearest snaps to the closest texel.
	FilterNearest FilterMode = iota
	// FilterBilinear blends the four surrounding texels.
	FilterBilinear
)

// WrapMode selects how texture coordinates outside [0,1] are resolved.
type WrapMode uint8

const (
	// WrapRepeat tiles the texture.
	WrapRepeat WrapMode = iota
	// WrapClampToEdge extends the border texels.
	WrapClampToEdge
)

// Sampler binds a texture with a filter and wrap configuration. It satisfies
// shading.Sampler2D; the fragment stage never learns which filter was chosen.
type Sampler struct {
	Texture *Texture
	Filter  FilterMode
	Wrap    WrapMode
}

// NewSampler returns a sampler over the given texture.
func NewSampler(t *Texture, filter FilterMode, wrap WrapMode) *Sampler {
	return &Sampler{Texture: t, Filter: filter, Wrap: wrap}
}

// Sample returns the RGBA value of the bound texture at a normalized
// coordinate. v points up in texture space, matching the convention of the
// quad geometry, so the row index is flipped here.
func (s *Sampler) Sample(uv math.Vec2) math.Vec4 {
	t := s.Texture
	w := int(t.Width)
	h := int(t.Height)

	// Texel-space coordinates with (0,0) at the bottom-left texel center.
	fx := uv.X*float32(w) - 0.5
	fy := uv.Y*float32(h) - 0.5

	if s.Filter == FilterNearest {
		x := s.wrapAxis(kfloor(fx+0.5), w)
		y := s.wrapAxis(kfloor(fy+0.5), h)
		return t.Texel(x, h-1-y)
	}

	x0 := kfloor(fx)
	y0 := kfloor(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	ix0 := s.wrapAxis(x0, w)
	ix1 := s.wrapAxis(x0+1, w)
	iy0 := s.wrapAxis(y0, h)
	iy1 := s.wrapAxis(y0+1, h)

	bottom := t.Texel(ix0, h-1-iy0).Lerp(t.Texel(ix1, h-1-iy0), tx)
	top := t.Texel(ix0, h-1-iy1).Lerp(t.Texel(ix1, h-1-iy1), tx)
	return bottom.Lerp(top, ty)
}

func (s *Sampler) wrapAxis(i, n int) int {
	switch s.Wrap {
	case WrapRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default: // WrapClampToEdge
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

func kfloor(x float32) int {
	i := int(x)
	if x < 0 && float32(i) != x {
		i--
	}
	return i
}
