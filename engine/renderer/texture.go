package renderer

import (
	"image"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/eabellows/chickpea/engine/core"
	"github.com/eabellows/chickpea/engine/math"
)

// Texture is an immutable 2D pixel store bound as a sampling source for a
// draw call. Pixels are held as linear RGBA float32, one Vec4 per texel.
// Textures are created by the asset pipeline and never written by the
// shading stages.
type Texture struct {
	// The unique texture identifier.
	ID uint32
	// The texture Name. Auto-generated when not supplied.
	Name string
	// The texture Width in texels.
	Width uint32
	// The texture Height in texels.
	Height uint32
	// The Generation. Incremented every time the data is reloaded.
	Generation uint32

	texels []math.Vec4
}

// NewTextureFromImage converts any decoded image into a texture. 8-bit
// channel values map to [0,1] floats.
func NewTextureFromImage(name string, img image.Image) *Texture {
	if name == "" {
		name = uuid.New().String()
	}
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	// Texels hold straight alpha. Image.At reports premultiplied channels,
	// so the pixels go through an NRGBA buffer first and the raw channel
	// bytes are read from there.
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != image.Pt(0, 0) {
		buf := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(buf, buf.Bounds(), img, bounds.Min, draw.Src)
		nrgba = buf
	}

	t := &Texture{
		ID:     core.IdentifierAquireNewID(name),
		Name:   name,
		Width:  uint32(w),
		Height: uint32(h),
		texels: make([]math.Vec4, w*h),
	}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			t.texels[y*w+x] = math.NewVec4Create(
				float32(p[0])/0xff,
				float32(p[1])/0xff,
				float32(p[2])/0xff,
				float32(p[3])/0xff,
			)
		}
	}
	return t
}

// NewSolidTexture returns a 1x1 texture of the given color. Used as the
// default binding and by text rendering for untextured quads.
func NewSolidTexture(color math.Vec4) *Texture {
	name := uuid.New().String()
	return &Texture{
		ID:     core.IdentifierAquireNewID(name),
		Name:   name,
		Width:  1,
		Height: 1,
		texels: []math.Vec4{color},
	}
}

// Texel returns the stored value at the given texel coordinate. Coordinates
// outside the texture are the caller's responsibility; samplers apply their
// wrap mode before calling this.
func (t *Texture) Texel(x, y int) math.Vec4 {
	return t.texels[y*int(t.Width)+x]
}

// Destroy releases the texture's identifier slot.
func (t *Texture) Destroy() {
	if err := core.IdentifierReleaseID(t.ID); err != nil {
		core.LogWarn("texture %s: %s", t.Name, err.Error())
	}
	t.texels = nil
}
