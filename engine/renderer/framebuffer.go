package renderer

import (
	"image"
	"image/color"

	"github.com/google/uuid"

	"github.com/eabellows/chickpea/engine/math"
)

// Framebuffer is the render target the fragment stage's output lands in: a
// linear RGBA float32 surface that resolves to a stdlib image for encoding
// or inspection.
type Framebuffer struct {
	Name   string
	Width  uint32
	Height uint32

	pixels []math.Vec4
}

// NewFramebuffer allocates a cleared target of the given size.
func NewFramebuffer(width, height uint32) *Framebuffer {
	return &Framebuffer{
		Name:   uuid.New().String(),
		Width:  width,
		Height: height,
		pixels: make([]math.Vec4, width*height),
	}
}

// Clear fills the whole target with the given color.
func (fb *Framebuffer) Clear(c math.Vec4) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// At returns the stored color at a pixel coordinate, row 0 at the top.
func (fb *Framebuffer) At(x, y int) math.Vec4 {
	return fb.pixels[y*int(fb.Width)+x]
}

func (fb *Framebuffer) set(x, y int, c math.Vec4) {
	fb.pixels[y*int(fb.Width)+x] = c
}

// Resolve converts the float target into an 8-bit NRGBA image. Values are
// already clamped to [0,1] by the fragment stage; the clear color is clamped
// here in case the caller cleared outside that range.
func (fb *Framebuffer) Resolve() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(fb.Width), int(fb.Height)))
	for y := 0; y < int(fb.Height); y++ {
		for x := 0; x < int(fb.Width); x++ {
			c := fb.At(x, y).Clamp01()
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(c.X*255.0 + 0.5),
				G: uint8(c.Y*255.0 + 0.5),
				B: uint8(c.Z*255.0 + 0.5),
				A: uint8(c.W*255.0 + 0.5),
			})
		}
	}
	return img
}
