package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// ImageResourceParams controls image decoding.
type ImageResourceParams struct {
	// FlipY mirrors the image vertically at load time, for sources authored
	// with the origin at the bottom.
	FlipY bool
}

type ImageLoader struct{}

func (il *ImageLoader) Load(path string, params interface{}) (*Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	if p, ok := params.(*ImageResourceParams); ok && p.FlipY {
		img = flipVertical(img)
	}

	bounds := img.Bounds()
	return &Resource{
		Name:     "image",
		FullPath: path,
		DataSize: uint64(bounds.Dx() * bounds.Dy() * 4),
		Data:     img,
	}, nil
}

func (il *ImageLoader) Unload(*Resource) error {
	return nil
}

func flipVertical(img image.Image) image.Image {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		row := image.Rect(0, y, bounds.Dx(), y+1)
		src := image.Pt(bounds.Min.X, bounds.Max.Y-1-y)
		draw.Draw(out, row, img, src, draw.Src)
	}
	return out
}
