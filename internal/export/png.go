package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

func init() {
	Register(Format{Name: "png", Render: renderPNG})
}

// Latitude reference lines drawn over the map, dashed 6 px on / 4 px off.
const (
	dashOn     = 6
	dashPeriod = 10
)

// renderPNG writes the biome map as world.png: one pixel per tile, contour
// darkening, plus dashed equator, tropic and polar-circle overlays.
func renderPNG(req Request) error {
	w := req.World
	img := image.NewRGBA(image.Rect(0, 0, w.Width, w.Height))

	colors := tileColors(w)
	for q := 0; q < w.Width; q++ {
		for r := 0; r < w.Height; r++ {
			c := colors[w.Index(q, r)]
			img.SetRGBA(q, r, color.RGBA{c[0], c[1], c[2], 255})
		}
	}

	drawLatitudeLines(img)

	return writePNG(filepath.Join(req.Dir, "world.png"), img)
}

// drawLatitudeLines overlays dashed reference lines: equator in red, the
// tropics in amber, the polar circles in cyan. Rows outside the image are
// skipped, which happens on very short maps.
func drawLatitudeLines(img *image.RGBA) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	h := float64(height)

	lines := []struct {
		row float64
		col color.RGBA
	}{
		{h * 0.5, color.RGBA{220, 50, 50, 255}},
		{h * (0.5 + 23.5/180.0), color.RGBA{220, 150, 0, 255}},
		{h * (0.5 - 23.5/180.0), color.RGBA{220, 150, 0, 255}},
		{h * (0.5 + 66.5/180.0), color.RGBA{0, 200, 240, 255}},
		{h * (0.5 - 66.5/180.0), color.RGBA{0, 200, 240, 255}},
	}

	for _, ln := range lines {
		row := int(math.Round(ln.row))
		if row < 0 || row >= height {
			continue
		}
		for x := 0; x < width; x++ {
			if x%dashPeriod < dashOn {
				img.SetRGBA(x, row, ln.col)
			}
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
