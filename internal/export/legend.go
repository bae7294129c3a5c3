package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func init() {
	Register(Format{Name: "legend", Render: renderLegend})
}

// Legend layout. Character metrics come from the fixed-width 7x13 face.
const (
	legendPad        = 14
	legendCharW      = 7
	legendCharH      = 13
	legendSwatchW    = 48
	legendSwatchH    = legendCharH
	legendSwatchGap  = 8
	legendRowH       = legendSwatchH + 6
	legendMetaRowH   = legendCharH + 5
	legendSectionGap = 8
)

var (
	legendBG       = color.RGBA{22, 22, 35, 255}
	legendTitleC   = color.RGBA{240, 240, 240, 255}
	legendKeyC     = color.RGBA{140, 155, 190, 255}
	legendValC     = color.RGBA{220, 225, 240, 255}
	legendTextC    = color.RGBA{210, 210, 210, 255}
	legendBorderC  = color.RGBA{80, 80, 100, 255}
	legendDividerC = color.RGBA{55, 60, 88, 255}
)

// renderLegend writes legend.png: a titled panel with the planet metadata
// and one swatch row per biome that actually appears on the map, in
// canonical order.
func renderLegend(req Request) error {
	w := req.World
	biomes := w.BiomesPresent()

	meta := [][2]string{
		{"Planet", w.PlanetType.String()},
		{"Seed", strconv.FormatUint(uint64(w.Seed), 10)},
		{"Sea level", fmt.Sprintf("%+.2f", w.SeaLevel)},
		{"Volcanic", fmt.Sprintf("%.2f", w.VolcanicIntensity)},
		{"Circumference", fmt.Sprintf("%.0f km", w.CircumferenceKm)},
		{"Gravity", fmt.Sprintf("%.2f g", w.GravityModifier)},
	}

	const title = "BIOME LEGEND"

	maxBiomeLen := 10
	for _, b := range biomes {
		if n := len(b.Name()); n > maxBiomeLen {
			maxBiomeLen = n
		}
	}
	biomeColW := legendSwatchW + legendSwatchGap + maxBiomeLen*legendCharW

	maxKeyLen, maxValLen := 0, 0
	for _, kv := range meta {
		if n := len(kv[0]); n > maxKeyLen {
			maxKeyLen = n
		}
		if n := len(kv[1]); n > maxValLen {
			maxValLen = n
		}
	}
	keyColChars := maxKeyLen + 2 // room for ": "
	metaColW := (keyColChars + maxValLen) * legendCharW

	contentW := max(biomeColW, metaColW, len(title)*legendCharW)
	imgW := legendPad + contentW + legendPad

	dividerBlockH := legendSectionGap + 1 + legendSectionGap
	imgH := legendPad +
		legendCharH +
		dividerBlockH +
		len(meta)*legendMetaRowH +
		dividerBlockH +
		len(biomes)*legendRowH +
		legendPad

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), image.NewUniform(legendBG), image.Point{}, draw.Src)

	drawString(img, title, (imgW-len(title)*legendCharW)/2, legendPad, legendTitleC)
	y := legendPad + legendCharH

	y += legendSectionGap
	drawDivider(img, y)
	y += 1 + legendSectionGap

	valX := legendPad + keyColChars*legendCharW
	for _, kv := range meta {
		drawString(img, kv[0]+": ", legendPad, y, legendKeyC)
		drawString(img, kv[1], valX, y, legendValC)
		y += legendMetaRowH
	}

	y += legendSectionGap
	drawDivider(img, y)
	y += 1 + legendSectionGap

	for _, b := range biomes {
		r8, g8, b8 := b.Color()
		fillRect(img, legendPad, y, legendSwatchW, legendSwatchH, color.RGBA{r8, g8, b8, 255})
		outlineRect(img, legendPad, y, legendSwatchW, legendSwatchH, legendBorderC)
		drawString(img, b.Name(), legendPad+legendSwatchW+legendSwatchGap, y, legendTextC)
		y += legendRowH
	}

	return writePNG(filepath.Join(req.Dir, "legend.png"), img)
}

// drawString renders s with its top-left corner at (x, y).
func drawString(img *image.RGBA, s string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

func drawDivider(img *image.RGBA, y int) {
	for x := legendPad; x < img.Bounds().Dx()-legendPad; x++ {
		img.SetRGBA(x, y, legendDividerC)
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

func outlineRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dx := 0; dx < w; dx++ {
		img.SetRGBA(x+dx, y, c)
		img.SetRGBA(x+dx, y+h-1, c)
	}
	for dy := 0; dy < h; dy++ {
		img.SetRGBA(x, y+dy, c)
		img.SetRGBA(x+w-1, y+dy, c)
	}
}
