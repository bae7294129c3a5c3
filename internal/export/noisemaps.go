package export

import (
	"errors"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"planetgen/internal/gen"
)

func init() {
	Register(Format{Name: "noise-maps", NeedsFields: true, Render: renderNoiseMaps})
}

// noiseMap describes one diagnostic layer: the file it lands in, whether the
// signal is signed and how to read it from a field sample.
type noiseMap struct {
	file   string
	signed bool
	value  func(gen.FieldSample) float64
}

var noiseMaps = []noiseMap{
	{"noise_warp_x.png", true, func(f gen.FieldSample) float64 { return f.WarpX }},
	{"noise_warp_y.png", true, func(f gen.FieldSample) float64 { return f.WarpY }},
	{"noise_continent.png", true, func(f gen.FieldSample) float64 { return f.Continent }},
	{"noise_mountain.png", false, func(f gen.FieldSample) float64 { return f.Mountain }},
	{"noise_mountain_wt.png", false, func(f gen.FieldSample) float64 { return f.MountainWeight }},
	{"noise_elevation.png", true, func(f gen.FieldSample) float64 { return f.Elevation }},
	{"noise_biome_elev.png", true, func(f gen.FieldSample) float64 { return f.BiomeElevation }},
	{"noise_moisture.png", true, func(f gen.FieldSample) float64 { return f.Moisture }},
	{"noise_temperature.png", false, func(f gen.FieldSample) float64 { return f.Temperature }},
	{"noise_volcanic_raw.png", true, func(f gen.FieldSample) float64 { return f.VolcanicRaw }},
	{"noise_volcanic_zone.png", false, func(f gen.FieldSample) float64 { return f.VolcanicZone }},
}

// renderNoiseMaps writes every intermediate signal as a false-colour PNG.
// All maps share the jet ramp; signed signals are rescaled so zero lands on
// green, unsigned ones so zero is blue and one is red.
func renderNoiseMaps(req Request) error {
	if req.Fields == nil {
		return errors.New("noise-maps: no field samples in request")
	}
	w := req.World

	for _, m := range noiseMaps {
		img := image.NewRGBA(image.Rect(0, 0, w.Width, w.Height))
		for i, fs := range req.Fields {
			q := i / w.Height
			r := i % w.Height
			v := m.value(fs)
			var cr, cg, cb uint8
			if m.signed {
				cr, cg, cb = diverge(v)
			} else {
				cr, cg, cb = sequential(v)
			}
			img.SetRGBA(q, r, color.RGBA{cr, cg, cb, 255})
		}
		if err := writePNG(filepath.Join(req.Dir, m.file), img); err != nil {
			return err
		}
	}
	return nil
}

// jet maps t in [0,1] onto the blue, cyan, green, yellow, red ramp using
// shifted hat functions per channel.
func jet(t float64) (r, g, b uint8) {
	t = clampF(t, 0, 1)
	rf := clampF(1.5-math.Abs(4*t-3), 0, 1)
	gf := clampF(1.5-math.Abs(4*t-2), 0, 1)
	bf := clampF(1.5-math.Abs(4*t-1), 0, 1)
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

// diverge colours a signed value in [-1,1]; zero lands on green.
func diverge(v float64) (uint8, uint8, uint8) {
	return jet((clampF(v, -1, 1) + 1) * 0.5)
}

// sequential colours an unsigned value in [0,1].
func sequential(v float64) (uint8, uint8, uint8) {
	return jet(v)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
