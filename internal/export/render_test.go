package export

import (
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"planetgen/internal/gen"
	"planetgen/internal/planet"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func rgbAt(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func TestRenderPNG(t *testing.T) {
	dir := t.TempDir()
	w := flatWorld(20, 10, planet.BiomePlain, 0.3)
	if err := renderPNG(Request{World: w, Dir: dir}); err != nil {
		t.Fatalf("render: %v", err)
	}

	img := decodePNG(t, filepath.Join(dir, "world.png"))
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("map is %dx%d, want 20x10", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Equator lands on row 5 of a 10-row map, dashed 6 on 4 off.
	if got := rgbAt(img, 0, 5); got != [3]uint8{220, 50, 50} {
		t.Errorf("equator pixel = %v, want red", got)
	}
	if got := rgbAt(img, 7, 5); got != [3]uint8{100, 200, 80} {
		t.Errorf("dash gap pixel = %v, want plain base", got)
	}
	// Tropics round to rows 4 and 6, polar circles to rows 1 and 9.
	if got := rgbAt(img, 0, 6); got != [3]uint8{220, 150, 0} {
		t.Errorf("tropic pixel = %v, want amber", got)
	}
	if got := rgbAt(img, 0, 1); got != [3]uint8{0, 200, 240} {
		t.Errorf("polar pixel = %v, want cyan", got)
	}
	// An untouched row keeps the biome colour.
	if got := rgbAt(img, 3, 2); got != [3]uint8{100, 200, 80} {
		t.Errorf("interior pixel = %v, want plain base", got)
	}
}

func TestRenderSVGRunLength(t *testing.T) {
	dir := t.TempDir()
	w := flatWorld(3, 2, planet.BiomePlain, -0.3)
	// Row 0 holds two ocean tiles then one deep-ocean tile; row 1 stays plain.
	w.Tiles[w.Index(0, 0)].Biome = planet.BiomeOcean
	w.Tiles[w.Index(1, 0)].Biome = planet.BiomeOcean
	w.Tiles[w.Index(2, 0)].Biome = planet.BiomeDeepOcean

	if err := renderSVG(Request{World: w, Dir: dir}); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "world.svg"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	s := string(data)

	if !strings.Contains(s, `viewBox="0 0 3 2"`) {
		t.Error("missing viewBox")
	}
	if got := strings.Count(s, "<rect"); got != 3 {
		t.Errorf("got %d rects, want 3 (two runs in row 0, one in row 1)\n%s", got, s)
	}
	for _, rect := range []string{
		`<rect x="0" y="0" width="2" height="1" fill="#1E46C8"/>`,
		`<rect x="2" y="0" width="1" height="1" fill="#0A148C"/>`,
		`<rect x="0" y="1" width="3" height="1" fill="#64C850"/>`,
	} {
		if !strings.Contains(s, rect) {
			t.Errorf("missing %s", rect)
		}
	}
	if !strings.HasSuffix(s, "</svg>\n") {
		t.Error("missing closing tag")
	}
}

func TestRenderJSON(t *testing.T) {
	dir := t.TempDir()
	w := flatWorld(2, 2, planet.BiomeSavanna, 0.1)
	if err := renderJSON(Request{World: w, Dir: dir}); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "world.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var decoded struct {
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Seed       uint32 `json:"seed"`
		PlanetType string `json:"planet_type"`
		Tiles      []struct {
			Q     int    `json:"q"`
			R     int    `json:"r"`
			Biome string `json:"biome"`
		} `json:"tiles"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Width != 2 || decoded.Height != 2 || decoded.Seed != 9 {
		t.Errorf("header fields wrong: %+v", decoded)
	}
	if decoded.PlanetType != "Terran" {
		t.Errorf("planet_type = %q, want Terran", decoded.PlanetType)
	}
	if len(decoded.Tiles) != 4 {
		t.Fatalf("got %d tiles, want 4", len(decoded.Tiles))
	}
	if decoded.Tiles[0].Biome != "Savanna" {
		t.Errorf("tile biome = %q, want Savanna", decoded.Tiles[0].Biome)
	}
}

func TestRenderLegend(t *testing.T) {
	dir := t.TempDir()
	w := flatWorld(4, 2, planet.BiomePlain, 0.3)
	w.Tiles[0].Biome = planet.BiomeDeepOcean

	if err := renderLegend(Request{World: w, Dir: dir}); err != nil {
		t.Fatalf("render: %v", err)
	}
	img := decodePNG(t, filepath.Join(dir, "legend.png"))

	// Two biomes and six metadata rows on this world pin the panel size.
	if img.Bounds().Dx() != 189 || img.Bounds().Dy() != 221 {
		t.Fatalf("legend is %dx%d, want 189x221", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := rgbAt(img, 0, 0); got != [3]uint8{22, 22, 35} {
		t.Errorf("background = %v", got)
	}
	// First swatch row starts at y=169; its interior carries the deep-ocean
	// fill and its corner the border colour.
	if got := rgbAt(img, legendPad+2, 171); got != [3]uint8{10, 20, 140} {
		t.Errorf("first swatch fill = %v, want deep ocean", got)
	}
	if got := rgbAt(img, legendPad, 169); got != [3]uint8{80, 80, 100} {
		t.Errorf("swatch border = %v", got)
	}
}

func TestRenderNoiseMaps(t *testing.T) {
	p := gen.DefaultParams()
	p.Width, p.Height = 8, 4
	p.Seed = 77

	w, err := gen.Generate(p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fields, err := gen.SampleFields(p)
	if err != nil {
		t.Fatalf("sample fields: %v", err)
	}

	dir := t.TempDir()
	if err := renderNoiseMaps(Request{World: w, Fields: fields, Dir: dir}); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, m := range noiseMaps {
		img := decodePNG(t, filepath.Join(dir, m.file))
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
			t.Errorf("%s is %dx%d, want 8x4", m.file, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
	if len(noiseMaps) != 11 {
		t.Errorf("expected 11 diagnostic maps, have %d", len(noiseMaps))
	}

	if err := renderNoiseMaps(Request{World: w, Dir: dir}); err == nil {
		t.Error("renderNoiseMaps accepted a request without field samples")
	}
}

func TestJetRamp(t *testing.T) {
	cases := []struct {
		t    float64
		want [3]uint8
	}{
		{0.0, [3]uint8{0, 0, 127}},
		{0.25, [3]uint8{0, 127, 255}},
		{0.5, [3]uint8{127, 255, 127}},
		{0.75, [3]uint8{255, 127, 0}},
		{1.0, [3]uint8{127, 0, 0}},
	}
	for _, tc := range cases {
		r, g, b := jet(tc.t)
		if got := [3]uint8{r, g, b}; got != tc.want {
			t.Errorf("jet(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}

	// Signed values center on green, clamped at the ends of the ramp.
	r, g, b := diverge(0)
	if got := [3]uint8{r, g, b}; got != [3]uint8{127, 255, 127} {
		t.Errorf("diverge(0) = %v, want green", got)
	}
	r, g, b = diverge(-5)
	if got := [3]uint8{r, g, b}; got != [3]uint8{0, 0, 127} {
		t.Errorf("diverge(-5) = %v, want ramp start", got)
	}
	r, g, b = sequential(2)
	if got := [3]uint8{r, g, b}; got != [3]uint8{127, 0, 0} {
		t.Errorf("sequential(2) = %v, want ramp end", got)
	}
}
