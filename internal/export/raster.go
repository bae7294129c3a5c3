package export

import "planetgen/internal/planet"

// Elevation thresholds that produce darkened contour outlines. A tile
// darkens when it and a 4-connected neighbour straddle any level.
var contourLevels = [...]float64{-0.45, -0.15, 0.0, 0.15, 0.30, 0.45, 0.60, 0.75, 0.90}

// Fraction subtracted from a contour tile's colour; 0 leaves it unchanged,
// 1 turns it black.
const contourDarkness = 0.40

func crossesContour(a, b float64) bool {
	for _, lvl := range contourLevels {
		if (a < lvl) != (b < lvl) {
			return true
		}
	}
	return false
}

// tileColors returns the final per-tile RGB values, column-major like the
// tile slice: biome base colour with contour darkening applied. The PNG and
// SVG exporters share this so both draw identical maps.
func tileColors(w *planet.World) [][3]uint8 {
	colors := make([][3]uint8, len(w.Tiles))
	for _, tile := range w.Tiles {
		r8, g8, b8 := tile.Biome.Color()

		neighbours := [4][2]int{
			{tile.Q - 1, tile.R},
			{tile.Q + 1, tile.R},
			{tile.Q, tile.R - 1},
			{tile.Q, tile.R + 1},
		}
		for _, n := range neighbours {
			ne, ok := w.ElevationAt(n[0], n[1])
			if ok && crossesContour(tile.Elevation, ne) {
				r8 = uint8(float64(r8) * (1 - contourDarkness))
				g8 = uint8(float64(g8) * (1 - contourDarkness))
				b8 = uint8(float64(b8) * (1 - contourDarkness))
				break
			}
		}

		colors[w.Index(tile.Q, tile.R)] = [3]uint8{r8, g8, b8}
	}
	return colors
}
