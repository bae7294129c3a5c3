package gen

import "math"

// project maps grid cell (q, r) onto the unit sphere. Columns span the full
// longitude circle and rows run from the south pole to the north pole, so
// noise sampled at the projected point wraps seamlessly across the left and
// right map edges and converges correctly at the poles.
func project(q, r, width, height int) (x, y, z float64) {
	lon := float64(q) / float64(width) * 2 * math.Pi
	lat := float64(r)/float64(height)*math.Pi - math.Pi/2

	return math.Cos(lat) * math.Cos(lon),
		math.Cos(lat) * math.Sin(lon),
		math.Sin(lat)
}
