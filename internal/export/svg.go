package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	Register(Format{Name: "svg", Render: renderSVG})
}

// renderSVG writes the biome map as world.svg. Each row is run-length
// encoded: consecutive same-coloured tiles merge into one <rect>, which
// keeps the element count far below one per pixel on typical maps.
func renderSVG(req Request) error {
	w := req.World
	colors := tileColors(w)

	var buf bytes.Buffer
	buf.Grow(len(colors) * 48)

	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		w.Width, w.Height, w.Width, w.Height)

	for r := 0; r < w.Height; r++ {
		runStart := 0
		runColor := colors[w.Index(0, r)]

		for q := 1; q <= w.Width; q++ {
			var cur [3]uint8
			if q < w.Width {
				cur = colors[w.Index(q, r)]
			} else {
				// Sentinel that can never match the current run, so the
				// last run always flushes without a special case.
				cur = [3]uint8{runColor[0] ^ 0xFF, runColor[1] ^ 0xFF, runColor[2] ^ 0xFF}
			}

			if cur != runColor {
				fmt.Fprintf(&buf,
					"<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"1\" fill=\"#%02X%02X%02X\"/>\n",
					runStart, r, q-runStart, runColor[0], runColor[1], runColor[2])
				runStart = q
				runColor = cur
			}
		}
	}

	buf.WriteString("</svg>\n")

	path := filepath.Join(req.Dir, "world.svg")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
