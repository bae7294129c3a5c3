package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	Register(Format{Name: "json", Render: renderJSON})
}

// renderJSON serializes the whole world verbatim into world.json.
func renderJSON(req Request) error {
	data, err := json.MarshalIndent(req.World, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(req.Dir, "world.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
