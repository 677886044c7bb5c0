package levels

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed hitboxes.json *.txt *.dat
var LevelsFS embed.FS

const hitboxesFile = "hitboxes.json"

// LoadLevelFromFS decodes one of the embedded levels.
func LoadLevelFromFS(name string, table *HitboxTable) (*Data, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, stageError(StageRead, fmt.Errorf("embedded %s: %w", name, err))
	}
	return Parse(data, table)
}
