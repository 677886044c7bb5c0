package levels

import (
	"fmt"
	"maps"
	"os"
	"strconv"

	"github.com/milk9111/dashphys/common"
	"gopkg.in/yaml.v3"
)

// HitboxTable maps object type ids to their local bounding box. It is
// immutable once built.
type HitboxTable struct {
	boxes map[int]common.Box
}

// NewHitboxTable copies boxes into a new table.
func NewHitboxTable(boxes map[int]common.Box) *HitboxTable {
	return &HitboxTable{boxes: maps.Clone(boxes)}
}

// Lookup returns the local box for id.
func (t *HitboxTable) Lookup(id int) (common.Box, bool) {
	if t == nil {
		return common.Box{}, false
	}
	b, ok := t.boxes[id]
	return b, ok
}

func (t *HitboxTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.boxes)
}

type hitboxEntry struct {
	X float64  `yaml:"x"`
	Y float64  `yaml:"y"`
	W *float64 `yaml:"w"`
	H *float64 `yaml:"h"`
}

// ParseHitboxes reads a table keyed by decimal object id with {x, y, w, h}
// entries. x and y are the top-left offset from the object origin in a
// y-down frame; y is negated on load. JSON input is accepted as YAML.
func ParseHitboxes(data []byte) (*HitboxTable, error) {
	var raw map[string]hitboxEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, stageError(StageHitbox, fmt.Errorf("unmarshal: %w", err))
	}

	boxes := make(map[int]common.Box, len(raw))
	for key, e := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, stageError(StageHitbox, fmt.Errorf("id %q: %w", key, err))
		}
		if e.W == nil || e.H == nil {
			return nil, stageError(StageHitbox, fmt.Errorf("id %d: %w (w, h)", id, ErrMissingField))
		}
		if *e.W < 0 || *e.H < 0 {
			return nil, stageError(StageHitbox, fmt.Errorf("id %d: negative size %gx%g", id, *e.W, *e.H))
		}
		boxes[id] = common.Box{X: e.X, Y: -e.Y, Width: *e.W, Height: *e.H}
	}
	return &HitboxTable{boxes: boxes}, nil
}

// LoadHitboxes reads and parses the table at path. A missing file is fatal.
func LoadHitboxes(path string) (*HitboxTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stageError(StageHitbox, err)
	}
	return ParseHitboxes(data)
}

// DefaultHitboxes returns the embedded table.
func DefaultHitboxes() (*HitboxTable, error) {
	data, err := LevelsFS.ReadFile(hitboxesFile)
	if err != nil {
		return nil, stageError(StageHitbox, err)
	}
	return ParseHitboxes(data)
}
