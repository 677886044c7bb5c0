package world

import (
	"fmt"

	"github.com/milk9111/dashphys/config"
	"github.com/milk9111/dashphys/levels"
	"github.com/milk9111/dashphys/logging"
	"go.uber.org/zap"
)

// SampleLevel is the embedded level used when no level path is given.
const SampleLevel = "sample.txt"

// Source names the files a level is built from. Empty paths select the
// embedded defaults.
type Source struct {
	Level    string
	Hitboxes string
	Tuning   string
}

// LoadHitboxTable loads the table at path, or the embedded one.
func LoadHitboxTable(path string) (*levels.HitboxTable, error) {
	if path == "" {
		return levels.DefaultHitboxes()
	}
	return levels.LoadHitboxes(path)
}

// Open loads the hitbox table, tuning and level named by src.
func Open(src Source, log *zap.Logger) (*Level, error) {
	log = logging.OrNop(log)

	table, err := LoadHitboxTable(src.Hitboxes)
	if err != nil {
		return nil, err
	}
	tuning, err := config.LoadTuning(src.Tuning)
	if err != nil {
		return nil, err
	}
	log.Debug("tuning loaded", zap.Any("tuning", tuning), zap.Int("hitboxes", table.Len()))

	if src.Level == "" {
		d, err := levels.LoadLevelFromFS(SampleLevel, table)
		if err != nil {
			return nil, fmt.Errorf("world: %w", err)
		}
		log.Info("level loaded", zap.String("path", "embedded:"+SampleLevel), zap.Int("objects", len(d.Objects)))
		return New(d, tuning.Physics(), log), nil
	}
	return Load(src.Level, table, tuning.Physics(), log)
}
