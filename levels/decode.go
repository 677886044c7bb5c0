package levels

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashphys/common"
	"github.com/milk9111/dashphys/obj"
)

const (
	recordSep = ";"
	tokenSep  = ","

	keyID = "1"
	keyX  = "2"
	keyY  = "3"
)

// DefaultStart is the level-start checkpoint every decoded level begins with:
// resting on the floor at x = 0.
var DefaultStart = cp.Vector{X: 0, Y: common.HalfObjectSize}

// Data is a decoded level.
type Data struct {
	Header      string
	Objects     []obj.Object
	Checkpoints []cp.Vector // never empty; [0] is DefaultStart

	// Triggers counts records dropped for being in the trigger range,
	// Unmapped those dropped for having no hitbox.
	Triggers int
	Unmapped int
}

type record struct {
	id   int
	x, y float64
}

// Decode parses a raw level string. The first record is the header; every
// other record is a flat key,value list of which only keys 1 (id), 2 (x) and
// 3 (y) are read. Decoding stops at the first malformed record.
func Decode(payload string, table *HitboxTable) (*Data, error) {
	if table == nil {
		return nil, stageError(StageHitbox, ErrNoHitboxTable)
	}

	records := strings.Split(payload, recordSep)
	d := &Data{
		Header:      records[0],
		Checkpoints: []cp.Vector{DefaultStart},
	}

	for n, raw := range records[1:] {
		if raw == "" {
			continue
		}
		r, err := parseRecord(raw)
		if err != nil {
			return nil, &DecodeError{Stage: StageParse, Record: n + 1, Err: err}
		}

		if r.id == obj.IDStartPos {
			d.Checkpoints = append(d.Checkpoints, cp.Vector{X: r.x, Y: r.y})
		}
		if obj.InTriggerRange(r.id) {
			d.Triggers++
			continue
		}
		box, ok := table.Lookup(r.id)
		if !ok {
			d.Unmapped++
			continue
		}
		d.Objects = append(d.Objects, obj.NewObject(r.id, r.x, r.y, box))
	}
	return d, nil
}

func parseRecord(raw string) (record, error) {
	tokens := strings.Split(raw, tokenSep)
	if len(tokens)%2 != 0 {
		return record{}, ErrOddRecord
	}

	var (
		r                 record
		hasID, hasX, hasY bool
		err               error
	)
	for i := 0; i < len(tokens); i += 2 {
		key, value := tokens[i], tokens[i+1]
		switch key {
		case keyID:
			r.id, err = strconv.Atoi(value)
			hasID = true
		case keyX:
			r.x, err = parseCoord(value)
			hasX = true
		case keyY:
			r.y, err = parseCoord(value)
			hasY = true
		}
		if err != nil {
			return record{}, fmt.Errorf("key %s: %w", key, err)
		}
	}

	switch {
	case !hasID:
		return record{}, fmt.Errorf("%w: id", ErrMissingField)
	case !hasX:
		return record{}, fmt.Errorf("%w: x", ErrMissingField)
	case !hasY:
		return record{}, fmt.Errorf("%w: y", ErrMissingField)
	}
	return r, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s", ErrNonFinite, s)
	}
	return v, nil
}

// Parse decodes a level file's contents, unwrapping the container first when
// the data is packaged.
func Parse(data []byte, table *HitboxTable) (*Data, error) {
	payload := string(bytes.TrimSpace(data))
	if IsPackaged(data) {
		var err error
		if payload, err = Unwrap(data); err != nil {
			return nil, err
		}
	}
	return Decode(payload, table)
}

// ReadFile reads and decodes the level at path.
func ReadFile(path string, table *HitboxTable) (*Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stageError(StageRead, err)
	}
	return Parse(data, table)
}
