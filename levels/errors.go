package levels

import (
	"errors"
	"fmt"
)

// Stage names the step of level loading that failed.
type Stage string

const (
	StageRead       Stage = "read"
	StageUnwrap     Stage = "unwrap"
	StageBase64     Stage = "base64"
	StageDecompress Stage = "decompress"
	StageParse      Stage = "parse"
	StageHitbox     Stage = "hitbox"
)

var (
	ErrMarkerNotFound = errors.New("container marker not found")
	ErrMissingField   = errors.New("missing required field")
	ErrOddRecord      = errors.New("record has a key without a value")
	ErrNoHitboxTable  = errors.New("no hitbox table")
	ErrNonFinite      = errors.New("coordinate is not finite")
)

// DecodeError is returned for every failure while turning a level file into
// objects. Record is the 1-based index of the offending object record, or 0
// when the failure is not tied to a record.
type DecodeError struct {
	Stage  Stage
	Record int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("levels: %s record %d: %v", e.Stage, e.Record, e.Err)
	}
	return fmt.Sprintf("levels: %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, err error) error {
	return &DecodeError{Stage: stage, Err: err}
}
