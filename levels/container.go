package levels

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	openMarker  = "<k>k4</k><s>"
	closeMarker = "</s>"
)

// IsPackaged reports whether data looks like a packaged level file.
func IsPackaged(data []byte) bool {
	return bytes.Contains(data, []byte(openMarker))
}

// Unwrap extracts the level string from a packaged file: the payload between
// the markers is URL-safe base64 of a gzip stream. Trailing padding is
// optional.
func Unwrap(data []byte) (string, error) {
	s := string(data)
	start := strings.Index(s, openMarker)
	if start < 0 {
		return "", stageError(StageUnwrap, fmt.Errorf("%w: %s", ErrMarkerNotFound, openMarker))
	}
	s = s[start+len(openMarker):]
	end := strings.Index(s, closeMarker)
	if end < 0 {
		return "", stageError(StageUnwrap, fmt.Errorf("%w: %s", ErrMarkerNotFound, closeMarker))
	}
	payload := strings.TrimRight(strings.TrimSpace(s[:end]), "=")

	compressed, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", stageError(StageBase64, err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", stageError(StageDecompress, err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", stageError(StageDecompress, err)
	}
	return string(raw), nil
}

// Wrap packages a level string in the container format Unwrap reads.
func Wrap(level string) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(zw, level); err != nil {
		return nil, fmt.Errorf("levels: wrap: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("levels: wrap: %w", err)
	}

	var out bytes.Buffer
	out.WriteString(openMarker)
	out.WriteString(base64.URLEncoding.EncodeToString(buf.Bytes()))
	out.WriteString(closeMarker)
	return out.Bytes(), nil
}
