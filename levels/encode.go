package levels

import (
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashphys/obj"
)

// Encode writes a level string that Decode turns back into the same objects
// and checkpoints. Checkpoints after the default start are written as
// start-position records following the objects.
func Encode(header string, objects []obj.Object, checkpoints []cp.Vector) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, o := range objects {
		writeRecord(&sb, o.ID, o.X, o.Y)
	}
	if len(checkpoints) > 1 {
		for _, c := range checkpoints[1:] {
			writeRecord(&sb, obj.IDStartPos, c.X, c.Y)
		}
	}
	return sb.String()
}

// EncodeData is Encode applied to a decoded level.
func EncodeData(d *Data) string {
	return Encode(d.Header, d.Objects, d.Checkpoints)
}

func writeRecord(sb *strings.Builder, id int, x, y float64) {
	sb.WriteString(recordSep)
	sb.WriteString(keyID)
	sb.WriteString(tokenSep)
	sb.WriteString(strconv.Itoa(id))
	sb.WriteString(tokenSep)
	sb.WriteString(keyX)
	sb.WriteString(tokenSep)
	sb.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	sb.WriteString(tokenSep)
	sb.WriteString(keyY)
	sb.WriteString(tokenSep)
	sb.WriteString(strconv.FormatFloat(y, 'f', -1, 64))
}
