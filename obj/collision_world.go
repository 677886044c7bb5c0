package obj

import (
	"iter"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashphys/common"
)

// Scene yields the objects that may touch a box, in ascending level order.
// The order is significant: it decides trigger precedence.
type Scene interface {
	Query(box common.Box) iter.Seq2[int, *Object]
}

// Objects is a Scene that scans every object.
type Objects []Object

func (s Objects) Query(_ common.Box) iter.Seq2[int, *Object] {
	return func(yield func(int, *Object) bool) {
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// columnWidth is the width of one broad-phase column.
const columnWidth = 8 * common.ObjectSize

// queryMargin widens queries so that objects touching the query box are
// never culled by rounding.
const queryMargin = 1.0

type column struct {
	bounds  cp.BB
	indices []int // ascending
}

// CollisionWorld buckets a level's objects into vertical columns so a query
// only visits objects near the player. It never reorders objects.
type CollisionWorld struct {
	objects []Object
	columns map[int]*column
	bounds  cp.BB
	scratch []int
}

// NewCollisionWorld indexes objects. The slice is retained, not copied, and
// must not be modified afterwards.
func NewCollisionWorld(objects []Object) *CollisionWorld {
	cw := &CollisionWorld{
		objects: objects,
		columns: make(map[int]*column),
	}
	for i := range objects {
		bb := objects[i].WorldBox().BB()
		if i == 0 {
			cw.bounds = bb
		} else {
			cw.bounds = cw.bounds.Merge(bb)
		}
		for c := columnOf(bb.L); c <= columnOf(bb.R); c++ {
			col, ok := cw.columns[c]
			if !ok {
				col = &column{bounds: bb}
				cw.columns[c] = col
			} else {
				col.bounds = col.bounds.Merge(bb)
			}
			col.indices = append(col.indices, i)
		}
	}
	return cw
}

func columnOf(x float64) int {
	return int(math.Floor(x / columnWidth))
}

// Objects returns the indexed objects in level order.
func (cw *CollisionWorld) Objects() []Object {
	if cw == nil {
		return nil
	}
	return cw.objects
}

// Bounds returns the union of all object boxes. It is the zero BB for an
// empty level.
func (cw *CollisionWorld) Bounds() cp.BB {
	if cw == nil {
		return cp.BB{}
	}
	return cw.bounds
}

// Query yields candidate objects for box in ascending index order. The
// returned sequence is only valid until the next call to Query.
func (cw *CollisionWorld) Query(box common.Box) iter.Seq2[int, *Object] {
	return func(yield func(int, *Object) bool) {
		if cw == nil || len(cw.objects) == 0 {
			return
		}
		q := box.Expand(queryMargin).BB()
		first, last := columnOf(q.L), columnOf(q.R)

		cw.scratch = cw.scratch[:0]
		spanned := 0
		for c := first; c <= last; c++ {
			col, ok := cw.columns[c]
			if !ok || !col.bounds.Intersects(q) {
				continue
			}
			cw.scratch = append(cw.scratch, col.indices...)
			spanned++
		}
		if spanned > 1 {
			slices.Sort(cw.scratch)
			cw.scratch = slices.Compact(cw.scratch)
		}

		for _, i := range cw.scratch {
			o := &cw.objects[i]
			if !o.WorldBox().BB().Intersects(q) {
				continue
			}
			if !yield(i, o) {
				return
			}
		}
	}
}
