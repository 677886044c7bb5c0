package obj

import "github.com/milk9111/dashphys/common"

// Object is a static level entity. Its world box is recomputed from the local
// box on demand.
type Object struct {
	X, Y  float64
	Box   common.Box // relative to (X, Y)
	ID    int
	Death bool
	Solid bool
}

// NewObject builds an object of the given id at (x, y) using the local hitbox
// box. Death and solidity follow from the id.
func NewObject(id int, x, y float64, box common.Box) Object {
	return Object{
		X:     x,
		Y:     y,
		Box:   box,
		ID:    id,
		Death: IsDeadly(id),
		Solid: !IsTrigger(id),
	}
}

// DefaultBox is the one-unit box centered on the object origin.
func DefaultBox() common.Box {
	return common.CenteredBox(0, 0, common.ObjectSize, common.ObjectSize)
}

// WorldBox returns the object's box in world coordinates.
func (o *Object) WorldBox() common.Box {
	return o.Box.OffsetBy(o.X, o.Y)
}
