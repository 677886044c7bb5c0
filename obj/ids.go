package obj

// Object type ids with special behaviour.
const (
	IDBlock               = 1
	IDSpike               = 8
	IDBlueGravityPortal   = 10
	IDYellowGravityPortal = 11
	IDCubePortal          = 12
	IDShipPortal          = 13
	IDStartPos            = 31
	IDYellowPad           = 35
	IDYellowOrb           = 36
	IDBallPortal          = 47
	IDBlueOrb             = 84
	IDNotMiniPortal       = 99
	IDMiniPortal          = 101
	IDUfoPortal           = 111
	IDDualPortal          = 286
	IDSinglePortal        = 287
)

// Ids in [TriggerRangeStart, TriggerRangeEnd) are authoring-time triggers
// (colour, move, pulse...) with no physical footprint.
const (
	TriggerRangeStart = 22
	TriggerRangeEnd   = 34
)

// InTriggerRange reports whether id is an authoring-time trigger.
func InTriggerRange(id int) bool {
	return id >= TriggerRangeStart && id < TriggerRangeEnd
}

// IsTrigger reports whether objects of this id only fire on contact and never
// act as floors, ceilings or walls.
func IsTrigger(id int) bool {
	switch id {
	case IDBlueGravityPortal, IDYellowGravityPortal,
		IDCubePortal, IDShipPortal, IDBallPortal, IDUfoPortal,
		IDNotMiniPortal, IDMiniPortal, IDDualPortal, IDSinglePortal,
		IDYellowPad, IDYellowOrb, IDBlueOrb:
		return true
	}
	return false
}

// IsDeadly reports whether touching an object of this id kills the player.
func IsDeadly(id int) bool {
	return id == IDSpike
}
