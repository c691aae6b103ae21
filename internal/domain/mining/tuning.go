package mining

// TileSize is the edge length of one grid cell in world units.
const TileSize = 16.0

const (
	BaseDriveSpeed = 64.0  // horizontal / retarget movement, units per second
	BaseFlySpeed   = 48.0  // upward flight, units per second
	FallSpeed      = 112.0 // gravity wins

	HorizontalMoveFuelCost = 0.25
	FlyMoveFuelCost        = 0.6

	SafeFallRows     = 3
	FallDamagePerRow = 15.0

	RevealRadius = 2

	FuelLowFraction      = 0.25
	FuelCriticalFraction = 0.10
	HullLowFraction      = 0.30
	HullCriticalFraction = 0.15
)

// Surface maintenance pricing. Only usable while the vehicle sits on the
// surface row.
const (
	RefuelCostPerUnit = 2
	RepairCostPerUnit = 3
)
