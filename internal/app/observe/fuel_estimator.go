package observe

import (
	"diggle/internal/app/session"
	"diggle/internal/domain/mining"
)

// estimateFuel derives a dig budget from the snapshot using gravel as the
// reference material, the median cost of the early bands.
func estimateFuel(snap session.Snapshot) FuelFeedback {
	ref := mining.TileGravel.FuelCost()
	digs := 0
	if ref > 0 {
		digs = int(snap.Fuel.Amount / ref)
	}
	return FuelFeedback{
		IsLow:             snap.Fuel.Low,
		IsCritical:        snap.Fuel.Critical,
		EstimatedDigsLeft: digs,
		ReferenceDigCost:  ref,
	}
}
