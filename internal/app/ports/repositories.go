package ports

import (
	"context"
	"time"

	"diggle/internal/domain/mining"
)

// SaveSlotRecord is the opaque persisted form of a run: the seed plus
// everything needed to rebuild the grid and ledgers. Tile state is stored as
// the mined-cell list, not the full grid.
type SaveSlotRecord struct {
	SlotID string

	Seed       int64
	Width      int
	Height     int
	SurfaceRow int

	CellX int
	CellY int

	FuelLevel  int
	FuelAmount float64
	HullLevel  int
	HullValue  float64

	DrillLevel   int
	EngineLevel  int
	CoolingLevel int
	CargoLevel   int

	Credits    int
	CargoValue int
	MaxDepth   int

	MinedCells []mining.Cell

	Version int64
	SavedAt time.Time
}

type SaveSlotRepository interface {
	Get(ctx context.Context, slotID string) (SaveSlotRecord, error)
	// SaveWithVersion creates the slot when expectedVersion is 0 and
	// otherwise replaces it only if the stored version matches, returning
	// ErrConflict when it does not.
	SaveWithVersion(ctx context.Context, rec SaveSlotRecord, expectedVersion int64) error
}

// RunRecord is one finished run, appended when the controller signals game
// over.
type RunRecord struct {
	RunID     string
	SessionID string
	Cause     string
	Depth     int
	Credits   int
	Ticks     uint64
	EndedAt   time.Time
}

type RunRepository interface {
	Append(ctx context.Context, rec RunRecord) error
	ListRecent(ctx context.Context, limit int) ([]RunRecord, error)
}
