package saveload

import (
	"context"
	"errors"
	"strings"

	"diggle/internal/app/ports"
	"diggle/internal/app/session"
	"diggle/internal/domain/mining"
)

var ErrInvalidRequest = errors.New("invalid save/load request")

// UseCase persists runs into an opaque slot store and rebuilds them. Only
// the seed, the mined cells and the ledgers are stored; the grid itself is
// regenerated on load.
type UseCase struct {
	Sessions *session.Manager
	Slots    ports.SaveSlotRepository
}

type SaveRequest struct {
	SessionID string
	SlotID    string
}

type SaveResponse struct {
	SlotID  string `json:"slot_id"`
	Version int64  `json:"version"`
}

func (u UseCase) Save(ctx context.Context, req SaveRequest) (SaveResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.SlotID) == "" {
		return SaveResponse{}, ErrInvalidRequest
	}
	s, err := u.Sessions.Get(req.SessionID)
	if err != nil {
		return SaveResponse{}, err
	}

	rec := s.SaveRecord(req.SlotID)

	var expected int64
	if existing, err := u.Slots.Get(ctx, req.SlotID); err == nil {
		expected = existing.Version
	} else if !errors.Is(err, ports.ErrNotFound) {
		return SaveResponse{}, err
	}
	rec.Version = expected + 1

	if err := u.Slots.SaveWithVersion(ctx, rec, expected); err != nil {
		return SaveResponse{}, err
	}
	return SaveResponse{SlotID: req.SlotID, Version: rec.Version}, nil
}

type LoadRequest struct {
	SlotID string
}

type LoadResponse struct {
	SessionID string `json:"session_id"`
}

// Load rebuilds a saved run in a fresh session: regenerate the grid from the
// stored seed, replay mined cells, restore the ledgers, and place the
// vehicle back on its saved cell rather than at spawn.
func (u UseCase) Load(ctx context.Context, req LoadRequest) (LoadResponse, error) {
	if strings.TrimSpace(req.SlotID) == "" {
		return LoadResponse{}, ErrInvalidRequest
	}
	rec, err := u.Slots.Get(ctx, req.SlotID)
	if err != nil {
		return LoadResponse{}, err
	}

	game := mining.NewGame(mining.WorldConfig{
		Width:      rec.Width,
		Height:     rec.Height,
		SurfaceRow: rec.SurfaceRow,
		Seed:       rec.Seed,
	})
	game.Grid.ApplyMined(rec.MinedCells)
	game.Fuel.Restore(rec.FuelLevel, rec.FuelAmount)
	game.Hull.Restore(rec.HullLevel, rec.HullValue)
	game.Drill.Restore(rec.DrillLevel)
	game.Engine.Restore(rec.EngineLevel)
	game.Cooling.Restore(rec.CoolingLevel)
	game.Economy.Restore(rec.CargoLevel, rec.CargoValue, rec.Credits, rec.MaxDepth)
	game.Vehicle.RestorePosition(rec.CellX, rec.CellY)

	s := u.Sessions.Adopt(game)
	return LoadResponse{SessionID: s.ID}, nil
}
