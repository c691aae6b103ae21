package saveload

import (
	"context"
	"errors"
	"testing"

	"diggle/internal/adapter/repo/memory"
	"diggle/internal/app/ports"
	"diggle/internal/app/session"
	"diggle/internal/domain/mining"

	"github.com/rs/zerolog"
)

func newFixture() (UseCase, *session.Manager) {
	m := session.NewManager(session.Config{
		World:  mining.DefaultWorldConfig(),
		Logger: zerolog.Nop(),
	})
	uc := UseCase{
		Sessions: m,
		Slots:    memory.NewSaveSlotRepo(memory.NewStore()),
	}
	return uc, m
}

func TestSave_Validation(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	if _, err := uc.Save(ctx, SaveRequest{SlotID: "a"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("blank session id: %v", err)
	}
	if _, err := uc.Save(ctx, SaveRequest{SessionID: "x"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("blank slot id: %v", err)
	}
	if _, err := uc.Save(ctx, SaveRequest{SessionID: "game-9", SlotID: "a"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("unknown session: %v", err)
	}
}

func TestLoad_Validation(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	if _, err := uc.Load(ctx, LoadRequest{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("blank slot id: %v", err)
	}
	if _, err := uc.Load(ctx, LoadRequest{SlotID: "missing"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("missing slot: %v", err)
	}
}

func TestSave_VersionsAdvance(t *testing.T) {
	uc, m := newFixture()
	s := m.Create(21)
	ctx := context.Background()

	first, err := uc.Save(ctx, SaveRequest{SessionID: s.ID, SlotID: "slot-1"})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.Version != 1 {
		t.Fatalf("first version: %d", first.Version)
	}

	second, err := uc.Save(ctx, SaveRequest{SessionID: s.ID, SlotID: "slot-1"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("second version: %d", second.Version)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	uc, m := newFixture()
	ctx := context.Background()

	// Build a run with visible progress: a dirt shaft under spawn, one tile
	// mined, some credits banked.
	g := mining.NewGame(mining.DefaultWorldConfig())
	spawn := mining.SpawnCell(g.Grid)
	for i := 1; i <= 3; i++ {
		g.Grid.SetTile(spawn.X, spawn.Y+i, mining.TileDirt)
	}
	s := m.Adopt(g)

	s.SetHeldDirection(mining.DirDown)
	dt := 1.0 / 20
	for i := 0; i < 400 && len(g.Grid.MinedCells()) == 0; i++ {
		s.Step(dt)
	}
	if len(g.Grid.MinedCells()) == 0 {
		t.Fatalf("setup dig never completed")
	}
	s.SetHeldDirection(mining.DirNone)
	for i := 0; i < 40 && s.Snapshot(0).Activity != mining.ActivityIdle; i++ {
		s.Step(dt)
	}
	g.Economy.Credit(420)

	if _, err := uc.Save(ctx, SaveRequest{SessionID: s.ID, SlotID: "slot-rt"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := uc.Load(ctx, LoadRequest{SlotID: "slot-rt"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SessionID == s.ID {
		t.Fatalf("load reused the live session")
	}

	ls, err := m.Get(loaded.SessionID)
	if err != nil {
		t.Fatalf("get loaded session: %v", err)
	}
	snap := ls.Snapshot(0)

	want := s.Snapshot(0)
	if snap.Cell != want.Cell {
		t.Fatalf("cell: got %+v want %+v", snap.Cell, want.Cell)
	}
	if snap.Credits != want.Credits {
		t.Fatalf("credits: got %d want %d", snap.Credits, want.Credits)
	}
	if snap.MaxDepth != want.MaxDepth {
		t.Fatalf("max depth: got %d want %d", snap.MaxDepth, want.MaxDepth)
	}
	if snap.Fuel.Amount != want.Fuel.Amount {
		t.Fatalf("fuel: got %v want %v", snap.Fuel.Amount, want.Fuel.Amount)
	}

	// Mined cells replay as empty tiles in the regenerated grid.
	lg := gameGridOf(t, m, loaded.SessionID)
	for _, c := range g.Grid.MinedCells() {
		tile, ok := lg.TileAt(c.X, c.Y)
		if !ok || tile.Type != mining.TileEmpty {
			t.Fatalf("mined cell %+v not replayed: %+v", c, tile)
		}
	}
}

func gameGridOf(t *testing.T, m *session.Manager, id string) *mining.TileGrid {
	t.Helper()
	s, err := m.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// The grid is not exposed directly; rebuild it from the save record.
	rec := s.SaveRecord("probe")
	grid := mining.Generate(mining.WorldConfig{
		Width:      rec.Width,
		Height:     rec.Height,
		SurfaceRow: rec.SurfaceRow,
		Seed:       rec.Seed,
	})
	grid.ApplyMined(rec.MinedCells)
	return grid
}
