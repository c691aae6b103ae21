package gormrepo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"diggle/internal/app/ports"
	"diggle/internal/domain/mining"
)

// Runs only against a real database:
//
//	DIGGLE_TEST_DB_DSN=postgres://... go test ./internal/adapter/repo/gorm/
func openTestDB(t *testing.T) SaveSlotRepo {
	t.Helper()
	dsn := os.Getenv("DIGGLE_TEST_DB_DSN")
	if dsn == "" {
		t.Skip("DIGGLE_TEST_DB_DSN not set")
	}
	db, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSaveSlotRepo(db)
}

func TestSaveSlotRepo_RoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	slotID := "it-slot-" + time.Now().UTC().Format("20060102150405.000")

	rec := ports.SaveSlotRecord{
		SlotID:     slotID,
		Seed:       99,
		Width:      40,
		Height:     120,
		SurfaceRow: 4,
		CellX:      20,
		CellY:      30,
		FuelLevel:  1,
		FuelAmount: 42.5,
		HullLevel:  1,
		HullValue:  120,
		Credits:    500,
		MaxDepth:   26,
		MinedCells: []mining.Cell{{X: 20, Y: 5}, {X: 20, Y: 6}},
		Version:    1,
		SavedAt:    time.Now().UTC(),
	}
	if err := repo.SaveWithVersion(ctx, rec, 0); err != nil {
		t.Fatalf("create slot: %v", err)
	}

	got, err := repo.Get(ctx, slotID)
	if err != nil {
		t.Fatalf("get slot: %v", err)
	}
	if got.Seed != rec.Seed || got.CellY != rec.CellY || got.FuelAmount != rec.FuelAmount {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.MinedCells) != 2 || got.MinedCells[0] != (mining.Cell{X: 20, Y: 5}) {
		t.Fatalf("mined cells mismatch: %+v", got.MinedCells)
	}
}

func TestSaveSlotRepo_VersionConflict(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	slotID := "it-conflict-" + time.Now().UTC().Format("20060102150405.000")

	rec := ports.SaveSlotRecord{SlotID: slotID, Seed: 1, Version: 1, SavedAt: time.Now().UTC()}
	if err := repo.SaveWithVersion(ctx, rec, 0); err != nil {
		t.Fatalf("create slot: %v", err)
	}

	rec.Version = 2
	if err := repo.SaveWithVersion(ctx, rec, 7); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, rec, 1); err != nil {
		t.Fatalf("update with matching version: %v", err)
	}
}
