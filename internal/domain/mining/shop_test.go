package mining

import (
	"errors"
	"testing"
)

func newSurfaceGame() *Game {
	return NewGame(WorldConfig{Width: 16, Height: 40, SurfaceRow: 3, Seed: 9})
}

func TestApplyUpgrade_DebitsAndAdvances(t *testing.T) {
	g := newSurfaceGame()
	next, ok := g.Drill.NextUpgrade()
	if !ok {
		t.Fatalf("expected a next drill upgrade")
	}
	g.Economy.Credit(next.Cost + 100)

	if err := g.ApplyUpgrade(UpgradeDrill); err != nil {
		t.Fatalf("upgrade error: %v", err)
	}
	if g.Drill.Level() != 1 {
		t.Fatalf("drill level not advanced: %d", g.Drill.Level())
	}
	if g.Economy.Credits() != 100 {
		t.Fatalf("expected 100 credits left, got %d", g.Economy.Credits())
	}
}

func TestApplyUpgrade_InsufficientCredits(t *testing.T) {
	g := newSurfaceGame()
	err := g.ApplyUpgrade(UpgradeEngine)
	if !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}
	if g.Engine.Level() != 0 {
		t.Fatalf("failed upgrade advanced the ladder")
	}
}

func TestApplyUpgrade_LadderEnd(t *testing.T) {
	g := newSurfaceGame()
	g.Economy.Credit(1 << 30)
	for g.ApplyUpgrade(UpgradeCooling) == nil {
	}
	err := g.ApplyUpgrade(UpgradeCooling)
	if !errors.Is(err, ErrUpgradeMaxed) {
		t.Fatalf("expected ErrUpgradeMaxed, got %v", err)
	}
}

func TestApplyUpgrade_UnknownTarget(t *testing.T) {
	g := newSurfaceGame()
	g.Economy.Credit(1 << 30)
	if err := g.ApplyUpgrade(UpgradeTarget("warp")); !errors.Is(err, ErrUnknownUpgradeTarget) {
		t.Fatalf("expected ErrUnknownUpgradeTarget, got %v", err)
	}
}

func TestSurfaceOps_RequireSurface(t *testing.T) {
	g := newSurfaceGame()
	g.Vehicle.RestorePosition(5, g.Grid.SurfaceRow()+4)

	if err := g.ApplyUpgrade(UpgradeHull); !errors.Is(err, ErrNotAtSurface) {
		t.Fatalf("expected ErrNotAtSurface for upgrade, got %v", err)
	}
	if _, _, err := g.Refuel(); !errors.Is(err, ErrNotAtSurface) {
		t.Fatalf("expected ErrNotAtSurface for refuel, got %v", err)
	}
	if _, _, err := g.Repair(); !errors.Is(err, ErrNotAtSurface) {
		t.Fatalf("expected ErrNotAtSurface for repair, got %v", err)
	}
	if _, err := g.SellCargo(); !errors.Is(err, ErrNotAtSurface) {
		t.Fatalf("expected ErrNotAtSurface for sale, got %v", err)
	}
}

func TestRefuel_PartialWhenCreditsShort(t *testing.T) {
	g := newSurfaceGame()
	g.Fuel.Consume(50)
	g.Economy.Credit(20) // buys 10 units at 2/unit

	units, cost, err := g.Refuel()
	if err != nil {
		t.Fatalf("refuel error: %v", err)
	}
	if units != 10 {
		t.Fatalf("expected 10 units, got %f", units)
	}
	if cost != 20 {
		t.Fatalf("expected cost 20, got %d", cost)
	}
	if g.Economy.Credits() != 0 {
		t.Fatalf("expected all credits spent, got %d", g.Economy.Credits())
	}
}

func TestRepair_FullWhenAffordable(t *testing.T) {
	g := newSurfaceGame()
	g.Hull.TakeDamage(40)
	g.Economy.Credit(1000)

	units, cost, err := g.Repair()
	if err != nil {
		t.Fatalf("repair error: %v", err)
	}
	if units != 40 {
		t.Fatalf("expected 40 units restored, got %f", units)
	}
	if cost != 40*RepairCostPerUnit {
		t.Fatalf("expected cost %d, got %d", 40*RepairCostPerUnit, cost)
	}
	if g.Hull.Integrity() != g.Hull.MaxIntegrity() {
		t.Fatalf("hull not fully repaired")
	}
}

func TestSellCargo_CreditsValue(t *testing.T) {
	g := newSurfaceGame()
	g.Economy.CollectOre(resultFor(TileSilverOre))

	sold, err := g.SellCargo()
	if err != nil {
		t.Fatalf("sell error: %v", err)
	}
	if sold != TileSilverOre.Value() {
		t.Fatalf("expected %d sold, got %d", TileSilverOre.Value(), sold)
	}
	if g.Economy.CargoValue() != 0 {
		t.Fatalf("hold not emptied")
	}
}

func TestGame_RespawnKeepsCreditsDropsCargo(t *testing.T) {
	g := newSurfaceGame()
	g.Economy.Credit(500)
	g.Economy.CollectOre(resultFor(TileGoldOre))
	g.Fuel.Consume(30)
	g.Hull.TakeDamage(50)
	g.Vehicle.RestorePosition(5, g.Grid.SurfaceRow()+6)

	g.Respawn()

	if g.Economy.Credits() != 500 {
		t.Fatalf("respawn changed credits: %d", g.Economy.Credits())
	}
	if g.Economy.CargoValue() != 0 {
		t.Fatalf("respawn kept cargo")
	}
	if g.Fuel.Amount() != g.Fuel.Capacity() {
		t.Fatalf("respawn did not refill fuel")
	}
	if g.Hull.Integrity() != g.Hull.MaxIntegrity() {
		t.Fatalf("respawn did not repair hull")
	}
	if g.Vehicle.Cell() != SpawnCell(g.Grid) {
		t.Fatalf("respawn not at spawn: %+v", g.Vehicle.Cell())
	}
}
