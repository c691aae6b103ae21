package mining

import "errors"

// Surface operations: trade and maintenance the vehicle can perform while
// resting on the surface row. The storefront itself lives outside the core;
// these are the rules it drives.

var (
	ErrNotAtSurface         = errors.New("vehicle is not at the surface")
	ErrUpgradeMaxed         = errors.New("upgrade ladder exhausted")
	ErrInsufficientCredits  = errors.New("insufficient credits")
	ErrUnknownUpgradeTarget = errors.New("unknown upgrade target")
)

// UpgradeTarget names one of the six upgrade ladders.
type UpgradeTarget string

const (
	UpgradeFuel    UpgradeTarget = "fuel"
	UpgradeHull    UpgradeTarget = "hull"
	UpgradeDrill   UpgradeTarget = "drill"
	UpgradeEngine  UpgradeTarget = "engine"
	UpgradeCooling UpgradeTarget = "cooling"
	UpgradeCargo   UpgradeTarget = "cargo"
)

// ApplyUpgrade debits the next rung's cost and advances the targeted ladder.
func (g *Game) ApplyUpgrade(target UpgradeTarget) error {
	if !g.Vehicle.AtSurface() {
		return ErrNotAtSurface
	}
	switch target {
	case UpgradeFuel, UpgradeHull, UpgradeDrill, UpgradeEngine, UpgradeCooling, UpgradeCargo:
	default:
		return ErrUnknownUpgradeTarget
	}
	cost, ok := g.nextUpgradeCost(target)
	if !ok {
		return ErrUpgradeMaxed
	}
	if !g.Economy.CanAfford(cost) {
		return ErrInsufficientCredits
	}
	applied := false
	switch target {
	case UpgradeFuel:
		applied = g.Fuel.Upgrade()
	case UpgradeHull:
		applied = g.Hull.Upgrade()
	case UpgradeDrill:
		applied = g.Drill.Upgrade()
	case UpgradeEngine:
		applied = g.Engine.Upgrade()
	case UpgradeCooling:
		applied = g.Cooling.Upgrade()
	case UpgradeCargo:
		applied = g.Economy.Upgrade()
	}
	if !applied {
		return ErrUpgradeMaxed
	}
	g.Economy.Debit(cost)
	return nil
}

func (g *Game) nextUpgradeCost(target UpgradeTarget) (int, bool) {
	switch target {
	case UpgradeFuel:
		lvl, ok := g.Fuel.NextUpgrade()
		return lvl.Cost, ok
	case UpgradeHull:
		lvl, ok := g.Hull.NextUpgrade()
		return lvl.Cost, ok
	case UpgradeDrill:
		lvl, ok := g.Drill.NextUpgrade()
		return lvl.Cost, ok
	case UpgradeEngine:
		lvl, ok := g.Engine.NextUpgrade()
		return lvl.Cost, ok
	case UpgradeCooling:
		lvl, ok := g.Cooling.NextUpgrade()
		return lvl.Cost, ok
	case UpgradeCargo:
		lvl, ok := g.Economy.NextUpgrade()
		return lvl.Cost, ok
	}
	return 0, false
}

// Refuel fills the tank, charging per unit. Partial fills happen when
// credits run short.
func (g *Game) Refuel() (units float64, cost int, err error) {
	if !g.Vehicle.AtSurface() {
		return 0, 0, ErrNotAtSurface
	}
	missing := g.Fuel.Capacity() - g.Fuel.Amount()
	affordable := float64(g.Economy.Credits()) / RefuelCostPerUnit
	if affordable < missing {
		missing = affordable
	}
	if missing <= 0 {
		return 0, 0, nil
	}
	cost = int(missing * RefuelCostPerUnit)
	g.Economy.Debit(cost)
	g.Fuel.Restore(g.Fuel.Level(), g.Fuel.Amount()+missing)
	return missing, cost, nil
}

// Repair restores hull integrity, charging per unit, partial like Refuel.
func (g *Game) Repair() (units float64, cost int, err error) {
	if !g.Vehicle.AtSurface() {
		return 0, 0, ErrNotAtSurface
	}
	missing := g.Hull.MaxIntegrity() - g.Hull.Integrity()
	affordable := float64(g.Economy.Credits()) / RepairCostPerUnit
	if affordable < missing {
		missing = affordable
	}
	if missing <= 0 {
		return 0, 0, nil
	}
	cost = int(missing * RepairCostPerUnit)
	g.Economy.Debit(cost)
	g.Hull.Restore(g.Hull.Level(), g.Hull.Integrity()+missing)
	return missing, cost, nil
}

// SellCargo trades held ore for credits at the surface.
func (g *Game) SellCargo() (int, error) {
	if !g.Vehicle.AtSurface() {
		return 0, ErrNotAtSurface
	}
	return g.Economy.SellCargo(), nil
}
