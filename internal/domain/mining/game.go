package mining

// Game bundles one run's grid, resource systems and vehicle. It is the unit
// a host session owns and ticks.
type Game struct {
	Config  WorldConfig
	Grid    *TileGrid
	Fuel    *FuelTank
	Hull    *HullPlating
	Drill   *DrillBit
	Engine  *Engine
	Cooling *CoolingSystem
	Economy *Economy
	Vehicle *VehicleController
}

func NewGame(cfg WorldConfig) *Game {
	cfg = cfg.normalized()
	g := &Game{
		Config:  cfg,
		Grid:    Generate(cfg),
		Fuel:    NewFuelTank(),
		Hull:    NewHullPlating(),
		Drill:   NewDrillBit(),
		Engine:  NewEngine(),
		Cooling: NewCoolingSystem(),
		Economy: NewEconomy(),
	}
	g.Vehicle = NewVehicleController(g.Grid, g.systems())
	return g
}

func (g *Game) systems() Systems {
	return Systems{
		Fuel:    g.Fuel,
		Hull:    g.Hull,
		Drill:   g.Drill,
		Engine:  g.Engine,
		Cooling: g.Cooling,
		Economy: g.Economy,
	}
}

// Respawn is the death flow: back to spawn with a fresh tank and hull so the
// run can continue on the same grid. Credits and upgrades persist; cargo is
// forfeit.
func (g *Game) Respawn() {
	g.Fuel.Refill()
	g.Hull.Repair()
	g.Economy.Restore(g.Economy.Level(), 0, g.Economy.Credits(), g.Economy.MaxDepth())
	g.Vehicle.TeleportToSpawn()
}
