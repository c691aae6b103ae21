package mining

// Each resource system owns its own numeric state and an ordered upgrade
// ladder with monotonic capability values. The next upgrade is simply the
// following table entry, absent at the ladder's end.

// FuelLevel is one rung of the fuel-tank ladder.
type FuelLevel struct {
	Name     string  `json:"name"`
	Capacity float64 `json:"capacity"`
	Cost     int     `json:"cost"`
}

var fuelLadder = []FuelLevel{
	{Name: "reserve_tank", Capacity: 60, Cost: 0},
	{Name: "standard_tank", Capacity: 110, Cost: 750},
	{Name: "extended_tank", Capacity: 180, Cost: 2000},
	{Name: "pressurized_tank", Capacity: 300, Cost: 5000},
}

type FuelTank struct {
	level  int
	amount float64
}

func NewFuelTank() *FuelTank {
	return &FuelTank{amount: fuelLadder[0].Capacity}
}

func (f *FuelTank) Consume(amount float64) {
	f.amount -= amount
	if f.amount < 0 {
		f.amount = 0
	}
}

func (f *FuelTank) Amount() float64   { return f.amount }
func (f *FuelTank) Capacity() float64 { return fuelLadder[f.level].Capacity }
func (f *FuelTank) Level() int        { return f.level }
func (f *FuelTank) IsEmpty() bool     { return f.amount <= 0 }
func (f *FuelTank) IsLow() bool       { return f.amount <= f.Capacity()*FuelLowFraction }
func (f *FuelTank) IsCritical() bool  { return f.amount <= f.Capacity()*FuelCriticalFraction }

// Refill tops the tank up to the current level's capacity and returns the
// number of units added.
func (f *FuelTank) Refill() float64 {
	added := f.Capacity() - f.amount
	f.amount = f.Capacity()
	return added
}

func (f *FuelTank) NextUpgrade() (FuelLevel, bool) {
	if f.level+1 >= len(fuelLadder) {
		return FuelLevel{}, false
	}
	return fuelLadder[f.level+1], true
}

func (f *FuelTank) Upgrade() bool {
	if f.level+1 >= len(fuelLadder) {
		return false
	}
	f.level++
	f.amount = f.Capacity()
	return true
}

func (f *FuelTank) Restore(level int, amount float64) {
	f.level = clampLevel(level, len(fuelLadder))
	f.amount = clampFloat(amount, 0, f.Capacity())
}

// HullLevel is one rung of the hull-plating ladder.
type HullLevel struct {
	Name      string  `json:"name"`
	Integrity float64 `json:"integrity"`
	Cost      int     `json:"cost"`
}

var hullLadder = []HullLevel{
	{Name: "aluminum_plating", Integrity: 100, Cost: 0},
	{Name: "steel_plating", Integrity: 160, Cost: 900},
	{Name: "titanium_plating", Integrity: 260, Cost: 2500},
	{Name: "composite_plating", Integrity: 420, Cost: 6000},
}

type HullPlating struct {
	level     int
	integrity float64
}

func NewHullPlating() *HullPlating {
	return &HullPlating{integrity: hullLadder[0].Integrity}
}

func (h *HullPlating) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	h.integrity -= amount
	if h.integrity < 0 {
		h.integrity = 0
	}
}

func (h *HullPlating) Integrity() float64    { return h.integrity }
func (h *HullPlating) MaxIntegrity() float64 { return hullLadder[h.level].Integrity }
func (h *HullPlating) Level() int            { return h.level }
func (h *HullPlating) IsDestroyed() bool     { return h.integrity <= 0 }
func (h *HullPlating) IsLow() bool           { return h.integrity <= h.MaxIntegrity()*HullLowFraction }
func (h *HullPlating) IsCritical() bool {
	return h.integrity <= h.MaxIntegrity()*HullCriticalFraction
}

// Repair restores full integrity and returns the units restored.
func (h *HullPlating) Repair() float64 {
	restored := h.MaxIntegrity() - h.integrity
	h.integrity = h.MaxIntegrity()
	return restored
}

func (h *HullPlating) NextUpgrade() (HullLevel, bool) {
	if h.level+1 >= len(hullLadder) {
		return HullLevel{}, false
	}
	return hullLadder[h.level+1], true
}

func (h *HullPlating) Upgrade() bool {
	if h.level+1 >= len(hullLadder) {
		return false
	}
	h.level++
	h.integrity = h.MaxIntegrity()
	return true
}

func (h *HullPlating) Restore(level int, integrity float64) {
	h.level = clampLevel(level, len(hullLadder))
	h.integrity = clampFloat(integrity, 0, h.MaxIntegrity())
}

// DrillLevel is one rung of the drill-bit ladder. MaxHardness gates which
// materials the bit can cut at all; the multiplier shortens dig time.
type DrillLevel struct {
	Name        string  `json:"name"`
	MaxHardness int     `json:"max_hardness"`
	SpeedFactor float64 `json:"speed_factor"`
	Cost        int     `json:"cost"`
}

var drillLadder = []DrillLevel{
	{Name: "iron_bit", MaxHardness: 2, SpeedFactor: 1.0, Cost: 0},
	{Name: "cobalt_bit", MaxHardness: 3, SpeedFactor: 1.4, Cost: 1200},
	{Name: "carbide_bit", MaxHardness: 3, SpeedFactor: 1.9, Cost: 3200},
	{Name: "diamond_bit", MaxHardness: 4, SpeedFactor: 2.6, Cost: 8000},
}

type DrillBit struct {
	level int
}

func NewDrillBit() *DrillBit { return &DrillBit{} }

// CanMine owns the mapping from material hardness to drill capability.
// Callers never compare raw hardness themselves.
func (d *DrillBit) CanMine(hardness int) bool {
	return hardness > 0 && hardness <= drillLadder[d.level].MaxHardness
}

func (d *DrillBit) EffectiveDigTime(base float64) float64 {
	return base / drillLadder[d.level].SpeedFactor
}

func (d *DrillBit) Level() int { return d.level }

func (d *DrillBit) NextUpgrade() (DrillLevel, bool) {
	if d.level+1 >= len(drillLadder) {
		return DrillLevel{}, false
	}
	return drillLadder[d.level+1], true
}

func (d *DrillBit) Upgrade() bool {
	if d.level+1 >= len(drillLadder) {
		return false
	}
	d.level++
	return true
}

func (d *DrillBit) Restore(level int) {
	d.level = clampLevel(level, len(drillLadder))
}

// EngineLevel is one rung of the engine ladder.
type EngineLevel struct {
	Name        string  `json:"name"`
	SpeedFactor float64 `json:"speed_factor"`
	Cost        int     `json:"cost"`
}

var engineLadder = []EngineLevel{
	{Name: "stock_engine", SpeedFactor: 1.0, Cost: 0},
	{Name: "tuned_engine", SpeedFactor: 1.25, Cost: 800},
	{Name: "turbo_engine", SpeedFactor: 1.6, Cost: 2400},
	{Name: "fusion_engine", SpeedFactor: 2.1, Cost: 7000},
}

type Engine struct {
	level int
}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) EffectiveSpeed(base float64) float64 {
	return base * engineLadder[e.level].SpeedFactor
}

func (e *Engine) EffectiveFlySpeed(base float64) float64 {
	return base * engineLadder[e.level].SpeedFactor
}

func (e *Engine) Level() int { return e.level }

func (e *Engine) NextUpgrade() (EngineLevel, bool) {
	if e.level+1 >= len(engineLadder) {
		return EngineLevel{}, false
	}
	return engineLadder[e.level+1], true
}

func (e *Engine) Upgrade() bool {
	if e.level+1 >= len(engineLadder) {
		return false
	}
	e.level++
	return true
}

func (e *Engine) Restore(level int) {
	e.level = clampLevel(level, len(engineLadder))
}

// CoolingLevel is one rung of the cooling ladder. FuelFactor scales every
// dig's fuel cost; lower is better.
type CoolingLevel struct {
	Name       string  `json:"name"`
	FuelFactor float64 `json:"fuel_factor"`
	Cost       int     `json:"cost"`
}

var coolingLadder = []CoolingLevel{
	{Name: "passive_radiator", FuelFactor: 1.0, Cost: 0},
	{Name: "liquid_loop", FuelFactor: 0.85, Cost: 700},
	{Name: "phase_change_loop", FuelFactor: 0.7, Cost: 2200},
	{Name: "cryo_loop", FuelFactor: 0.55, Cost: 6500},
}

type CoolingSystem struct {
	level int
}

func NewCoolingSystem() *CoolingSystem { return &CoolingSystem{} }

func (c *CoolingSystem) EffectiveFuelCost(base float64) float64 {
	return base * coolingLadder[c.level].FuelFactor
}

func (c *CoolingSystem) Level() int { return c.level }

func (c *CoolingSystem) NextUpgrade() (CoolingLevel, bool) {
	if c.level+1 >= len(coolingLadder) {
		return CoolingLevel{}, false
	}
	return coolingLadder[c.level+1], true
}

func (c *CoolingSystem) Upgrade() bool {
	if c.level+1 >= len(coolingLadder) {
		return false
	}
	c.level++
	return true
}

func (c *CoolingSystem) Restore(level int) {
	c.level = clampLevel(level, len(coolingLadder))
}

func clampLevel(level, ladderLen int) int {
	if level < 0 {
		return 0
	}
	if level >= ladderLen {
		return ladderLen - 1
	}
	return level
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
