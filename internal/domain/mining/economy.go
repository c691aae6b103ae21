package mining

// CargoLevel is one rung of the cargo-bay ladder. Capacity is in value
// units of held ore.
type CargoLevel struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Cost     int    `json:"cost"`
}

var cargoLadder = []CargoLevel{
	{Name: "small_bay", Capacity: 600, Cost: 0},
	{Name: "medium_bay", Capacity: 1500, Cost: 850},
	{Name: "large_bay", Capacity: 4000, Cost: 2600},
	{Name: "bulk_bay", Capacity: 10000, Cost: 7500},
}

// Economy is the cargo hold plus the credit ledger. Ore value accumulates
// in the hold during a run and converts to credits when sold at the surface.
type Economy struct {
	level      int
	cargoValue int
	credits    int
	maxDepth   int
}

func NewEconomy() *Economy { return &Economy{} }

// CollectOre adds a mined ore's value to the hold. Ore beyond the bay's
// capacity is lost; the hold never overflows.
func (e *Economy) CollectOre(res DigResult) {
	if !res.Ore {
		return
	}
	e.cargoValue += res.Value
	if e.cargoValue > e.Capacity() {
		e.cargoValue = e.Capacity()
	}
}

// UpdateMaxDepth records the deepest row (in rows below the surface) the
// vehicle has reached this run.
func (e *Economy) UpdateMaxDepth(rows int) {
	if rows > e.maxDepth {
		e.maxDepth = rows
	}
}

// SellCargo converts held ore value into credits and empties the hold.
func (e *Economy) SellCargo() int {
	sold := e.cargoValue
	e.credits += sold
	e.cargoValue = 0
	return sold
}

func (e *Economy) CanAfford(cost int) bool { return e.credits >= cost }

// Debit removes credits if affordable, reporting whether it did.
func (e *Economy) Debit(cost int) bool {
	if cost < 0 || e.credits < cost {
		return false
	}
	e.credits -= cost
	return true
}

func (e *Economy) Credit(amount int) {
	if amount > 0 {
		e.credits += amount
	}
}

func (e *Economy) Credits() int    { return e.credits }
func (e *Economy) CargoValue() int { return e.cargoValue }
func (e *Economy) Capacity() int   { return cargoLadder[e.level].Capacity }
func (e *Economy) MaxDepth() int   { return e.maxDepth }
func (e *Economy) Level() int      { return e.level }
func (e *Economy) CargoFull() bool { return e.cargoValue >= e.Capacity() }

func (e *Economy) NextUpgrade() (CargoLevel, bool) {
	if e.level+1 >= len(cargoLadder) {
		return CargoLevel{}, false
	}
	return cargoLadder[e.level+1], true
}

func (e *Economy) Upgrade() bool {
	if e.level+1 >= len(cargoLadder) {
		return false
	}
	e.level++
	return true
}

func (e *Economy) Restore(level, cargoValue, credits, maxDepth int) {
	e.level = clampLevel(level, len(cargoLadder))
	e.cargoValue = clampInt(cargoValue, 0, e.Capacity())
	if credits < 0 {
		credits = 0
	}
	e.credits = credits
	if maxDepth < 0 {
		maxDepth = 0
	}
	e.maxDepth = maxDepth
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
