package mining

// TileType is the closed set of materials a cell can hold.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileDirt
	TileClay
	TileGravel
	TileGranite
	TileIronOre
	TileSilverOre
	TileGoldOre
	TileDiamond
	TileGasPocket
	TileLava
	TileBedrock

	tileTypeCount
)

type tileProps struct {
	name         string
	hardness     int
	digTime      float64 // seconds at drill tier 0
	fuelCost     float64
	value        int
	ore          bool
	hazard       bool
	hazardDamage float64
	lethal       bool
}

var tileTable = [tileTypeCount]tileProps{
	TileEmpty:     {name: "empty"},
	TileDirt:      {name: "dirt", hardness: 1, digTime: 0.6, fuelCost: 1.0},
	TileClay:      {name: "clay", hardness: 1, digTime: 0.9, fuelCost: 1.2},
	TileGravel:    {name: "gravel", hardness: 2, digTime: 1.4, fuelCost: 1.8},
	TileGranite:   {name: "granite", hardness: 3, digTime: 2.5, fuelCost: 2.6},
	TileIronOre:   {name: "iron_ore", hardness: 2, digTime: 1.6, fuelCost: 2.0, value: 30, ore: true},
	TileSilverOre: {name: "silver_ore", hardness: 3, digTime: 2.0, fuelCost: 2.4, value: 80, ore: true},
	TileGoldOre:   {name: "gold_ore", hardness: 3, digTime: 2.4, fuelCost: 2.8, value: 250, ore: true},
	TileDiamond:   {name: "diamond", hardness: 4, digTime: 3.2, fuelCost: 3.4, value: 1000, ore: true},
	TileGasPocket: {name: "gas_pocket", hardness: 1, digTime: 0.5, fuelCost: 0.8, hazard: true, hazardDamage: 25},
	TileLava:      {name: "lava", hardness: 1, digTime: 0.5, fuelCost: 0.8, hazard: true, hazardDamage: 100, lethal: true},
	TileBedrock:   {name: "bedrock"},
}

func (t TileType) Name() string          { return tileTable[t].name }
func (t TileType) Hardness() int         { return tileTable[t].hardness }
func (t TileType) DigTime() float64      { return tileTable[t].digTime }
func (t TileType) FuelCost() float64     { return tileTable[t].fuelCost }
func (t TileType) Value() int            { return tileTable[t].value }
func (t TileType) IsOre() bool           { return tileTable[t].ore }
func (t TileType) IsHazard() bool        { return tileTable[t].hazard }
func (t TileType) HazardDamage() float64 { return tileTable[t].hazardDamage }
func (t TileType) IsLethal() bool        { return tileTable[t].lethal }

// Diggable reports whether the material can hold dig progress at all.
// Bedrock and empty cells never do.
func (t TileType) Diggable() bool {
	return t != TileEmpty && t != TileBedrock
}

// Tile is one grid cell. DigProgress is only meaningful between StartDig and
// completion or cancel on that cell.
type Tile struct {
	Type        TileType
	DigProgress float64
	Revealed    bool
}

// DigResult is the one-shot payload emitted exactly when a cell's dig
// progress first crosses 1.0.
type DigResult struct {
	Type         TileType
	FuelCost     float64
	Value        int
	Ore          bool
	Hazard       bool
	HazardDamage float64
	Lethal       bool
}

func resultFor(t TileType) DigResult {
	p := tileTable[t]
	return DigResult{
		Type:         t,
		FuelCost:     p.fuelCost,
		Value:        p.value,
		Ore:          p.ore,
		Hazard:       p.hazard,
		HazardDamage: p.hazardDamage,
		Lethal:       p.lethal,
	}
}
