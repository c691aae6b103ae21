package mining

import "math/rand"

// WorldConfig parameterizes grid generation. The same config always yields
// the same grid, which is what lets the save path store a seed plus mined
// cells instead of full tile state.
type WorldConfig struct {
	Width      int
	Height     int
	SurfaceRow int
	Seed       int64
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Width:      40,
		Height:     120,
		SurfaceRow: 4,
		Seed:       1,
	}
}

func (c WorldConfig) normalized() WorldConfig {
	def := DefaultWorldConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.SurfaceRow <= 0 || c.SurfaceRow >= c.Height-1 {
		c.SurfaceRow = def.SurfaceRow
	}
	return c
}

// Generate builds the world for one run: open sky above the surface row,
// material bands deepening below it, and an unbreakable bedrock floor.
func Generate(cfg WorldConfig) *TileGrid {
	cfg = cfg.normalized()
	g := NewTileGrid(cfg.Width, cfg.Height, cfg.SurfaceRow)
	rng := rand.New(rand.NewSource(cfg.Seed))

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			g.SetTile(x, y, rollTile(rng, y-cfg.SurfaceRow, cfg.Height-1-cfg.SurfaceRow))
		}
	}
	for x := 0; x < cfg.Width; x++ {
		g.SetTile(x, cfg.Height-1, TileBedrock)
	}
	g.RevealAround(cfg.Width/2, cfg.SurfaceRow, RevealRadius+2)
	return g
}

// rollTile picks a material for a cell at the given depth in rows below the
// surface. Harder rock, richer ore and nastier hazards all scale with depth.
func rollTile(rng *rand.Rand, depth, maxDepth int) TileType {
	if depth <= 0 {
		return TileEmpty
	}
	band := float64(depth) / float64(maxDepth)
	roll := rng.Float64()

	// Hazards first so their probability is depth-exact.
	if depth > 8 && roll < 0.012+0.03*band {
		if band > 0.45 && rng.Float64() < 0.4 {
			return TileLava
		}
		return TileGasPocket
	}

	roll = rng.Float64()
	switch {
	case roll < 0.020+0.015*band:
		return oreFor(rng, band)
	case roll < 0.08+0.50*band:
		if band > 0.55 && rng.Float64() < band-0.3 {
			return TileGranite
		}
		return TileGravel
	case roll < 0.30+0.40*band:
		return TileClay
	default:
		return TileDirt
	}
}

func oreFor(rng *rand.Rand, band float64) TileType {
	roll := rng.Float64()
	switch {
	case band > 0.75 && roll < 0.15:
		return TileDiamond
	case band > 0.45 && roll < 0.40:
		return TileGoldOre
	case band > 0.20 && roll < 0.70:
		return TileSilverOre
	default:
		return TileIronOre
	}
}

// SpawnCell is where a new or respawned vehicle rests: mid-width on the
// surface row.
func SpawnCell(g *TileGrid) Cell {
	return Cell{X: g.Width() / 2, Y: g.SurfaceRow()}
}
