package mining

// TileGrid owns all tile state and the dig protocol. Out-of-bounds cells are
// reported as absent and treated by callers as impassable.
type TileGrid struct {
	width      int
	height     int
	surfaceRow int
	tiles      []Tile
	mined      []Cell
}

// NewTileGrid creates a grid of empty tiles. Gameplay grids come from
// Generate; this constructor is the seam for tests and restoration.
func NewTileGrid(width, height, surfaceRow int) *TileGrid {
	return &TileGrid{
		width:      width,
		height:     height,
		surfaceRow: surfaceRow,
		tiles:      make([]Tile, width*height),
	}
}

func (g *TileGrid) Width() int      { return g.width }
func (g *TileGrid) Height() int     { return g.height }
func (g *TileGrid) SurfaceRow() int { return g.surfaceRow }

func (g *TileGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile at (x, y). ok is false outside generated bounds.
func (g *TileGrid) TileAt(x, y int) (Tile, bool) {
	if !g.inBounds(x, y) {
		return Tile{}, false
	}
	return g.tiles[y*g.width+x], true
}

// SetTile overwrites the cell at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) SetTile(x, y int, t TileType) {
	if g.inBounds(x, y) {
		g.tiles[y*g.width+x] = Tile{Type: t}
	}
}

// RevealAround marks a square radius of cells as visible. Idempotent, no
// gameplay effect.
func (g *TileGrid) RevealAround(x, y, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if g.inBounds(x+dx, y+dy) {
				g.tiles[(y+dy)*g.width+x+dx].Revealed = true
			}
		}
	}
}

// StartDig resets the cell's progress and makes it the active dig target.
// The caller is responsible for checking diggability first.
func (g *TileGrid) StartDig(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	if g.tiles[y*g.width+x].Type.Diggable() {
		g.tiles[y*g.width+x].DigProgress = 0
	}
}

// UpdateDig adds progressDelta to the cell's dig progress. While progress
// stays below 1.0 it returns done=false. On first crossing 1.0 it converts
// the tile to empty and returns the DigResult exactly once. A target that is
// no longer diggable yields done=false with no mutation.
func (g *TileGrid) UpdateDig(x, y int, progressDelta float64) (DigResult, bool) {
	if !g.inBounds(x, y) {
		return DigResult{}, false
	}
	tile := &g.tiles[y*g.width+x]
	if !tile.Type.Diggable() {
		return DigResult{}, false
	}
	tile.DigProgress += progressDelta
	if tile.DigProgress < 1.0 {
		return DigResult{}, false
	}
	res := resultFor(tile.Type)
	tile.Type = TileEmpty
	tile.DigProgress = 0
	g.mined = append(g.mined, Cell{X: x, Y: y})
	return res, true
}

// CancelDig discards accumulated progress without converting the tile.
func (g *TileGrid) CancelDig(x, y int) {
	if g.inBounds(x, y) {
		g.tiles[y*g.width+x].DigProgress = 0
	}
}

// MinedCells returns every cell converted to empty through the dig protocol,
// in completion order. Used by the save path.
func (g *TileGrid) MinedCells() []Cell {
	out := make([]Cell, len(g.mined))
	copy(out, g.mined)
	return out
}

// ApplyMined replays previously mined cells onto a freshly generated grid.
// Used by the load path.
func (g *TileGrid) ApplyMined(cells []Cell) {
	for _, c := range cells {
		if !g.inBounds(c.X, c.Y) {
			continue
		}
		tile := &g.tiles[c.Y*g.width+c.X]
		if tile.Type.Diggable() {
			tile.Type = TileEmpty
			tile.DigProgress = 0
			g.mined = append(g.mined, c)
		}
	}
}
