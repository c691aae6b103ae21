package mining

import "testing"

func TestTileGrid_OutOfBounds(t *testing.T) {
	g := NewTileGrid(4, 4, 1)

	if _, ok := g.TileAt(-1, 0); ok {
		t.Fatalf("expected out-of-bounds to the left")
	}
	if _, ok := g.TileAt(0, 4); ok {
		t.Fatalf("expected out-of-bounds below")
	}
	if _, ok := g.TileAt(0, 0); !ok {
		t.Fatalf("expected in-bounds cell to resolve")
	}
}

func TestTileGrid_DigCompletesExactlyOnce(t *testing.T) {
	g := NewTileGrid(4, 4, 1)
	g.SetTile(1, 2, TileDirt)

	g.StartDig(1, 2)
	if _, done := g.UpdateDig(1, 2, 0.4); done {
		t.Fatalf("dig completed below full progress")
	}
	if _, done := g.UpdateDig(1, 2, 0.4); done {
		t.Fatalf("dig completed at 0.8 progress")
	}

	res, done := g.UpdateDig(1, 2, 0.4)
	if !done {
		t.Fatalf("expected completion at 1.2 accumulated progress")
	}
	if res.Type != TileDirt {
		t.Fatalf("expected dirt result, got %s", res.Type.Name())
	}

	tile, _ := g.TileAt(1, 2)
	if tile.Type != TileEmpty {
		t.Fatalf("expected mined tile to become empty, got %s", tile.Type.Name())
	}
	if tile.DigProgress != 0 {
		t.Fatalf("expected progress reset after completion, got %f", tile.DigProgress)
	}

	// Emptied cell never emits a second result.
	if _, done := g.UpdateDig(1, 2, 5.0); done {
		t.Fatalf("empty tile emitted a dig result")
	}
}

func TestTileGrid_DigProgressMonotonic(t *testing.T) {
	g := NewTileGrid(4, 4, 1)
	g.SetTile(2, 2, TileGranite)
	g.StartDig(2, 2)

	last := 0.0
	for i := 0; i < 5; i++ {
		g.UpdateDig(2, 2, 0.1)
		tile, _ := g.TileAt(2, 2)
		if tile.DigProgress < last {
			t.Fatalf("progress decreased: %f -> %f", last, tile.DigProgress)
		}
		last = tile.DigProgress
	}
}

func TestTileGrid_CancelDigDiscardsProgress(t *testing.T) {
	g := NewTileGrid(4, 4, 1)
	g.SetTile(1, 1, TileClay)

	g.StartDig(1, 1)
	g.UpdateDig(1, 1, 0.7)
	g.CancelDig(1, 1)

	tile, _ := g.TileAt(1, 1)
	if tile.Type != TileClay {
		t.Fatalf("cancel must not convert the tile")
	}
	if tile.DigProgress != 0 {
		t.Fatalf("cancel must reset progress, got %f", tile.DigProgress)
	}
}

func TestTileGrid_BedrockNeverHoldsProgress(t *testing.T) {
	g := NewTileGrid(4, 4, 1)
	g.SetTile(0, 3, TileBedrock)

	g.StartDig(0, 3)
	if _, done := g.UpdateDig(0, 3, 2.0); done {
		t.Fatalf("bedrock emitted a dig result")
	}
	tile, _ := g.TileAt(0, 3)
	if tile.DigProgress != 0 {
		t.Fatalf("bedrock accumulated progress: %f", tile.DigProgress)
	}
}

func TestTileGrid_RevealAroundIdempotent(t *testing.T) {
	g := NewTileGrid(8, 8, 1)
	g.RevealAround(4, 4, 1)
	g.RevealAround(4, 4, 1)

	tile, _ := g.TileAt(4, 4)
	if !tile.Revealed {
		t.Fatalf("expected center revealed")
	}
	tile, _ = g.TileAt(3, 3)
	if !tile.Revealed {
		t.Fatalf("expected radius revealed")
	}
	tile, _ = g.TileAt(6, 4)
	if tile.Revealed {
		t.Fatalf("expected tile outside radius to stay hidden")
	}
}

func TestTileGrid_MinedCellsRoundTrip(t *testing.T) {
	g := NewTileGrid(4, 8, 1)
	g.SetTile(1, 3, TileDirt)
	g.SetTile(1, 4, TileIronOre)

	g.StartDig(1, 3)
	g.UpdateDig(1, 3, 1.0)
	g.StartDig(1, 4)
	g.UpdateDig(1, 4, 1.0)

	mined := g.MinedCells()
	if len(mined) != 2 {
		t.Fatalf("expected 2 mined cells, got %d", len(mined))
	}

	restored := NewTileGrid(4, 8, 1)
	restored.SetTile(1, 3, TileDirt)
	restored.SetTile(1, 4, TileIronOre)
	restored.ApplyMined(mined)

	for _, c := range mined {
		tile, _ := restored.TileAt(c.X, c.Y)
		if tile.Type != TileEmpty {
			t.Fatalf("expected replayed cell (%d,%d) to be empty, got %s", c.X, c.Y, tile.Type.Name())
		}
	}
}
