package inmemory

import "testing"

func TestRecorder_Aggregates(t *testing.T) {
	r := NewRecorder()
	r.RecordSessionStarted()
	r.RecordTileMined("dirt")
	r.RecordTileMined("dirt")
	r.RecordTileMined("gold_ore")
	r.RecordGameOver("fuel_exhausted")
	r.RecordDepth(12)
	r.RecordDepth(7)

	snap := r.Snapshot()
	if snap.SessionsStarted != 1 {
		t.Fatalf("sessions: %d", snap.SessionsStarted)
	}
	if snap.TilesMined != 3 || snap.ByTile["dirt"] != 2 || snap.ByTile["gold_ore"] != 1 {
		t.Fatalf("tiles: %+v", snap)
	}
	if snap.GameOvers != 1 || snap.ByCause["fuel_exhausted"] != 1 {
		t.Fatalf("game overs: %+v", snap)
	}
	if snap.DeepestRow != 12 {
		t.Fatalf("deepest row regressed: %d", snap.DeepestRow)
	}
}

func TestRecorder_SnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordTileMined("clay")

	snap := r.Snapshot()
	snap.ByTile["clay"] = 99

	if got := r.Snapshot().ByTile["clay"]; got != 1 {
		t.Fatalf("snapshot aliased internal state: %d", got)
	}
}
