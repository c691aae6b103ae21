package mining

import "math"

// Direction is the held input direction applied at the start of a tick.
type Direction string

const (
	DirNone  Direction = "none"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

func (d Direction) Valid() bool {
	switch d {
	case DirNone, DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// Activity is the vehicle's current behavior mode. Exactly one holds at any
// tick boundary.
type Activity string

const (
	ActivityIdle    Activity = "idle"
	ActivityMoving  Activity = "moving"
	ActivityDigging Activity = "digging"
	ActivityFalling Activity = "falling"
)

// Position is a continuous world coordinate in pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Cell is a tile coordinate, derived from a Position and never stored
// independently of it.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellOf maps a continuous position to the grid cell containing it.
func CellOf(p Position) Cell {
	return Cell{
		X: int(math.Floor(p.X / TileSize)),
		Y: int(math.Floor(p.Y / TileSize)),
	}
}

// Center returns the continuous position of the cell's center.
func (c Cell) Center() Position {
	return Position{
		X: float64(c.X)*TileSize + TileSize/2,
		Y: float64(c.Y)*TileSize + TileSize/2,
	}
}

func distance(a, b Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

type EventType string

const (
	EventGameOver       EventType = "game_over"
	EventSurfaceReached EventType = "surface_reached"
	EventTileMined      EventType = "tile_mined"
	EventLanded         EventType = "landed"
)

// Event is an outbox entry appended by the controller during a tick and
// drained by the host loop. Hosts never receive re-entrant callbacks.
type Event struct {
	Type    EventType      `json:"type"`
	Tick    uint64         `json:"tick"`
	Payload map[string]any `json:"payload,omitempty"`
}

type GameOverCause string

const (
	CauseHullDestroyed GameOverCause = "hull_destroyed"
	CauseFuelExhausted GameOverCause = "fuel_exhausted"
)
