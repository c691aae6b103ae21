package gormrepo

import "time"

type saveSlotModel struct {
	SlotID string `gorm:"primaryKey;column:slot_id"`

	Seed       int64 `gorm:"column:seed"`
	Width      int32 `gorm:"column:width"`
	Height     int32 `gorm:"column:height"`
	SurfaceRow int32 `gorm:"column:surface_row"`

	CellX int32 `gorm:"column:cell_x"`
	CellY int32 `gorm:"column:cell_y"`

	FuelLevel  int32   `gorm:"column:fuel_level"`
	FuelAmount float64 `gorm:"column:fuel_amount"`
	HullLevel  int32   `gorm:"column:hull_level"`
	HullValue  float64 `gorm:"column:hull_value"`

	DrillLevel   int32 `gorm:"column:drill_level"`
	EngineLevel  int32 `gorm:"column:engine_level"`
	CoolingLevel int32 `gorm:"column:cooling_level"`
	CargoLevel   int32 `gorm:"column:cargo_level"`

	Credits    int32 `gorm:"column:credits"`
	CargoValue int32 `gorm:"column:cargo_value"`
	MaxDepth   int32 `gorm:"column:max_depth"`

	// Mined cells as a JSON array; the grid regenerates from the seed.
	MinedCells string `gorm:"column:mined_cells;type:text"`

	Version int64     `gorm:"column:version"`
	SavedAt time.Time `gorm:"column:saved_at"`
}

func (saveSlotModel) TableName() string { return "save_slots" }

type runModel struct {
	RunID     string    `gorm:"primaryKey;column:run_id"`
	SessionID string    `gorm:"column:session_id"`
	Cause     string    `gorm:"column:cause"`
	Depth     int32     `gorm:"column:depth"`
	Credits   int32     `gorm:"column:credits"`
	Ticks     int64     `gorm:"column:ticks"`
	EndedAt   time.Time `gorm:"column:ended_at;index"`
}

func (runModel) TableName() string { return "runs" }
