package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"diggle/internal/app/ports"
	"diggle/internal/domain/mining"

	"gorm.io/gorm"
)

type SaveSlotRepo struct {
	db *gorm.DB
}

func NewSaveSlotRepo(db *gorm.DB) SaveSlotRepo {
	return SaveSlotRepo{db: db}
}

func (r SaveSlotRepo) Get(ctx context.Context, slotID string) (ports.SaveSlotRecord, error) {
	var m saveSlotModel
	if err := r.db.WithContext(ctx).Where("slot_id = ?", slotID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SaveSlotRecord{}, ports.ErrNotFound
		}
		return ports.SaveSlotRecord{}, err
	}
	return fromModel(m)
}

func (r SaveSlotRepo) SaveWithVersion(ctx context.Context, rec ports.SaveSlotRecord, expectedVersion int64) error {
	m, err := toModel(rec)
	if err != nil {
		return err
	}
	db := r.db.WithContext(ctx)

	if expectedVersion == 0 {
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	// Map form so zero values (empty cargo, surface row cell) still write.
	updates := map[string]any{
		"seed":          m.Seed,
		"width":         m.Width,
		"height":        m.Height,
		"surface_row":   m.SurfaceRow,
		"cell_x":        m.CellX,
		"cell_y":        m.CellY,
		"fuel_level":    m.FuelLevel,
		"fuel_amount":   m.FuelAmount,
		"hull_level":    m.HullLevel,
		"hull_value":    m.HullValue,
		"drill_level":   m.DrillLevel,
		"engine_level":  m.EngineLevel,
		"cooling_level": m.CoolingLevel,
		"cargo_level":   m.CargoLevel,
		"credits":       m.Credits,
		"cargo_value":   m.CargoValue,
		"max_depth":     m.MaxDepth,
		"mined_cells":   m.MinedCells,
		"version":       m.Version,
		"saved_at":      m.SavedAt,
	}

	res := db.Model(&saveSlotModel{}).
		Where("slot_id = ? AND version = ?", rec.SlotID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toModel(rec ports.SaveSlotRecord) (saveSlotModel, error) {
	mined, err := json.Marshal(rec.MinedCells)
	if err != nil {
		return saveSlotModel{}, fmt.Errorf("encode mined cells: %w", err)
	}
	return saveSlotModel{
		SlotID:       rec.SlotID,
		Seed:         rec.Seed,
		Width:        int32(rec.Width),
		Height:       int32(rec.Height),
		SurfaceRow:   int32(rec.SurfaceRow),
		CellX:        int32(rec.CellX),
		CellY:        int32(rec.CellY),
		FuelLevel:    int32(rec.FuelLevel),
		FuelAmount:   rec.FuelAmount,
		HullLevel:    int32(rec.HullLevel),
		HullValue:    rec.HullValue,
		DrillLevel:   int32(rec.DrillLevel),
		EngineLevel:  int32(rec.EngineLevel),
		CoolingLevel: int32(rec.CoolingLevel),
		CargoLevel:   int32(rec.CargoLevel),
		Credits:      int32(rec.Credits),
		CargoValue:   int32(rec.CargoValue),
		MaxDepth:     int32(rec.MaxDepth),
		MinedCells:   string(mined),
		Version:      rec.Version,
		SavedAt:      rec.SavedAt,
	}, nil
}

func fromModel(m saveSlotModel) (ports.SaveSlotRecord, error) {
	var mined []mining.Cell
	if m.MinedCells != "" {
		if err := json.Unmarshal([]byte(m.MinedCells), &mined); err != nil {
			return ports.SaveSlotRecord{}, fmt.Errorf("decode mined cells: %w", err)
		}
	}
	return ports.SaveSlotRecord{
		SlotID:       m.SlotID,
		Seed:         m.Seed,
		Width:        int(m.Width),
		Height:       int(m.Height),
		SurfaceRow:   int(m.SurfaceRow),
		CellX:        int(m.CellX),
		CellY:        int(m.CellY),
		FuelLevel:    int(m.FuelLevel),
		FuelAmount:   m.FuelAmount,
		HullLevel:    int(m.HullLevel),
		HullValue:    m.HullValue,
		DrillLevel:   int(m.DrillLevel),
		EngineLevel:  int(m.EngineLevel),
		CoolingLevel: int(m.CoolingLevel),
		CargoLevel:   int(m.CargoLevel),
		Credits:      int(m.Credits),
		CargoValue:   int(m.CargoValue),
		MaxDepth:     int(m.MaxDepth),
		MinedCells:   mined,
		Version:      m.Version,
		SavedAt:      m.SavedAt,
	}, nil
}
