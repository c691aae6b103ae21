package gormrepo

import (
	"context"

	"diggle/internal/app/ports"

	"gorm.io/gorm"
)

type RunRepo struct {
	db *gorm.DB
}

func NewRunRepo(db *gorm.DB) RunRepo {
	return RunRepo{db: db}
}

func (r RunRepo) Append(ctx context.Context, rec ports.RunRecord) error {
	m := runModel{
		RunID:     rec.RunID,
		SessionID: rec.SessionID,
		Cause:     rec.Cause,
		Depth:     int32(rec.Depth),
		Credits:   int32(rec.Credits),
		Ticks:     int64(rec.Ticks),
		EndedAt:   rec.EndedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r RunRepo) ListRecent(ctx context.Context, limit int) ([]ports.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []runModel
	err := r.db.WithContext(ctx).
		Order("ended_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]ports.RunRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.RunRecord{
			RunID:     m.RunID,
			SessionID: m.SessionID,
			Cause:     m.Cause,
			Depth:     int(m.Depth),
			Credits:   int(m.Credits),
			Ticks:     uint64(m.Ticks),
			EndedAt:   m.EndedAt,
		})
	}
	return out, nil
}
