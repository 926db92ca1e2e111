package repository

import (
	"context"

	"github.com/diasporahq/diaspora-backend/internal/model"
	"gorm.io/gorm"
)

type ModeSwitchLogRepository interface {
	// CreateAndApply inserts the log row and moves the user to its new mode
	// in one transaction.
	CreateAndApply(ctx context.Context, entry *model.ModeSwitchLog) error
	SetDB(db *gorm.DB)
}

type modeSwitchLogRepository struct {
	db *gorm.DB
}

func NewModeSwitchLogRepository(db *gorm.DB) ModeSwitchLogRepository {
	return &modeSwitchLogRepository{db: db}
}

func (r *modeSwitchLogRepository) CreateAndApply(ctx context.Context, entry *model.ModeSwitchLog) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", entry.UserID).
			Update("mode", entry.SwitchedTo).Error
	})
}

func (r *modeSwitchLogRepository) SetDB(db *gorm.DB) {
	r.db = db
}
