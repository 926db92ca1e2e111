package repository

import (
	"context"
	"errors"

	"github.com/diasporahq/diaspora-backend/internal/model"
	"gorm.io/gorm"
)

// ErrDBNotReady is returned while the database connection has not been
// injected yet. The server starts serving before the pool is up; writes
// simply fail until it is.
var ErrDBNotReady = errors.New("database not initialized")

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	SetDB(db *gorm.DB)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create issues a single insert of the complete record. One row, no related
// rows, so no transaction is needed.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) SetDB(db *gorm.DB) {
	r.db = db
}
