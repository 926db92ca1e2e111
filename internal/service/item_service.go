package service

import (
	"context"
	"time"

	"github.com/diasporahq/diaspora-backend/internal/model"
	"github.com/diasporahq/diaspora-backend/internal/repository"
	"github.com/google/uuid"
)

type ItemService interface {
	Create(ctx context.Context, sub *ItemSubmission) (*model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
	now  func() time.Time
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo, now: time.Now}
}

// Create turns a validated submission into a durable record: a fresh id,
// defaults for the optional fields, status pending, and created_at equal to
// updated_at. The write is a single attempt; any repository error comes back
// as a PersistenceError and the request is over.
func (s *itemService) Create(ctx context.Context, sub *ItemSubmission) (*model.Item, error) {
	var price float64
	if sub.Price != nil {
		price = *sub.Price
	}
	var pickup bool
	if sub.PickupRequired != nil {
		pickup = *sub.PickupRequired
	}

	now := s.now().UTC()
	item := &model.Item{
		ID:                 uuid.NewString(),
		Description:        sub.Description,
		Weight:             sub.Weight,
		Dimensions:         sub.Dimensions,
		OriginCountry:      sub.OriginCountry,
		DestinationCountry: sub.DestinationCountry,
		Price:              price,
		PickupRequired:     pickup,
		Status:             model.ItemStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, &PersistenceError{Op: "insert item", Err: err}
	}
	return item, nil
}
