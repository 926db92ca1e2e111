package service

import (
	"context"
	"errors"
	"time"

	"github.com/diasporahq/diaspora-backend/internal/model"
	"github.com/diasporahq/diaspora-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModeSwitchInput struct {
	UserID     uint64
	SwitchedTo string
	Context    string
}

type ModeSwitchService interface {
	LogSwitch(ctx context.Context, in ModeSwitchInput) (*model.ModeSwitchLog, error)
}

type modeSwitchService struct {
	logs  repository.ModeSwitchLogRepository
	users repository.UserRepository
	now   func() time.Time
}

func NewModeSwitchService(logs repository.ModeSwitchLogRepository, users repository.UserRepository) ModeSwitchService {
	return &modeSwitchService{logs: logs, users: users, now: time.Now}
}

// LogSwitch records a user moving between sender and traveler mode. The
// previous mode is read from the user row rather than trusted from the
// client, and the log insert plus the mode update land in one transaction.
func (s *modeSwitchService) LogSwitch(ctx context.Context, in ModeSwitchInput) (*model.ModeSwitchLog, error) {
	if in.UserID == 0 {
		return nil, &ValidationError{Field: "user_id", Reason: "required"}
	}
	switchedTo := model.UserMode(in.SwitchedTo)
	if switchedTo != model.UserModeSender && switchedTo != model.UserModeTraveler {
		return nil, &ValidationError{Field: "switched_to", Reason: "must be sender or traveler"}
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ValidationError{Field: "user_id", Reason: "unknown user"}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "find user", Err: err}
	}
	if user.Mode == switchedTo {
		return nil, &ValidationError{Field: "switched_to", Reason: "user is already in this mode"}
	}

	entry := &model.ModeSwitchLog{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		PreviousMode: user.Mode,
		SwitchedTo:   switchedTo,
		Context:      in.Context,
		SwitchedAt:   s.now().UTC(),
	}
	if err := s.logs.CreateAndApply(ctx, entry); err != nil {
		return nil, &PersistenceError{Op: "insert mode switch log", Err: err}
	}
	return entry, nil
}
