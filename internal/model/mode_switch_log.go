package model

import "time"

// ModeSwitchLog records a user flipping between sender and traveler mode.
type ModeSwitchLog struct {
	ID           string   `gorm:"primaryKey;size:36"`
	UserID       uint64   `gorm:"column:user_id;index;not null"`
	PreviousMode UserMode `gorm:"column:previous_mode;size:20"`
	SwitchedTo   UserMode `gorm:"column:switched_to;size:20;not null"`
	Context      string   `gorm:"type:text"`
	SwitchedAt   time.Time
}

func (ModeSwitchLog) TableName() string {
	return "mode_switch_logs"
}
