package model

import "time"

type UserMode string

const (
	UserModeSender   UserMode = "sender"
	UserModeTraveler UserMode = "traveler"
)

type User struct {
	ID        uint64   `gorm:"primaryKey;autoIncrement"`
	Name      string   `gorm:"size:120;not null"`
	Email     string   `gorm:"size:255;uniqueIndex;not null"`
	Mode      UserMode `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
