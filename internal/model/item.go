package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type ItemStatus string

const (
	// ItemStatusPending is the only status this service assigns; transitions
	// belong to downstream fulfilment systems.
	ItemStatusPending ItemStatus = "pending"
)

type Item struct {
	ID                 string     `gorm:"primaryKey;size:36"`
	Description        string     `gorm:"type:text;not null"`
	Weight             float64    `gorm:"not null"`
	Dimensions         Dimensions `gorm:"type:jsonb;not null"`
	OriginCountry      string     `gorm:"column:origin_country;size:120;not null"`
	DestinationCountry string     `gorm:"column:destination_country;size:120;not null"`
	Price              float64    `gorm:"not null"`
	PickupRequired     bool       `gorm:"column:pickup_required;not null"`
	Status             ItemStatus `gorm:"size:32;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Item) TableName() string {
	return "items"
}

// Dimensions is stored as a single jsonb sub-document, not as three scalar
// columns.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (d Dimensions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *Dimensions) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return errors.New("unsupported source type for dimensions")
	}
}
