package service

import (
	"strings"

	"github.com/diasporahq/diaspora-backend/internal/model"
)

// RawItemSubmission is the decoded request body before validation. Pointer
// fields distinguish absent values from zero values; a field of the wrong
// JSON type already fails at decode time, so by the time validation runs a
// nil pointer is the only failure mode left per field.
type RawItemSubmission struct {
	Description        *string        `json:"description"`
	Weight             *float64       `json:"weight"`
	Dimensions         *RawDimensions `json:"dimensions"`
	OriginCountry      *string        `json:"origin_country"`
	DestinationCountry *string        `json:"destination_country"`
	Price              *float64       `json:"price"`
	PickupRequired     *bool          `json:"pickup_required"`
}

type RawDimensions struct {
	Length *float64 `json:"length"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// ItemSubmission is a fully validated submission. Optional fields keep their
// pointers so the persister can tell "omitted" from "zero".
type ItemSubmission struct {
	Description        string
	Weight             float64
	Dimensions         model.Dimensions
	OriginCountry      string
	DestinationCountry string
	Price              *float64
	PickupRequired     *bool
}

// ValidateItemSubmission turns a raw submission into a typed one or rejects
// it with a ValidationError. The first problem found rejects the whole
// submission; nothing is coerced and no defaults are applied here.
func ValidateItemSubmission(raw *RawItemSubmission) (*ItemSubmission, error) {
	if raw.Description == nil || strings.TrimSpace(*raw.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "required"}
	}
	if raw.Weight == nil {
		return nil, &ValidationError{Field: "weight", Reason: "required"}
	}
	if *raw.Weight <= 0 {
		return nil, &ValidationError{Field: "weight", Reason: "must be positive"}
	}
	dims, err := validateDimensions(raw.Dimensions)
	if err != nil {
		return nil, err
	}
	if raw.OriginCountry == nil || strings.TrimSpace(*raw.OriginCountry) == "" {
		return nil, &ValidationError{Field: "origin_country", Reason: "required"}
	}
	if raw.DestinationCountry == nil || strings.TrimSpace(*raw.DestinationCountry) == "" {
		return nil, &ValidationError{Field: "destination_country", Reason: "required"}
	}
	if raw.Price != nil && *raw.Price < 0 {
		return nil, &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	return &ItemSubmission{
		Description:        *raw.Description,
		Weight:             *raw.Weight,
		Dimensions:         dims,
		OriginCountry:      *raw.OriginCountry,
		DestinationCountry: *raw.DestinationCountry,
		Price:              raw.Price,
		PickupRequired:     raw.PickupRequired,
	}, nil
}

// validateDimensions requires all three of length, width and height; a
// partially filled sub-object invalidates the whole submission.
func validateDimensions(raw *RawDimensions) (model.Dimensions, error) {
	if raw == nil {
		return model.Dimensions{}, &ValidationError{Field: "dimensions", Reason: "required"}
	}
	fields := []struct {
		name  string
		value *float64
	}{
		{"dimensions.length", raw.Length},
		{"dimensions.width", raw.Width},
		{"dimensions.height", raw.Height},
	}
	for _, f := range fields {
		if f.value == nil {
			return model.Dimensions{}, &ValidationError{Field: f.name, Reason: "required"}
		}
		if *f.value <= 0 {
			return model.Dimensions{}, &ValidationError{Field: f.name, Reason: "must be positive"}
		}
	}
	return model.Dimensions{
		Length: *raw.Length,
		Width:  *raw.Width,
		Height: *raw.Height,
	}, nil
}
