package domain

import (
	"errors"
	"time"
)

// PropertyStatus represents the listing state of a property.
type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyInactive PropertyStatus = "inactive"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrForbidden = errors.New("access forbidden")

// Property is a rental property owned by a landlord.
type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Code        string         `json:"code" bson:"code"`
	LandlordID  string         `json:"landlord_id" bson:"landlord_id"`
	Name        string         `json:"name" bson:"name"`
	Address     string         `json:"address" bson:"address"`
	City        string         `json:"city" bson:"city"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Status      PropertyStatus `json:"status" bson:"status"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
