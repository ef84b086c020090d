package domain

import (
	"errors"
	"time"
)

// RoomStatus represents the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// validRoomTransitions defines the allowed occupancy state changes.
var validRoomTransitions = map[RoomStatus][]RoomStatus{
	RoomAvailable:   {RoomOccupied, RoomMaintenance},
	RoomOccupied:    {RoomAvailable, RoomMaintenance},
	RoomMaintenance: {RoomAvailable},
}

var ErrRoomNotFound = errors.New("room not found")
var ErrInvalidTransition = errors.New("invalid room status transition")

// CanTransitionTo reports whether a change from the current status to next is valid.
func (s RoomStatus) CanTransitionTo(next RoomStatus) bool {
	for _, allowed := range validRoomTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Room is a rentable unit within a property.
type Room struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	PropertyID  string     `json:"property_id" bson:"property_id"`
	Number      string     `json:"number" bson:"number"`
	Type        string     `json:"type" bson:"type"`
	RentMonthly float64    `json:"rent_monthly" bson:"rent_monthly"`
	Capacity    int        `json:"capacity" bson:"capacity"`
	Status      RoomStatus `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
