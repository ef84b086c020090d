package domain

import "time"

// ActivityEvent records a notable action for the admin dashboard audit trail.
// Events are written asynchronously; a lost event is tolerable, a blocked
// request handler is not.
type ActivityEvent struct {
	ActorID   string    `json:"actor_id" bson:"actor_id"`
	ActorRole Role      `json:"actor_role" bson:"actor_role"`
	Action    string    `json:"action" bson:"action"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Well-known activity actions.
const (
	ActionLogin           = "auth.login"
	ActionRegister        = "auth.register"
	ActionLogout          = "auth.logout"
	ActionPropertyCreated = "property.created"
	ActionPropertyUpdated = "property.updated"
	ActionPropertyRemoved = "property.removed"
	ActionRoomCreated     = "room.created"
	ActionRoomUpdated     = "room.updated"
)
