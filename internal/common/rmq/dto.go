package rmq

import "time"

const RoutingKeyCaptainRegistered = "captain.registered"

type CaptainRegisteredMessage struct {
	CaptainID    string    `json:"captain_id"`
	Email        string    `json:"email"`
	VehicleType  string    `json:"vehicle_type"`
	Capacity     int       `json:"capacity"`
	RegisteredAt time.Time `json:"registered_at"`
	RequestID    string    `json:"request_id,omitempty"`
}
