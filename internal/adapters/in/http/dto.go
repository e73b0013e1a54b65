package http

import (
	"time"
)

// Error is the JSON error envelope returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDelivery is the request body for opening a delivery record. Price
// and distance are intentionally absent: quotes are computed server-side
// and nothing the client sends about money is trusted.
type NewDelivery struct {
	SenderName    string `json:"sender_name"`
	SenderPhone   string `json:"sender_phone"`
	ReceiverName  string `json:"receiver_name"`
	ReceiverPhone string `json:"receiver_phone"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Category      string `json:"category"`
	Tier          string `json:"tier"`
}

// DeliveryCreated is the response body for a successful creation.
type DeliveryCreated struct {
	ID string `json:"id"`
}

// StatusUpdate is the request body for a driver's outcome report.
type StatusUpdate struct {
	Status string `json:"status"`
}

// ReceiverUpdate is the request body for editing receiver details.
type ReceiverUpdate struct {
	ReceiverName  string `json:"receiver_name"`
	ReceiverPhone string `json:"receiver_phone"`
}

// AvailableDelivery is one backlog entry shown to browsing drivers.
type AvailableDelivery struct {
	ID                   string    `json:"id"`
	Origin               string    `json:"origin"`
	Destination          string    `json:"destination"`
	Category             string    `json:"category"`
	Tier                 string    `json:"tier"`
	DistanceKm           float64   `json:"distance_km"`
	Price                int       `json:"price"`
	MaxDeliveryTimeHours float64   `json:"max_delivery_time_hours"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

// DriverDelivery is one entry on the driver's board.
type DriverDelivery struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Category    string    `json:"category"`
	Tier        string    `json:"tier"`
	Price       int       `json:"price"`
	Earnings    int       `json:"earnings"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SenderDelivery is one entry on the sender's board.
type SenderDelivery struct {
	ID            string    `json:"id"`
	ReceiverName  string    `json:"receiver_name"`
	ReceiverPhone string    `json:"receiver_phone"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Category      string    `json:"category"`
	Tier          string    `json:"tier"`
	Price         int       `json:"price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
