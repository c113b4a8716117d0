package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Reservation statuses. Every reservation starts out confirmed.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Record holds the fields shared by all reservation variants.
type Record struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Total  float64 `json:"total"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
}

// HotelReservation is a confirmed hotel stay.
type HotelReservation struct {
	Record
	CheckinDate  string   `json:"checkin_date,omitempty"`
	CheckoutDate string   `json:"checkout_date,omitempty"`
	Addons       []string `json:"addons,omitempty"`
}

// ExperienceReservation is a booked tour or activity.
type ExperienceReservation struct {
	Record
	Guests  int    `json:"personas"`
	Details string `json:"details,omitempty"`
}

// RestaurantOrder is a placed restaurant order.
type RestaurantOrder struct {
	Record
	Items []string `json:"items,omitempty"`
}

// Purchase is a marketplace product purchase.
type Purchase struct {
	Record
	Items []string `json:"items,omitempty"`
}

// History is a user's aggregate of reservations across all variants.
// TotalSpent covers non-cancelled reservations only.
type History struct {
	Hotels      []HotelReservation      `json:"hotels"`
	Restaurants []RestaurantOrder       `json:"restaurants"`
	Experiences []ExperienceReservation `json:"experiences"`
	Purchases   []Purchase              `json:"purchases"`
	TotalSpent  float64                 `json:"total_spent"`
}

// newRecord stamps a fresh reservation record. The id is a type prefix
// plus the creation millisecond, with a random suffix so appends within
// the same millisecond cannot collide.
func newRecord(prefix, name string, total float64, now time.Time) Record {
	return Record{
		ID:     fmt.Sprintf("%s%d-%s", prefix, now.UnixMilli(), uuid.NewString()[:8]),
		Name:   name,
		Total:  total,
		Date:   now.UTC().Format(time.RFC3339),
		Status: StatusConfirmed,
	}
}

// find locates a reservation record across all variant sequences.
func (h *History) find(id string) *Record {
	for i := range h.Hotels {
		if h.Hotels[i].ID == id {
			return &h.Hotels[i].Record
		}
	}
	for i := range h.Restaurants {
		if h.Restaurants[i].ID == id {
			return &h.Restaurants[i].Record
		}
	}
	for i := range h.Experiences {
		if h.Experiences[i].ID == id {
			return &h.Experiences[i].Record
		}
	}
	for i := range h.Purchases {
		if h.Purchases[i].ID == id {
			return &h.Purchases[i].Record
		}
	}
	return nil
}
