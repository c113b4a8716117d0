// Package ledger keeps each user's reservations and running total in
// memory, serializing mutations per user.
package ledger

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when no reservation matches the given id.
	ErrNotFound = errors.New("ledger: reservation not found")
	// ErrAlreadyCancelled is returned when cancelling a reservation twice.
	ErrAlreadyCancelled = errors.New("ledger: reservation already cancelled")
)

// Ledger holds booking histories sharded by user id. Each user's
// history is guarded by its own mutex, so operations on different users
// never contend.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int64]*account
}

type account struct {
	mu      sync.Mutex
	history History
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[int64]*account)}
}

// account returns the per-user shard, creating it on first access.
func (l *Ledger) account(userID int64) *account {
	l.mu.RLock()
	a := l.accounts[userID]
	l.mu.RUnlock()
	if a != nil {
		return a
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if a = l.accounts[userID]; a == nil {
		a = &account{}
		l.accounts[userID] = a
	}
	return a
}

// HotelRequest describes a hotel reservation to append.
type HotelRequest struct {
	Name         string
	Total        float64
	CheckinDate  string
	CheckoutDate string
	Addons       []string
}

// AppendHotel records a confirmed hotel reservation and adds its total
// to the user's running spend.
func (l *Ledger) AppendHotel(userID int64, req HotelRequest) HotelReservation {
	a := l.account(userID)
	a.mu.Lock()
	defer a.mu.Unlock()

	r := HotelReservation{
		Record:       newRecord("H", req.Name, req.Total, time.Now()),
		CheckinDate:  req.CheckinDate,
		CheckoutDate: req.CheckoutDate,
		Addons:       req.Addons,
	}
	a.history.Hotels = append(a.history.Hotels, r)
	a.history.TotalSpent += req.Total
	return r
}

// ExperienceRequest describes an experience reservation to append.
type ExperienceRequest struct {
	Name    string
	Total   float64
	Guests  int
	Details string
}

// AppendExperience records a confirmed experience reservation.
func (l *Ledger) AppendExperience(userID int64, req ExperienceRequest) ExperienceReservation {
	a := l.account(userID)
	a.mu.Lock()
	defer a.mu.Unlock()

	r := ExperienceReservation{
		Record:  newRecord("E", req.Name, req.Total, time.Now()),
		Guests:  req.Guests,
		Details: req.Details,
	}
	a.history.Experiences = append(a.history.Experiences, r)
	a.history.TotalSpent += req.Total
	return r
}

// RestaurantRequest describes a restaurant order to append.
type RestaurantRequest struct {
	Name  string
	Total float64
	Items []string
}

// AppendRestaurant records a confirmed restaurant order.
func (l *Ledger) AppendRestaurant(userID int64, req RestaurantRequest) RestaurantOrder {
	a := l.account(userID)
	a.mu.Lock()
	defer a.mu.Unlock()

	r := RestaurantOrder{
		Record: newRecord("R", req.Name, req.Total, time.Now()),
		Items:  req.Items,
	}
	a.history.Restaurants = append(a.history.Restaurants, r)
	a.history.TotalSpent += req.Total
	return r
}

// PurchaseRequest describes a product purchase to append.
type PurchaseRequest struct {
	Name  string
	Total float64
	Items []string
}

// AppendPurchase records a confirmed marketplace purchase.
func (l *Ledger) AppendPurchase(userID int64, req PurchaseRequest) Purchase {
	a := l.account(userID)
	a.mu.Lock()
	defer a.mu.Unlock()

	r := Purchase{
		Record: newRecord("P", req.Name, req.Total, time.Now()),
		Items:  req.Items,
	}
	a.history.Purchases = append(a.history.Purchases, r)
	a.history.TotalSpent += req.Total
	return r
}

// Snapshot returns a point-in-time copy of the user's history. The
// returned value shares no mutable state with the ledger.
func (l *Ledger) Snapshot(userID int64) History {
	a := l.account(userID)
	a.mu.Lock()
	defer a.mu.Unlock()

	h := History{
		Hotels:      make([]HotelReservation, len(a.history.Hotels)),
		Restaurants: make([]RestaurantOrder, len(a.history.Restaurants)),
		Experiences: make([]ExperienceReservation, len(a.history.Experiences)),
		Purchases:   make([]Purchase, len(a.history.Purchases)),
		TotalSpent:  a.history.TotalSpent,
	}
	copy(h.Hotels, a.history.Hotels)
	copy(h.Restaurants, a.history.Restaurants)
	copy(h.Experiences, a.history.Experiences)
	copy(h.Purchases, a.history.Purchases)
	return h
}

// Cancel marks a reservation cancelled and subtracts its total from the
// user's running spend exactly once.
func (l *Ledger) Cancel(userID int64, reservationID string) error {
	a := l.account(userID)
	a.mu.Lock()
	defer a.mu.Unlock()

	rec := a.history.find(reservationID)
	if rec == nil {
		return ErrNotFound
	}
	if rec.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	rec.Status = StatusCancelled
	a.history.TotalSpent -= rec.Total
	return nil
}
