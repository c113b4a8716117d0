package store

import (
	"context"
	"sync"
	"time"

	"github.com/example/maya-portal/internal/models"
)

// Memory is an in-process Store seeded with the demo catalog. It backs
// the server when no DATABASE_URL is configured, and the tests.
type Memory struct {
	mu          sync.RWMutex
	users       map[int64]models.User
	byEmail     map[string]int64
	nextUserID  int64
	hotels      []models.Hotel
	restaurants []models.Restaurant
	experiences []models.Experience
	products    []models.Product
}

// NewMemory returns a Memory store preloaded with the demo catalog.
func NewMemory() *Memory {
	m := &Memory{
		users:       make(map[int64]models.User),
		byEmail:     make(map[string]int64),
		hotels:      SeedHotels(),
		restaurants: SeedRestaurants(),
		experiences: SeedExperiences(),
		products:    SeedProducts(),
	}
	numberRows(m.hotels, func(h *models.Hotel, id int64) { h.ID = id })
	numberRows(m.restaurants, func(r *models.Restaurant, id int64) { r.ID = id })
	numberRows(m.experiences, func(e *models.Experience, id int64) { e.ID = id })
	numberRows(m.products, func(p *models.Product, id int64) { p.ID = id })
	return m
}

func numberRows[T any](rows []T, set func(*T, int64)) {
	for i := range rows {
		set(&rows[i], int64(i+1))
	}
}

// FindByEmail looks up a user by exact email.
func (m *Memory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := m.users[id]
	return &user, nil
}

// FindByID looks up a user by id.
func (m *Memory) FindByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Insert stores a new user, assigning its id and timestamps.
func (m *Memory) Insert(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	m.nextUserID++
	user.ID = m.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.ID] = *user
	m.byEmail[user.Email] = user.ID
	return nil
}

// ListHotels returns all hotels.
func (m *Memory) ListHotels(_ context.Context) ([]models.Hotel, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	hotels := make([]models.Hotel, len(m.hotels))
	copy(hotels, m.hotels)
	return hotels, nil
}

// OwnerOf resolves a hotel's owner. ok is false for unknown hotels.
func (m *Memory) OwnerOf(_ context.Context, hotelID int64) (*int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.hotels {
		if m.hotels[i].ID == hotelID {
			return m.hotels[i].OwnerID, true, nil
		}
	}
	return nil, false, nil
}

// SetHotelOwner assigns a hotel to a user. Used by demo setup and tests.
func (m *Memory) SetHotelOwner(hotelID, userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.hotels {
		if m.hotels[i].ID == hotelID {
			owner := userID
			m.hotels[i].OwnerID = &owner
			return true
		}
	}
	return false
}

// ListRestaurants returns all restaurants.
func (m *Memory) ListRestaurants(_ context.Context) ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	restaurants := make([]models.Restaurant, len(m.restaurants))
	copy(restaurants, m.restaurants)
	return restaurants, nil
}

// ListExperiences returns all experiences.
func (m *Memory) ListExperiences(_ context.Context) ([]models.Experience, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	experiences := make([]models.Experience, len(m.experiences))
	copy(experiences, m.experiences)
	return experiences, nil
}

// ListProducts returns a page of products plus the total count.
func (m *Memory) ListProducts(_ context.Context, limit, offset int) ([]models.Product, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := int64(len(m.products))
	if offset >= len(m.products) {
		return []models.Product{}, total, nil
	}

	end := offset + limit
	if end > len(m.products) {
		end = len(m.products)
	}

	page := make([]models.Product, end-offset)
	copy(page, m.products[offset:end])
	return page, total, nil
}

// ProductByID looks up a single product.
func (m *Memory) ProductByID(_ context.Context, id int64) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.products {
		if m.products[i].ID == id {
			product := m.products[i]
			return &product, nil
		}
	}
	return nil, ErrNotFound
}
