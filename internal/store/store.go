// Package store defines the persistence collaborators consumed by the
// handlers, with in-memory and Postgres-backed implementations.
package store

import (
	"context"
	"errors"

	"github.com/example/maya-portal/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateEmail is returned when inserting a user whose email is taken.
	ErrDuplicateEmail = errors.New("store: email already registered")
)

// Users looks up and creates user accounts.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// Hotels lists hotels and resolves their ownership.
type Hotels interface {
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	// OwnerOf returns the hotel's owner, if any. ok is false when the
	// hotel does not exist.
	OwnerOf(ctx context.Context, hotelID int64) (owner *int64, ok bool, err error)
}

// Catalog serves the static browsing data.
type Catalog interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	ListExperiences(ctx context.Context) ([]models.Experience, error)
	ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error)
	ProductByID(ctx context.Context, id int64) (*models.Product, error)
}

// Store bundles all persistence collaborators.
type Store interface {
	Users
	Hotels
	Catalog
}
