package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/example/maya-portal/internal/models"
)

// Postgres is the database-backed Store.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres wraps an initialized gorm connection.
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

// FindByEmail looks up a user by exact email.
func (p *Postgres) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID looks up a user by id.
func (p *Postgres) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := p.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Insert persists a new user. The unique email index reports duplicates.
func (p *Postgres) Insert(ctx context.Context, user *models.User) error {
	if err := p.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// ListHotels returns all hotels.
func (p *Postgres) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := p.db.WithContext(ctx).Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// OwnerOf resolves a hotel's owner. ok is false for unknown hotels.
func (p *Postgres) OwnerOf(ctx context.Context, hotelID int64) (*int64, bool, error) {
	var hotel models.Hotel
	if err := p.db.WithContext(ctx).Select("id", "owner_id").First(&hotel, "id = ?", hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return hotel.OwnerID, true, nil
}

// ListRestaurants returns all restaurants.
func (p *Postgres) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := p.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// ListExperiences returns all experiences.
func (p *Postgres) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := p.db.WithContext(ctx).Order("id").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// ListProducts returns a page of products plus the total count.
func (p *Postgres) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	var total int64
	if err := p.db.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := p.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ProductByID looks up a single product.
func (p *Postgres) ProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
