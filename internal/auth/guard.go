package auth

import (
	"context"
	"strings"
	"time"

	"github.com/example/maya-portal/internal/models"
)

// AuthenticateHeader extracts a bearer token from an Authorization
// header value, validates it and resolves the caller identity.
func AuthenticateHeader(header, secret string, now time.Time) (Identity, error) {
	if header == "" {
		return Identity{}, ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return Identity{}, ErrMalformedHeader
	}

	claims, err := ParseToken(secret, parts[1], now)
	if err != nil {
		return Identity{}, err
	}

	return Identity{ID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// OwnershipLookup resolves a hotel's owning user. ok is false when the
// hotel does not exist.
type OwnershipLookup interface {
	OwnerOf(ctx context.Context, hotelID int64) (owner *int64, ok bool, err error)
}

// AuthorizeHotelOwner reports whether the caller may manage the hotel.
// Admins are always allowed; otherwise the caller must be the recorded
// owner. A nonexistent hotel yields false, not an error.
func AuthorizeHotelOwner(ctx context.Context, identity Identity, hotelID int64, hotels OwnershipLookup) (bool, error) {
	if identity.Role == models.RoleAdmin {
		return true, nil
	}

	owner, ok, err := hotels.OwnerOf(ctx, hotelID)
	if err != nil {
		return false, err
	}
	if !ok || owner == nil {
		return false, nil
	}

	return *owner == identity.ID, nil
}
