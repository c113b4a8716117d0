package models

// User roles. The role is stamped into session tokens and drives the
// admin short-circuit in ownership checks.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a registered account. The password hash never leaves
// the server.
type User struct {
	Model
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:customer" json:"role"`
}
