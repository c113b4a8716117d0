package models

import "time"

// Model provides shared columns for all tables. IDs are numeric and
// assigned by the database sequence (or by the in-memory store).
type Model struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
