package models

// Hotel is a bookable property. OwnerID is nil for platform-owned
// hotels; otherwise it references the managing user.
type Hotel struct {
	Model
	Name     string `json:"name"`
	Location string `json:"location"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	OwnerID  *int64 `gorm:"index" json:"owner_id,omitempty"`
}

// Restaurant is a listed dining venue.
type Restaurant struct {
	Model
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
	Image     string `json:"image"`
}

// Experience is a bookable tour or activity.
type Experience struct {
	Model
	Type  string `json:"type"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// Product is an artisan marketplace item.
type Product struct {
	Model
	Name        string `json:"name"`
	Artisan     string `json:"artisan"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"img"`
	Description string `json:"desc"`
}
