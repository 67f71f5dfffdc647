package domain

import (
	"context"
	"time"
)

// Region represents a weaving region, the primary catalog facet
type Region struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	State       string    `json:"state,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    *string   `json:"imageUrl" gorm:"column:image_url"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	SareeCount  int64     `json:"sareeCount" gorm:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Region) TableName() string {
	return "regions"
}

// RegionRepository defines the contract for region data access
type RegionRepository interface {
	Create(region *Region) error
	Upsert(region *Region) error
	FindByID(ctx context.Context, id string) (*Region, error)
	// FindAll returns regions ordered featured-first then by name, each with
	// its saree count populated.
	FindAll(ctx context.Context, featuredOnly bool) ([]Region, error)
	Count() (int64, error)
}
