package domain

import (
	"context"
	"time"

	"github.com/lib/pq"
)

// Saree represents the sellable catalog item
type Saree struct {
	ID                string         `json:"id" gorm:"primaryKey"`
	Title             string         `json:"title" gorm:"not null"`
	RegionID          string         `json:"regionId" gorm:"not null;index"`
	Type              string         `json:"type" gorm:"not null"`
	Fabric            string         `json:"fabric"`
	Characteristics   string         `json:"characteristics"`
	Price             int64          `json:"price" gorm:"not null"`
	MRP               int64          `json:"mrp,omitempty" gorm:"column:mrp"`
	Stock             int            `json:"stock" gorm:"not null;default:0"`
	Images            pq.StringArray `json:"images" gorm:"type:text[]"`
	IsBargainAllowed  bool           `json:"isBargainAllowed" gorm:"default:false"`
	PolishPrice       int64          `json:"polishPrice,omitempty"`
	IsCustomAvailable bool           `json:"isCustomAvailable" gorm:"default:false"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	Region            *Region        `json:"region,omitempty" gorm:"foreignKey:RegionID"`
}

// TableName specifies the table name
func (Saree) TableName() string {
	return "sarees"
}

// InStock reports whether the saree can currently be ordered
func (s *Saree) InStock() bool {
	return s.Stock > 0
}

// SareeRepository defines the contract for saree data access
type SareeRepository interface {
	Create(saree *Saree) error
	Upsert(saree *Saree) error
	FindByID(ctx context.Context, id string) (*Saree, error)
	// FindFiltered returns the page of sarees matching the filter ordered by
	// creation time descending, plus the total match count. Items and count
	// succeed or fail as a pair.
	FindFiltered(ctx context.Context, filter SareeFilter) ([]Saree, int64, error)
	// FindRelated returns up to limit sarees from the same region, excluding
	// the given saree, newest first.
	FindRelated(ctx context.Context, regionID, excludeID string, limit int) ([]Saree, error)
	Update(saree *Saree) error
	Delete(id string) error
	UpdateStock(id string, stock int) error
	// DecrementStock atomically reduces stock, never below zero.
	DecrementStock(id string, quantity int) error
	Count() (int64, error)
}
