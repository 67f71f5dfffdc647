package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Offer statuses.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCountered = "countered"
	StatusDeclined  = "declined"
)

var (
	ErrOfferNotFound     = errors.New("bargain offer not found")
	ErrOfferResolved     = errors.New("bargain offer already resolved")
	ErrInvalidResolution = errors.New("invalid bargain resolution")
)

// Offer represents a customer's price offer on a bargain-enabled saree.
type Offer struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	SareeID       string         `json:"sareeId" gorm:"not null;index"`
	SareeTitle    string         `json:"sareeTitle"`
	UserID        uint           `json:"userId" gorm:"not null;index"`
	ListPrice     int64          `json:"listPrice" gorm:"not null"`
	Amount        int64          `json:"amount" gorm:"not null"`
	DiscountPct   float64        `json:"discountPct"`
	CounterAmount *int64         `json:"counterAmount,omitempty"`
	Status        string         `json:"status" gorm:"default:'pending';index"`
	Note          string         `json:"note"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Offer) TableName() string {
	return "bargain_offers"
}

// Resolved reports whether the offer has left the pending state.
func (o *Offer) Resolved() bool {
	return o.Status != StatusPending
}

// OfferRepository defines the contract for bargain offer data access.
type OfferRepository interface {
	Create(ctx context.Context, offer *Offer) error
	FindByID(ctx context.Context, id string) (*Offer, error)
	FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]Offer, int64, error)
	FindAll(ctx context.Context, sareeID, status string, limit, offset int) ([]Offer, int64, error)
	Update(ctx context.Context, offer *Offer) error
}
