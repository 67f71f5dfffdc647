package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Request statuses.
const (
	StatusSubmitted = "submitted"
	StatusQuoted    = "quoted"
	StatusDeclined  = "declined"
)

var (
	ErrRequestNotFound = errors.New("custom request not found")
	ErrRequestResolved = errors.New("custom request already resolved")
	ErrUnknownOption   = errors.New("unknown design option")
)

// Request represents a custom saree design request built from the design
// option catalogs.
type Request struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"userId" gorm:"not null;index"`
	Border      string         `json:"border" gorm:"not null"`
	Pallu       string         `json:"pallu" gorm:"not null"`
	Color       string         `json:"color" gorm:"not null"`
	Notes       string         `json:"notes"`
	Status      string         `json:"status" gorm:"default:'submitted';index"`
	QuotedPrice *int64         `json:"quotedPrice,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Request) TableName() string {
	return "custom_requests"
}

// Resolved reports whether the request has left the submitted state.
func (r *Request) Resolved() bool {
	return r.Status != StatusSubmitted
}

// BorderStyle is a selectable border option.
type BorderStyle struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// PalluDesign is a selectable pallu option.
type PalluDesign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BaseColor is a selectable base color option with its display hex.
type BaseColor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DesignOptions bundles the option catalogs served to the builder UI.
type DesignOptions struct {
	Borders []BorderStyle `json:"borders"`
	Pallus  []PalluDesign `json:"pallus"`
	Colors  []BaseColor   `json:"colors"`
}

// RequestRepository defines the contract for custom request data access.
type RequestRepository interface {
	Create(ctx context.Context, request *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]Request, int64, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]Request, int64, error)
	Update(ctx context.Context, request *Request) error
}
