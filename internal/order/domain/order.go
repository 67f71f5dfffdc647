package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Order statuses.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusShipped   = "SHIPPED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order represents a placed order.
type Order struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"userId" gorm:"not null;index"`
	Items           []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal        int64          `json:"subtotal" gorm:"not null"`
	PolishTotal     int64          `json:"polishTotal"`
	TotalAmount     int64          `json:"totalAmount" gorm:"not null"`
	Status          string         `json:"status" gorm:"default:'PENDING';index"`
	PaymentMethod   string         `json:"paymentMethod" gorm:"default:'RAZORPAY'"`
	TransactionID   string         `json:"transactionId"`
	ShippingName    string         `json:"shippingName"`
	ShippingPhone   string         `json:"shippingPhone"`
	ShippingAddress string         `json:"shippingAddress"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a single saree line within an order. UnitPrice is the price
// at the time of purchase, not the current catalog price.
type OrderItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderID     string `json:"orderId" gorm:"not null;index"`
	SareeID     string `json:"sareeId" gorm:"not null"`
	Title       string `json:"title"`
	UnitPrice   int64  `json:"unitPrice" gorm:"not null"`
	Quantity    int    `json:"quantity" gorm:"not null"`
	WithPolish  bool   `json:"withPolish"`
	PolishPrice int64  `json:"polishPrice"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is the item price including polish, times quantity.
func (i OrderItem) LineTotal() int64 {
	unit := i.UnitPrice
	if i.WithPolish {
		unit += i.PolishPrice
	}
	return unit * int64(i.Quantity)
}

// OrderStats aggregates order counts and revenue for the admin dashboard.
type OrderStats struct {
	TotalOrders   int64            `json:"totalOrders"`
	TotalRevenue  int64            `json:"totalRevenue"`
	CountByStatus map[string]int64 `json:"countByStatus"`
}

// OrderRepository defines the contract for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]Order, int64, error)
	FindAll(ctx context.Context, status string, limit, offset int) ([]Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Stats(ctx context.Context) (*OrderStats, error)
}
