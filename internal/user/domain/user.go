package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Role types
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")

// User represents a storefront customer or administrator.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	FullName  string         `json:"fullName" gorm:"not null"`
	Phone     string         `json:"phone"`
	Address   string         `json:"address"`
	Role      string         `json:"role" gorm:"not null;default:'user'"`
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserStats aggregates user counts for the admin dashboard.
type UserStats struct {
	TotalUsers  int64 `json:"totalUsers"`
	AdminUsers  int64 `json:"adminUsers"`
	ActiveUsers int64 `json:"activeUsers"`
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, role string, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*UserStats, error)
}
