package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/user/domain"
)

// GormUserRepository implements domain.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// AutoMigrate creates or updates the users table.
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{})
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindAll(ctx context.Context, role string, limit, offset int) ([]domain.User, int64, error) {
	var users []domain.User
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.User{})
	if role != "" {
		base = base.Where("role = ?", role)
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *GormUserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) Stats(ctx context.Context) (*domain.UserStats, error) {
	var stats domain.UserStats

	model := r.db.WithContext(ctx).Model(&domain.User{})
	if err := model.Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("role = ?", domain.RoleAdmin).
		Count(&stats.AdminUsers).Error
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(&domain.User{}).
		Where("is_active = ?", true).
		Count(&stats.ActiveUsers).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
