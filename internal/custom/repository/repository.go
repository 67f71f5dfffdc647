package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/custom/domain"
)

// GormRequestRepository implements domain.RequestRepository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// AutoMigrate creates or updates the custom requests table.
func (r *GormRequestRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Request{})
}

func (r *GormRequestRepository) Create(ctx context.Context, request *domain.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *GormRequestRepository) FindByID(ctx context.Context, id string) (*domain.Request, error) {
	var request domain.Request
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *GormRequestRepository) FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.Request, int64, error) {
	var requests []domain.Request
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Request{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *GormRequestRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]domain.Request, int64, error) {
	var requests []domain.Request
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Request{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *GormRequestRepository) Update(ctx context.Context, request *domain.Request) error {
	return r.db.WithContext(ctx).Save(request).Error
}
