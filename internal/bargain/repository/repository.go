package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/bargain/domain"
)

// GormOfferRepository implements domain.OfferRepository using GORM.
type GormOfferRepository struct {
	db *gorm.DB
}

func NewGormOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// AutoMigrate creates or updates the bargain offers table.
func (r *GormOfferRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Offer{})
}

func (r *GormOfferRepository) Create(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *GormOfferRepository) FindByID(ctx context.Context, id string) (*domain.Offer, error) {
	var offer domain.Offer
	if err := r.db.WithContext(ctx).First(&offer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *GormOfferRepository) FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.Offer, int64, error) {
	var offers []domain.Offer
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Offer{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&offers).Error
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

func (r *GormOfferRepository) FindAll(ctx context.Context, sareeID, status string, limit, offset int) ([]domain.Offer, int64, error) {
	var offers []domain.Offer
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Offer{})
	if sareeID != "" {
		base = base.Where("saree_id = ?", sareeID)
	}
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&offers).Error
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

func (r *GormOfferRepository) Update(ctx context.Context, offer *domain.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}
