package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/order/domain"
)

// GormOrderRepository implements domain.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// AutoMigrate creates or updates the order tables.
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uint, limit, offset int) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Order{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, status string, limit, offset int) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	base := r.db.WithContext(ctx).Model(&domain.Order{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := base.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *GormOrderRepository) Stats(ctx context.Context) (*domain.OrderStats, error) {
	stats := &domain.OrderStats{CountByStatus: make(map[string]int64)}

	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	// Revenue counts only orders that were not cancelled.
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("status <> ?", domain.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	err = r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.CountByStatus[row.Status] = row.Count
	}
	return stats, nil
}
