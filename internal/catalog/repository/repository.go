package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

// GormCatalogRepository implements the catalog repositories using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Region{}, &domain.Saree{})
}

// --- sarees ---

func (r *GormCatalogRepository) Create(saree *domain.Saree) error {
	if err := r.db.Create(saree).Error; err != nil {
		return fmt.Errorf("failed to create saree: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) Upsert(saree *domain.Saree) error {
	if err := r.db.Save(saree).Error; err != nil {
		return fmt.Errorf("failed to upsert saree: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) FindByID(ctx context.Context, id string) (*domain.Saree, error) {
	var saree domain.Saree
	err := r.db.WithContext(ctx).Preload("Region").First(&saree, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &saree, nil
}

// filterQuery translates a SareeFilter into the store's native query form.
// The same field semantics apply when the filter is matched in-process
// against the sample dataset.
func (r *GormCatalogRepository) filterQuery(ctx context.Context, filter domain.SareeFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Saree{})

	if filter.RegionID != "" {
		q = q.Where("region_id = ?", filter.RegionID)
	}
	if filter.Type != "" {
		q = q.Where("type ILIKE ?", "%"+filter.Type+"%")
	}
	if filter.Fabric != "" {
		q = q.Where("fabric ILIKE ?", "%"+filter.Fabric+"%")
	}
	if filter.BargainAllowed != nil {
		q = q.Where("is_bargain_allowed = ?", *filter.BargainAllowed)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("title ILIKE ? OR type ILIKE ? OR characteristics ILIKE ?", pattern, pattern, pattern)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	return q
}

// FindFiltered runs the page query and the count query concurrently; they are
// independent reads, but the caller gets either both results or an error.
func (r *GormCatalogRepository) FindFiltered(ctx context.Context, filter domain.SareeFilter) ([]domain.Saree, int64, error) {
	var (
		sarees   []domain.Saree
		total    int64
		itemsErr error
		countErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		itemsErr = r.filterQuery(ctx, filter).
			Preload("Region").
			Order("created_at DESC").
			Offset(filter.Skip()).
			Limit(filter.Limit).
			Find(&sarees).Error
	}()
	go func() {
		defer wg.Done()
		countErr = r.filterQuery(ctx, filter).Count(&total).Error
	}()
	wg.Wait()

	if itemsErr != nil {
		return nil, 0, fmt.Errorf("failed to query sarees: %w", itemsErr)
	}
	if countErr != nil {
		return nil, 0, fmt.Errorf("failed to count sarees: %w", countErr)
	}
	return sarees, total, nil
}

func (r *GormCatalogRepository) FindRelated(ctx context.Context, regionID, excludeID string, limit int) ([]domain.Saree, error) {
	var sarees []domain.Saree
	err := r.db.WithContext(ctx).
		Where("region_id = ? AND id <> ?", regionID, excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sarees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find related sarees: %w", err)
	}
	return sarees, nil
}

func (r *GormCatalogRepository) Update(saree *domain.Saree) error {
	if err := r.db.Save(saree).Error; err != nil {
		return fmt.Errorf("failed to update saree: %w", err)
	}
	return nil
}

func (r *GormCatalogRepository) Delete(id string) error {
	result := r.db.Delete(&domain.Saree{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete saree: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCatalogRepository) UpdateStock(id string, stock int) error {
	result := r.db.Model(&domain.Saree{}).Where("id = ?", id).Update("stock", stock)
	if result.Error != nil {
		return fmt.Errorf("failed to update stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCatalogRepository) DecrementStock(id string, quantity int) error {
	result := r.db.Model(&domain.Saree{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return fmt.Errorf("failed to decrement stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("insufficient stock for saree %s", id)
	}
	return nil
}

func (r *GormCatalogRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Saree{}).Count(&count).Error
	return count, err
}
