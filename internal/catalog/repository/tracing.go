package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// FindFiltered with tracing
func (r *GormCatalogRepositoryWithTracing) FindFiltered(ctx context.Context, filter domain.SareeFilter) ([]domain.Saree, int64, error) {
	ctx, span := tracer.Start(ctx, "repository.FindFiltered",
		trace.WithAttributes(
			attribute.String("filter.region_id", filter.RegionID),
			attribute.String("filter.type", filter.Type),
			attribute.String("filter.search", filter.Search),
			attribute.Int("filter.page", filter.Page),
			attribute.Int("filter.limit", filter.Limit),
		),
	)
	defer span.End()

	sarees, total, err := r.GormCatalogRepository.FindFiltered(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	span.SetAttributes(
		attribute.Int("result.count", len(sarees)),
		attribute.Int64("result.total", total),
	)
	return sarees, total, nil
}

// FindByID with tracing
func (r *GormCatalogRepositoryWithTracing) FindByID(ctx context.Context, id string) (*domain.Saree, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("saree.id", id)),
	)
	defer span.End()

	saree, err := r.GormCatalogRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("saree.title", saree.Title),
		attribute.String("saree.region_id", saree.RegionID),
	)
	return saree, nil
}

// FindRelated with tracing
func (r *GormCatalogRepositoryWithTracing) FindRelated(ctx context.Context, regionID, excludeID string, limit int) ([]domain.Saree, error) {
	ctx, span := tracer.Start(ctx, "repository.FindRelated",
		trace.WithAttributes(
			attribute.String("saree.region_id", regionID),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	sarees, err := r.GormCatalogRepository.FindRelated(ctx, regionID, excludeID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(sarees)))
	return sarees, nil
}
