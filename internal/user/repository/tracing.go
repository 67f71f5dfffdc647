package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/vastrika/storefront/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// GormUserRepositoryWithTracing wraps GormUserRepository with tracing
type GormUserRepositoryWithTracing struct {
	*GormUserRepository
}

// NewGormUserRepositoryWithTracing creates a new repository with tracing
func NewGormUserRepositoryWithTracing(db *gorm.DB) *GormUserRepositoryWithTracing {
	return &GormUserRepositoryWithTracing{
		GormUserRepository: NewGormUserRepository(db),
	}
}

// Create with tracing
func (r *GormUserRepositoryWithTracing) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.String("user.username", user.Username)),
	)
	defer span.End()

	if err := r.GormUserRepository.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int64("user.id", int64(user.ID)))
	return nil
}

// FindByID with tracing
func (r *GormUserRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int64("user.id", int64(id))),
	)
	defer span.End()

	user, err := r.GormUserRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindByUsername with tracing
func (r *GormUserRepositoryWithTracing) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUsername",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	user, err := r.GormUserRepository.FindByUsername(ctx, username)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}
