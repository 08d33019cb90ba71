package repository

import (
	"context"

	"gorm.io/gorm"

	"fitbook/internal/model"
)

// ClassRepository defines class persistence operations. Classes are
// immutable once created, so there is no update or delete.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id uint) (*model.Class, error)
	List(ctx context.Context, offset, limit int) ([]model.Class, error)
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a new class repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

// Create creates a new class.
func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

// FindByID finds a class by ID.
func (r *classRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// List returns classes ordered by ID with offset/limit paging.
func (r *classRepository) List(ctx context.Context, offset, limit int) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}
