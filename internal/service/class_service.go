package service

import (
	"context"
	"fmt"
	"time"

	"fitbook/internal/cache"
	"fitbook/internal/model"
	"fitbook/internal/repository"
)

const classCacheTTL = time.Minute

// ClassService exposes class creation and listing.
type ClassService interface {
	CreateClass(ctx context.Context, class *model.Class) (*model.Class, error)
	ListClasses(ctx context.Context, offset, limit int) ([]model.Class, error)
}

type classService struct {
	classes repository.ClassRepository
	cache   *cache.Client
}

// NewClassService builds a ClassService with repository and cache.
func NewClassService(classes repository.ClassRepository, cache *cache.Client) ClassService {
	return &classService{classes: classes, cache: cache}
}

func classListKey(offset, limit int) string {
	return fmt.Sprintf("classes:%d:%d", offset, limit)
}

// CreateClass stores a new class and invalidates the first listing page.
func (s *classService) CreateClass(ctx context.Context, class *model.Class) (*model.Class, error) {
	if err := s.classes.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}
	_ = s.cache.Delete(ctx, classListKey(0, defaultListLimit))
	return class, nil
}

const defaultListLimit = 100

// ListClasses returns a page of classes, read through the cache.
// Classes are read-mostly, so staleness bounded by classCacheTTL is fine.
func (s *classService) ListClasses(ctx context.Context, offset, limit int) ([]model.Class, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	key := classListKey(offset, limit)
	var cached []model.Class
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	classes, err := s.classes.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	s.cache.SetJSON(ctx, key, classes, classCacheTTL)
	return classes, nil
}
