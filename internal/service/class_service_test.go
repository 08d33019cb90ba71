package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitbook/internal/cache"
	"fitbook/internal/model"
)

// MockClassRepository is a mock implementation of repository.ClassRepository.
type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) Create(ctx context.Context, class *model.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Class), args.Error(1)
}

func (m *MockClassRepository) List(ctx context.Context, offset, limit int) ([]model.Class, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Class), args.Error(1)
}

// A nil cache client behaves like a permanent miss, so the service can
// be exercised without redis.
var noCache *cache.Client

func TestClassService_CreateClass(t *testing.T) {
	repo := new(MockClassRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Class")).Return(nil)
	svc := NewClassService(repo, noCache)

	class, err := svc.CreateClass(context.Background(), &model.Class{
		Name:            "Morning Yoga",
		TrainerID:       3,
		Capacity:        20,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "Morning Yoga", class.Name)
	repo.AssertExpectations(t)
}

func TestClassService_ListClasses(t *testing.T) {
	classes := []model.Class{
		{ID: 1, Name: "Morning Yoga", Capacity: 20},
		{ID: 2, Name: "HIIT Blast", Capacity: 15},
	}

	t.Run("passes paging through", func(t *testing.T) {
		repo := new(MockClassRepository)
		repo.On("List", mock.Anything, 10, 20).Return(classes, nil)
		svc := NewClassService(repo, noCache)

		got, err := svc.ListClasses(context.Background(), 10, 20)
		require.NoError(t, err)
		assert.Equal(t, classes, got)
	})

	t.Run("clamps bad paging values", func(t *testing.T) {
		repo := new(MockClassRepository)
		repo.On("List", mock.Anything, 0, 100).Return(classes, nil)
		svc := NewClassService(repo, noCache)

		_, err := svc.ListClasses(context.Background(), -5, 0)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
