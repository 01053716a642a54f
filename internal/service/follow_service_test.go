package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "fitplanhub/internal/errors"
	"fitplanhub/internal/model"
)

func TestFollowService_Follow(t *testing.T) {
	follower := &model.User{ID: 1, Role: model.RoleUser}
	trainer := &model.User{ID: 2, Name: "Alice", Role: model.RoleTrainer}

	tests := []struct {
		name          string
		follower      *model.User
		trainerID     uint
		setupMock     func(*MockUserRepository, *MockFollowRepository)
		expectedError error
	}{
		{
			name:      "successful follow",
			follower:  follower,
			trainerID: 2,
			setupMock: func(users *MockUserRepository, follows *MockFollowRepository) {
				users.On("FindTrainerByID", mock.Anything, uint(2)).Return(trainer, nil)
				follows.On("Create", mock.Anything, mock.AnythingOfType("*model.Follow")).Return(nil)
			},
		},
		{
			name:          "trainers may not follow",
			follower:      &model.User{ID: 3, Role: model.RoleTrainer},
			trainerID:     2,
			setupMock:     func(users *MockUserRepository, follows *MockFollowRepository) {},
			expectedError: apperrors.ErrTrainerCannotFollow,
		},
		{
			name:      "target is not a trainer",
			follower:  follower,
			trainerID: 5,
			setupMock: func(users *MockUserRepository, follows *MockFollowRepository) {
				users.On("FindTrainerByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTrainerNotFound,
		},
		{
			name:      "self follow",
			follower:  &model.User{ID: 2, Role: model.RoleUser},
			trainerID: 2,
			setupMock: func(users *MockUserRepository, follows *MockFollowRepository) {
				users.On("FindTrainerByID", mock.Anything, uint(2)).Return(trainer, nil)
			},
			expectedError: apperrors.ErrSelfFollow,
		},
		{
			name:      "duplicate follow",
			follower:  follower,
			trainerID: 2,
			setupMock: func(users *MockUserRepository, follows *MockFollowRepository) {
				users.On("FindTrainerByID", mock.Anything, uint(2)).Return(trainer, nil)
				follows.On("Create", mock.Anything, mock.AnythingOfType("*model.Follow")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyFollowing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			followRepo := new(MockFollowRepository)
			tt.setupMock(userRepo, followRepo)

			svc := NewFollowService(userRepo, followRepo, nil)
			err := svc.Follow(context.Background(), tt.follower, tt.trainerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			userRepo.AssertExpectations(t)
			followRepo.AssertExpectations(t)
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	follower := &model.User{ID: 1, Role: model.RoleUser}

	t.Run("removes an existing follow", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		followRepo := new(MockFollowRepository)
		followRepo.On("Delete", mock.Anything, uint(1), uint(2)).Return(true, nil)

		svc := NewFollowService(userRepo, followRepo, nil)
		assert.NoError(t, svc.Unfollow(context.Background(), follower, 2))
	})

	t.Run("not following", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		followRepo := new(MockFollowRepository)
		followRepo.On("Delete", mock.Anything, uint(1), uint(2)).Return(false, nil)

		svc := NewFollowService(userRepo, followRepo, nil)
		assert.ErrorIs(t, svc.Unfollow(context.Background(), follower, 2), apperrors.ErrNotFollowing)
	})
}

// Follow, unfollow, follow again: each step succeeds with no residual conflict.
func TestFollowService_FollowUnfollowCycle(t *testing.T) {
	follower := &model.User{ID: 1, Role: model.RoleUser}
	trainer := &model.User{ID: 2, Name: "Alice", Role: model.RoleTrainer}

	userRepo := new(MockUserRepository)
	followRepo := new(MockFollowRepository)

	userRepo.On("FindTrainerByID", mock.Anything, uint(2)).Return(trainer, nil)
	followRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Follow")).Return(nil).Twice()
	followRepo.On("Delete", mock.Anything, uint(1), uint(2)).Return(true, nil).Once()

	svc := NewFollowService(userRepo, followRepo, nil)
	ctx := context.Background()

	assert.NoError(t, svc.Follow(ctx, follower, 2))
	assert.NoError(t, svc.Unfollow(ctx, follower, 2))
	assert.NoError(t, svc.Follow(ctx, follower, 2))
	followRepo.AssertExpectations(t)
}
