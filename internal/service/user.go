package service

import (
	"context"
	"fmt"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// User implements account operations.
type User struct {
	store  model.UserStore
	logger *logger.Logger
}

// NewUser creates a new User service.
func NewUser(store model.UserStore, logger *logger.Logger) *User {
	return &User{store: store, logger: logger}
}

// Register creates a new account. Usernames are unique.
func (s *User) Register(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if params.Username == "" {
		return model.User{}, fmt.Errorf("%w: username is required", model.ErrValidation)
	}
	if params.Password == "" {
		return model.User{}, fmt.Errorf("%w: password is required", model.ErrValidation)
	}

	user, err := s.store.Create(ctx, params)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Get returns the account with the given id.
func (s *User) Get(ctx context.Context, id string) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
