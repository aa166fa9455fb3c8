package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kneeboard/kneeboard-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository is an in-memory user store. State lives for the process
// lifetime only; a restart discards everything.
type UserRepository struct {
	mu    sync.RWMutex
	users []model.User
	index map[string]int
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{index: make(map[string]int)}
}

// Create inserts a user. Usernames are unique: a second user with the same
// username is rejected with model.ErrDuplicate.
func (r *UserRepository) Create(_ context.Context, params model.CreateUserParams) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == params.Username {
			return model.User{}, model.ErrDuplicate
		}
	}

	user := model.User{
		ID:       uuid.NewString(),
		Username: params.Username,
		Password: params.Password,
	}
	r.index[user.ID] = len(r.users)
	r.users = append(r.users, user)

	return user, nil
}

// GetByID returns the user with the given id.
func (r *UserRepository) GetByID(_ context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return r.users[i], nil
}

// GetByUsername returns the user with the given username.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}
