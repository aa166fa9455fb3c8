package model

import "context"

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

// User represents a registered patient account.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
