package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kneeboard/kneeboard-server/internal/logger"
	"github.com/kneeboard/kneeboard-server/internal/model"
)

// UserService defines business operations for accounts.
type UserService interface {
	Register(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
}

// User handles HTTP endpoints for accounts.
type User struct {
	service UserService
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{service: service, logger: logger}
}

// Create registers an account.
func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var params model.CreateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid user data")
		return
	}

	user, err := h.service.Register(r.Context(), params)
	if err != nil {
		handleError(w, err, "user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Get returns the account with the given id.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, err, "user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
