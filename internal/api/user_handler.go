// Package api implements the HTTP request handlers and the translation of
// application errors into the wire-level error envelope.
package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/krongr/adboard/internal/api/shared"
	"github.com/krongr/adboard/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   shared.NewValidator(),
	}
}

// CreateUser handles POST /users/ requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationProblems(err))
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Name, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IDResponse{ID: user.ID})
}
