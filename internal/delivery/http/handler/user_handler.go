package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/usecase"
	"gym-portal/pkg/response"
	"gym-portal/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Error fetching users")
		return
	}

	response.OK(w, users)
}

// Signup handles POST /api/users/signup. The body is the whole wizard form;
// the flat {username, email, password} payload is also accepted.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	req.Normalize()
	if !req.HasCredentials() {
		response.BadRequest(w, usecase.ErrMissingCredentials.Error())
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingCredentials),
			errors.Is(err, usecase.ErrInvalidConditions),
			errors.Is(err, usecase.ErrInvalidDateFormat),
			errors.Is(err, usecase.ErrInvalidMeasurement):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Error registering user")
		}
		return
	}

	response.Created(w, user)
}
