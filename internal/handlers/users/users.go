package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/dto"
	"github.com/icopoint/icopoint/internal/service/authservice"
	"github.com/icopoint/icopoint/internal/service/userservice"
	"github.com/icopoint/icopoint/pkg/utils"
	"github.com/icopoint/icopoint/pkg/validate"
)

type Service interface {
	List(ctx context.Context, excludeAdmins bool) ([]domain.User, error)
	Create(ctx context.Context, username, password string, admin bool) (*domain.User, error)
	Update(ctx context.Context, id int, username, password string, admin bool) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}

// UserHandler serves the admin-only account management endpoints.
type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toResponse(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:       user.ID,
		Username: user.Username,
		Admin:    user.Admin,
	}
}

func userID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "userID"))
}

// ListUsers godoc
//
//	@Summary		List accounts
//	@Description	List all accounts; pass exclude_admins=true to hide admin accounts
//	@Tags			Users
//	@Produce		json
//	@Param			exclude_admins	query	bool	false	"Hide admin accounts"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	excludeAdmins := r.URL.Query().Get("exclude_admins") == "true"

	users, err := h.userService.List(r.Context(), excludeAdmins)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for i := range users {
		response = append(response, toResponse(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateUser godoc
//
//	@Summary		Create an account
//	@Description	Create a technician or admin account
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateUserRequestDTO	true	"Account fields"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		409	{object}	utils.Response	"Username already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), req.Username, req.Password, req.Admin)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(user))
}

// UpdateUser godoc
//
//	@Summary		Edit an account
//	@Description	Change username, admin flag and optionally the password of an account
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			userID	path	int							true	"User id"
//	@Param			request	body	dto.UpdateUserRequestDTO	true	"Account fields; empty password keeps the current one"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Username already taken"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{userID} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(r.Context(), id, req.Username, req.Password, req.Admin)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(user))
}

// DeleteUser godoc
//
//	@Summary		Delete an account
//	@Description	Remove an account; the bootstrap admin account is protected. Orders of the deleted user remain.
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path	int	true	"User id"
//	@Security		BearerAuth
//	@Success		204	"Account deleted"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Protected account"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{userID} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrProtectedUser):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, authservice.ErrUsernameTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
