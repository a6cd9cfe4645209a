package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/dto"
	authservice "github.com/pokercds/pokercds/internal/service/authservice"
	pkgauth "github.com/pokercds/pokercds/pkg/auth"
	"github.com/pokercds/pokercds/pkg/utils"
)

type Service interface {
	Authenticate(ctx context.Context, cpf, password string) (*domain.Member, error)
	ChangePassword(ctx context.Context, memberID int, current, newPassword, confirmation string) error
	GenerateToken(memberID int, isAdmin bool) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Authenticate member
//	@Description	Log in with CPF and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	member, err := h.authService.Authenticate(r.Context(), req.CPF, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(member.ID, member.IsAdmin)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Member successfully authenticated",
	})
}

// ChangePassword godoc
//
//	@Summary		Change own password
//	@Description	Change the authenticated member's password after verifying the current one
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChangePasswordRequestDTO	true	"Change password request body"
//	@Success		200		{object}	utils.Response	"Password changed"
//	@Failure		400		{object}	utils.Response	"Invalid request body or new password rejected"
//	@Failure		401		{object}	utils.Response	"Current password does not match"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(pkgauth.MemberIDKey).(int)

	var req dto.ChangePasswordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(r.Context(), memberID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrInvalidCredentials):
			utils.RespondWithError(w, http.StatusUnauthorized, "Current password does not match")
		case errors.Is(err, pkgauth.ErrPasswordTooShort), errors.Is(err, pkgauth.ErrPasswordMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Password changed"})
}
