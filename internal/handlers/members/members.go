package members

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/dto"
	memberservice "github.com/pokercds/pokercds/internal/service/memberservice"
	pkgauth "github.com/pokercds/pokercds/pkg/auth"
	"github.com/pokercds/pokercds/pkg/utils"
	"github.com/pokercds/pokercds/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, input memberservice.RegisterInput) (*domain.Member, error)
	Update(ctx context.Context, memberID int, input memberservice.UpdateInput, actorIsAdmin bool) (*domain.Member, error)
	SetEnabled(ctx context.Context, memberID int, enabled bool) error
	Get(ctx context.Context, memberID int) (*domain.Member, error)
	List(ctx context.Context, limit, offset int) ([]domain.Member, error)
}

type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func toMemberResponse(m *domain.Member) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:          m.ID,
		CPF:         m.CPF,
		Name:        m.Name,
		Nickname:    m.Nickname,
		DisplayName: m.DisplayName(),
		Email:       m.Email,
		PixKey:      m.PixKey,
		Phone:       m.Phone,
		IsAdmin:     m.IsAdmin,
		IsEnabled:   m.IsEnabled,
		CreatedAt:   m.CreatedAt,
	}
}

// Register godoc
//
//	@Summary		Register a new member
//	@Description	Create a member account with CPF, profile data and an initial password. Admin only.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterMemberRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.MemberResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or validation failed"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		409		{object}	utils.Response	"CPF already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members [post]
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.memberService.Register(r.Context(), memberservice.RegisterInput{
		CPF:             req.CPF,
		Name:            req.Name,
		Nickname:        req.Nickname,
		Email:           req.Email,
		PixKey:          req.PixKey,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		IsAdmin:         req.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrCPFTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, memberservice.ErrMissingField),
			errors.Is(err, validate.ErrCPFTooLong),
			errors.Is(err, pkgauth.ErrPasswordTooShort),
			errors.Is(err, pkgauth.ErrPasswordMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberResponse(member))
}

// List godoc
//
//	@Summary		List members
//	@Description	List registered members, enabled first, then alphabetically
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"	default(100)
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.MemberResponseDTO
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/members [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r, "limit", 100)
	offset := intQueryParam(r, "offset", 0)

	members, err := h.memberService.List(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch members")
		return
	}

	response := make([]dto.MemberResponseDTO, len(members))
	for i := range members {
		response[i] = toMemberResponse(&members[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a member
//	@Description	Get one member's profile by id. Members can only read their own profile unless they are admins.
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.MemberResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid member id"
//	@Failure		403			{object}	utils.Response	"Profile access denied"
//	@Failure		404			{object}	utils.Response	"Member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{memberID} [get]
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	if !canAccessProfile(r, memberID) {
		utils.RespondWithError(w, http.StatusForbidden, "Profile access denied")
		return
	}

	member, err := h.memberService.Get(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberResponse(member))
}

// Update godoc
//
//	@Summary		Update a member profile
//	@Description	Edit name, nickname, email, pix key and phone. CPF never changes. Members can only edit their own profile unless they are admins; nickname changes are admin only.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			memberID	path		int							true	"Member ID"
//	@Param			request		body		dto.UpdateMemberRequestDTO	true	"Update request body"
//	@Success		200			{object}	dto.MemberResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body or validation failed"
//	@Failure		403			{object}	utils.Response	"Profile access denied or nickname change not allowed"
//	@Failure		404			{object}	utils.Response	"Member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{memberID} [put]
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	if !canAccessProfile(r, memberID) {
		utils.RespondWithError(w, http.StatusForbidden, "Profile access denied")
		return
	}
	isAdmin, _ := r.Context().Value(pkgauth.IsAdminKey).(bool)

	var req dto.UpdateMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.memberService.Update(r.Context(), memberID, memberservice.UpdateInput{
		Name:     req.Name,
		Nickname: req.Nickname,
		Email:    req.Email,
		PixKey:   req.PixKey,
		Phone:    req.Phone,
	}, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, memberservice.ErrNicknameLocked):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, memberservice.ErrMissingField):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMemberResponse(member))
}

// SetEnabled godoc
//
//	@Summary		Enable or disable a member
//	@Description	Toggle a member's access. Disabled members keep their history but cannot log in. Admin only.
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			memberID	path		int								true	"Member ID"
//	@Param			request		body		dto.SetMemberEnabledRequestDTO	true	"Enabled flag"
//	@Success		200			{object}	utils.Response	"Member access updated"
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		403			{object}	utils.Response	"Admin access required"
//	@Failure		404			{object}	utils.Response	"Member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/members/{memberID}/enabled [put]
func (h *MemberHandler) SetEnabled(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req dto.SetMemberEnabledRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.memberService.SetEnabled(r.Context(), memberID, req.Enabled); err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Member access updated"})
}

// canAccessProfile allows a member to reach their own profile and admins
// to reach anyone's.
func canAccessProfile(r *http.Request, memberID int) bool {
	if isAdmin, _ := r.Context().Value(pkgauth.IsAdminKey).(bool); isAdmin {
		return true
	}
	actorID, _ := r.Context().Value(pkgauth.MemberIDKey).(int)
	return actorID == memberID
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
