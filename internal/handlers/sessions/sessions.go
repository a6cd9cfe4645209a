// Package sessions exposes the live bookkeeping of one game: the roster,
// the per-player buy-in counters, the monetary fields and the single
// inline-edit slot. Every mutation answers with the full refreshed view.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pokercds/pokercds/internal/bookkeeping"
	"github.com/pokercds/pokercds/internal/dto"
	gameservice "github.com/pokercds/pokercds/internal/service/gameservice"
	"github.com/pokercds/pokercds/pkg/money"
	"github.com/pokercds/pokercds/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Load(ctx context.Context, gameID int) (*gameservice.Snapshot, error)
	AddPlayer(ctx context.Context, gameID, memberID int) (*gameservice.Snapshot, error)
	RemovePlayer(ctx context.Context, gameID, memberID int) (*gameservice.Snapshot, error)
	IncrementCreditBuyin(ctx context.Context, gameID, memberID int) (*gameservice.Snapshot, error)
	DecrementCreditBuyin(ctx context.Context, gameID, memberID int) (*gameservice.Snapshot, error)
	IncrementCashBuyin(ctx context.Context, gameID, memberID int) (*gameservice.Snapshot, error)
	DecrementCashBuyin(ctx context.Context, gameID, memberID int) (*gameservice.Snapshot, error)
	SetMonetaryField(ctx context.Context, gameID, memberID int, field bookkeeping.MonetaryField, value string) (*gameservice.Snapshot, error)
	BeginInlineEdit(ctx context.Context, gameID, memberID int, field bookkeeping.MonetaryField, currentValue string) error
	CancelInlineEdit(ctx context.Context, gameID int) error
	CommitInlineEdit(ctx context.Context, gameID, memberID int, field bookkeeping.MonetaryField, value string) (*gameservice.Snapshot, error)
}

type SessionHandler struct {
	gameService Service
}

func New(gameService Service) *SessionHandler {
	return &SessionHandler{
		gameService: gameService,
	}
}

func toSessionsResponse(snap *gameservice.Snapshot) dto.GameSessionsResponseDTO {
	players := make([]dto.PlayerSessionResponseDTO, len(snap.Players))
	for i, p := range snap.Players {
		players[i] = dto.PlayerSessionResponseDTO{
			MemberID:          p.MemberID,
			MemberName:        p.MemberName,
			CreditBuyin:       p.CreditBuyin,
			CashBuyin:         p.CashBuyin,
			FinalChips:        money.Format(p.FinalChips),
			Rango:             money.Format(p.Rango),
			Pingo:             money.Format(p.Pingo),
			ReceivedAmount:    money.Format(p.ReceivedAmount),
			CalculatedBalance: money.Format(p.CalculatedBalance),
			BalanceClass:      string(p.BalanceClass),
		}
	}
	t := snap.Totals
	return dto.GameSessionsResponseDTO{
		Game: dto.GameResponseDTO{
			ID:          snap.Game.ID,
			GameDate:    snap.Game.GameDate.Format(dateLayout),
			Description: snap.Game.Description,
		},
		Players: players,
		Totals: dto.GameTotalsResponseDTO{
			TotalCreditBuyins:    t.TotalCreditBuyins,
			TotalCashBuyins:      t.TotalCashBuyins,
			TotalFinalChips:      money.Format(t.TotalFinalChips),
			TotalRango:           money.Format(t.TotalRango),
			TotalPingo:           money.Format(t.TotalPingo),
			TotalReceived:        money.Format(t.TotalReceived),
			TotalBalance:         money.Format(t.TotalBalance),
			TotalBalanceClass:    string(t.TotalBalanceClass),
			ChipDiscrepancy:      money.Format(t.ChipDiscrepancy),
			ChipDiscrepancyClass: string(t.ChipDiscrepancyClass),
		},
	}
}

// respondSnapshot maps mutation outcomes onto the shared error contract.
func respondSnapshot(w http.ResponseWriter, snap *gameservice.Snapshot, err error) {
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrGameNotFound),
			errors.Is(err, gameservice.ErrMemberNotFound),
			errors.Is(err, bookkeeping.ErrMemberNotInGame):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, bookkeeping.ErrMemberInGame),
			errors.Is(err, bookkeeping.ErrNoActiveEdit):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, bookkeeping.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, bookkeeping.ErrUnknownField):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionsResponse(snap))
}

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// Get godoc
//
//	@Summary		Get game sessions
//	@Description	Full bookkeeping view of a game: players, counters, monetary fields and totals
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{object}	dto.GameSessionsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid game id"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "gameID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return
	}
	snap, err := h.gameService.Load(r.Context(), gameID)
	respondSnapshot(w, snap, err)
}

// AddPlayer godoc
//
//	@Summary		Add a player to a game
//	@Description	Put a member on the game's roster with a zeroed session
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gameID	path		int						true	"Game ID"
//	@Param			request	body		dto.AddPlayerRequestDTO	true	"Member to add"
//	@Success		200		{object}	dto.GameSessionsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Game or member not found"
//	@Failure		409		{object}	utils.Response	"Member already in the game"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/players [post]
func (h *SessionHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "gameID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return
	}
	var req dto.AddPlayerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	snap, err := h.gameService.AddPlayer(r.Context(), gameID, req.MemberID)
	respondSnapshot(w, snap, err)
}

// RemovePlayer godoc
//
//	@Summary		Remove a player from a game
//	@Description	Drop a member from the roster together with their session
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID		path		int	true	"Game ID"
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid path parameter"
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/players/{memberID} [delete]
func (h *SessionHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	snap, err := h.gameService.RemovePlayer(r.Context(), gameID, memberID)
	respondSnapshot(w, snap, err)
}

func (h *SessionHandler) pathIDs(w http.ResponseWriter, r *http.Request) (gameID, memberID int, ok bool) {
	gameID, err := pathID(r, "gameID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return 0, 0, false
	}
	memberID, err = pathID(r, "memberID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return 0, 0, false
	}
	return gameID, memberID, true
}

// IncrementCreditBuyin godoc
//
//	@Summary		Add one credit buy-in
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID		path		int	true	"Game ID"
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/credit-buyin/increment [post]
func (h *SessionHandler) IncrementCreditBuyin(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	snap, err := h.gameService.IncrementCreditBuyin(r.Context(), gameID, memberID)
	respondSnapshot(w, snap, err)
}

// DecrementCreditBuyin godoc
//
//	@Summary		Remove one credit buy-in
//	@Description	Counters never go below zero; decrementing at zero is a no-op
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID		path		int	true	"Game ID"
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/credit-buyin/decrement [post]
func (h *SessionHandler) DecrementCreditBuyin(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	snap, err := h.gameService.DecrementCreditBuyin(r.Context(), gameID, memberID)
	respondSnapshot(w, snap, err)
}

// IncrementCashBuyin godoc
//
//	@Summary		Add one cash buy-in
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID		path		int	true	"Game ID"
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/cash-buyin/increment [post]
func (h *SessionHandler) IncrementCashBuyin(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	snap, err := h.gameService.IncrementCashBuyin(r.Context(), gameID, memberID)
	respondSnapshot(w, snap, err)
}

// DecrementCashBuyin godoc
//
//	@Summary		Remove one cash buy-in
//	@Description	Counters never go below zero; decrementing at zero is a no-op
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID		path		int	true	"Game ID"
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/cash-buyin/decrement [post]
func (h *SessionHandler) DecrementCashBuyin(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	snap, err := h.gameService.DecrementCashBuyin(r.Context(), gameID, memberID)
	respondSnapshot(w, snap, err)
}

// SetField godoc
//
//	@Summary		Set a monetary field
//	@Description	Write final_chips, rango, pingo or received_amount for one player. Negative or unparseable values are rejected and the stored value is kept.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gameID		path		int								true	"Game ID"
//	@Param			memberID	path		int								true	"Member ID"
//	@Param			field		path		string							true	"Field name"	Enums(final_chips, rango, pingo, received_amount)
//	@Param			request		body		dto.SetMonetaryFieldRequestDTO	true	"New value"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body or unknown field"
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		422			{object}	utils.Response	"Invalid monetary amount"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/fields/{field} [put]
func (h *SessionHandler) SetField(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	field, err := bookkeeping.ParseMonetaryField(chi.URLParam(r, "field"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req dto.SetMonetaryFieldRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	snap, err := h.gameService.SetMonetaryField(r.Context(), gameID, memberID, field, req.Value)
	respondSnapshot(w, snap, err)
}

// BeginEdit godoc
//
//	@Summary		Begin an inline edit
//	@Description	Open the single edit slot on one player's monetary cell. Starting an edit elsewhere abandons any uncommitted one.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gameID		path		int								true	"Game ID"
//	@Param			memberID	path		int								true	"Member ID"
//	@Param			request		body		dto.BeginInlineEditRequestDTO	true	"Cell to edit"
//	@Success		200			{object}	utils.Response	"Edit started"
//	@Failure		400			{object}	utils.Response	"Invalid request body or unknown field"
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/edit [post]
func (h *SessionHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	var req dto.BeginInlineEditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	field, err := bookkeeping.ParseMonetaryField(req.Field)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.gameService.BeginInlineEdit(r.Context(), gameID, memberID, field, req.CurrentValue); err != nil {
		respondSnapshot(w, nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Edit started"})
}

// CancelEdit godoc
//
//	@Summary		Cancel the inline edit
//	@Description	Discard the staged value; the stored one stands
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{object}	utils.Response	"Edit canceled"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/edit [delete]
func (h *SessionHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "gameID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return
	}
	if err := h.gameService.CancelInlineEdit(r.Context(), gameID); err != nil {
		respondSnapshot(w, nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Edit canceled"})
}

// CommitEdit godoc
//
//	@Summary		Commit the inline edit
//	@Description	Apply the staged value to the cell. A rejected value keeps both the stored value and the stage, so the commit can be retried.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gameID		path		int								true	"Game ID"
//	@Param			memberID	path		int								true	"Member ID"
//	@Param			request		body		dto.CommitInlineEditRequestDTO	true	"Cell and optional typed value"
//	@Success		200			{object}	dto.GameSessionsResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body or unknown field"
//	@Failure		404			{object}	utils.Response	"Game or member not found"
//	@Failure		409			{object}	utils.Response	"No matching edit in progress"
//	@Failure		422			{object}	utils.Response	"Invalid monetary amount"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID}/sessions/{memberID}/edit/commit [post]
func (h *SessionHandler) CommitEdit(w http.ResponseWriter, r *http.Request) {
	gameID, memberID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	var req dto.CommitInlineEditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	field, err := bookkeeping.ParseMonetaryField(req.Field)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	snap, err := h.gameService.CommitInlineEdit(r.Context(), gameID, memberID, field, req.Value)
	respondSnapshot(w, snap, err)
}
