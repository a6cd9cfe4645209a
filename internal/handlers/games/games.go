package games

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pokercds/pokercds/internal/domain"
	"github.com/pokercds/pokercds/internal/dto"
	gameservice "github.com/pokercds/pokercds/internal/service/gameservice"
	"github.com/pokercds/pokercds/pkg/utils"
)

// Game dates travel as plain calendar days.
const dateLayout = "2006-01-02"

type Service interface {
	CreateGame(ctx context.Context, gameDate time.Time, description string) (*domain.Game, error)
	UpdateGame(ctx context.Context, gameID int, gameDate time.Time, description string) (*domain.Game, error)
	DeleteGame(ctx context.Context, gameID int) error
	GetGame(ctx context.Context, gameID int) (*domain.Game, error)
	ListGames(ctx context.Context, limit, offset int) ([]domain.Game, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

func toGameResponse(g *domain.Game) dto.GameResponseDTO {
	return dto.GameResponseDTO{
		ID:          g.ID,
		GameDate:    g.GameDate.Format(dateLayout),
		Description: g.Description,
	}
}

// Create godoc
//
//	@Summary		Create a game
//	@Description	Open a new game night on the given date
//	@Tags			Games
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGameRequestDTO	true	"Create game request body"
//	@Success		200		{object}	dto.GameResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or malformed date"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games [post]
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gameDate, err := time.Parse(dateLayout, req.GameDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game date, expected YYYY-MM-DD")
		return
	}

	game, err := h.gameService.CreateGame(r.Context(), gameDate, req.Description)
	if err != nil {
		if errors.Is(err, gameservice.ErrDateRequired) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGameResponse(game))
}

// List godoc
//
//	@Summary		List games
//	@Description	List game nights, most recent first
//	@Tags			Games
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"	default(50)
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.GameResponseDTO
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games [get]
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r, "limit", 50)
	offset := intQueryParam(r, "offset", 0)

	games, err := h.gameService.ListGames(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch games")
		return
	}

	response := make([]dto.GameResponseDTO, len(games))
	for i := range games {
		response[i] = toGameResponse(&games[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a game
//	@Description	Get one game night by id
//	@Tags			Games
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{object}	dto.GameResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid game id"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID} [get]
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, gameservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGameResponse(game))
}

// Update godoc
//
//	@Summary		Update a game
//	@Description	Change a game's date or description
//	@Tags			Games
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			gameID	path		int							true	"Game ID"
//	@Param			request	body		dto.UpdateGameRequestDTO	true	"Update game request body"
//	@Success		200		{object}	dto.GameResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or malformed date"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID} [put]
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	var req dto.UpdateGameRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gameDate, err := time.Parse(dateLayout, req.GameDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game date, expected YYYY-MM-DD")
		return
	}

	game, err := h.gameService.UpdateGame(r.Context(), gameID, gameDate, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrGameNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, gameservice.ErrDateRequired):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGameResponse(game))
}

// Delete godoc
//
//	@Summary		Delete a game
//	@Description	Remove a game night and all of its player sessions. Admin only.
//	@Tags			Games
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gameID	path		int	true	"Game ID"
//	@Success		200		{object}	utils.Response	"Game deleted"
//	@Failure		400		{object}	utils.Response	"Invalid game id"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Game not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/games/{gameID} [delete]
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid game id")
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), gameID); err != nil {
		if errors.Is(err, gameservice.ErrGameNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Game deleted"})
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
