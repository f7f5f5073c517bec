package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"cleaningparty/internal/model"
	"cleaningparty/internal/service"
	"cleaningparty/internal/store"
)

// GameHandler handles game endpoints. All rules live in the service; this
// layer only decodes requests and maps errors to statuses.
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new game handler.
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// JoinRequest is the request body for joining a game.
type JoinRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinResponse is returned after a successful join.
type JoinResponse struct {
	Success   bool        `json:"success"`
	PlayerID  string      `json:"playerId"`
	GameState *model.Game `json:"gameState"`
}

// Join handles POST /v1/games/{code}/join.
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	playerID, game, err := h.games.Join(r.Context(), code, req.PlayerName)
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, JoinResponse{
		Success:   true,
		PlayerID:  playerID,
		GameState: game,
	})
}

// StateResponse is the persisted game record plus the point-in-time phase
// and remaining-time view derived by this read.
type StateResponse struct {
	*model.Game
	Status      model.GameStatus `json:"status"`
	RemainingMS int64            `json:"remainingMs"`
}

// State handles GET /v1/games/{code}.
func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	game, err := h.games.State(r.Context(), code)
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}

	now := time.Now()
	writeJSON(w, http.StatusOK, StateResponse{
		Game:        game,
		Status:      game.Status(now),
		RemainingMS: game.Remaining(now).Milliseconds(),
	})
}

// GameStateResponse wraps the updated snapshot returned by every mutation.
type GameStateResponse struct {
	Success   bool        `json:"success"`
	GameState *model.Game `json:"gameState"`
}

// CompleteTaskRequest is the request body for completing a task. The
// partnerRequired flag is the caller's declaration, passed through to the
// engine unchanged.
type CompleteTaskRequest struct {
	PlayerID        string `json:"playerId"`
	TaskID          string `json:"taskId"`
	PartnerRequired bool   `json:"partnerRequired"`
}

// CompleteTask handles POST /v1/games/{code}/complete.
func (h *GameHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.games.CompleteTask(r.Context(), code, req.PlayerID, req.TaskID, req.PartnerRequired)
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GameStateResponse{Success: true, GameState: game})
}

// PartnerRequest is the request body for forming a partnership.
type PartnerRequest struct {
	PlayerID       string `json:"playerId"`
	TargetPlayerID string `json:"targetPlayerId"`
}

// Partner handles POST /v1/games/{code}/partner.
func (h *GameHandler) Partner(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req PartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := h.games.Partner(r.Context(), code, req.PlayerID, req.TargetPlayerID)
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GameStateResponse{Success: true, GameState: game})
}

// Start handles POST /v1/games/{code}/start.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	game, err := h.games.Start(r.Context(), code)
	if err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GameStateResponse{Success: true, GameState: game})
}

// QR handles GET /v1/games/{code}/qr: a PNG QR code of the game URL, for
// sharing the room with other players.
func (h *GameHandler) QR(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if _, err := h.games.State(r.Context(), code); err != nil {
		writeError(w, errorStatus(err), err.Error())
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	url := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

	const qrSize = 320
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "qr generation failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, service.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNameTaken),
		errors.Is(err, service.ErrPartnerRequired),
		errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
