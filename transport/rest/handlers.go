package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
)

type boardRequest struct {
	Board      []entity.Mark `json:"board"`
	Difficulty string        `json:"difficulty,omitempty"`
	Computer   string        `json:"computer,omitempty"`
}

type moveResponse struct {
	Cell  int  `json:"cell"`
	Found bool `json:"found"`
}

type createGameRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
	Mark       string `json:"mark,omitempty"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type resetRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// maxBodyBytes matches the websocket read limit.
const maxBodyBytes = 4096

var errCellRequired = errors.New("cell is required")

func (that *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if !that.decode(w, r, &req) {
		return
	}

	outcome, err := that.games.Evaluate(req.Board)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, outcome)
}

func (that *Server) selectMove(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if !that.decode(w, r, &req) {
		return
	}

	cell, found, err := that.games.SelectMove(req.Board, req.Computer, req.Difficulty)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Cell: cell, Found: found})
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.ContentLength != 0 && !that.decode(w, r, &req) {
		return
	}

	game, err := that.games.CreateGame(r.Context(), req.Difficulty, req.Mark)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if !that.decode(w, r, &req) {
		return
	}

	if req.Cell == nil {
		that.writeError(w, r, errCellRequired)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if r.ContentLength != 0 && !that.decode(w, r, &req) {
		return
	}

	game, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"), req.Difficulty)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) leaveGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.LeaveGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}

	return true
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errCellRequired), usecase.IsBadRequest(err):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case usecase.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
