package websocket

import (
	"context"
	"errors"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	game, err := that.games.CreateGame(ctx, payload.Difficulty, payload.Mark)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	game, err := that.games.GetGame(ctx, payload.GameID)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleTurn(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if payload.Cell == nil {
		return ResponsePayload{}, errCellRequired
	}

	// on a rejected move the current game is still sent back so the UI can resync
	game, err := that.games.MakeTurn(ctx, payload.GameID, *payload.Cell)

	return ResponsePayload{Game: game}, err
}

func (that *Server) handleReset(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	game, err := that.games.ResetGame(ctx, payload.GameID, payload.Difficulty)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: game}, nil
}

func (that *Server) handleLeave(ctx context.Context, payload *Payload) (ResponsePayload, error) {
	if payload.GameID == "" {
		return ResponsePayload{}, errGameIDRequired
	}

	if err := that.games.LeaveGame(ctx, payload.GameID); err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{}, nil
}

func (that *Server) handleEvaluate(_ context.Context, payload *Payload) (ResponsePayload, error) {
	outcome, err := that.games.Evaluate(payload.Board)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Outcome: &outcome}, nil
}

func (that *Server) handleMove(_ context.Context, payload *Payload) (ResponsePayload, error) {
	cell, found, err := that.games.SelectMove(payload.Board, payload.Computer, payload.Difficulty)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Move: &Move{Cell: cell, Found: found}}, nil
}
