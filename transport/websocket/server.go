package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	shutdownTimeout = 5 * time.Second
	readLimit       = 4096
)

type gameUseCase interface {
	CreateGame(ctx context.Context, difficulty, mark string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID, difficulty string) (*entity.Game, error)
	LeaveGame(ctx context.Context, gameID string) error

	Evaluate(cells []entity.Mark) (entity.Outcome, error)
	SelectMove(cells []entity.Mark, computer, difficulty string) (int, bool, error)
}

type handler func(ctx context.Context, payload *Payload) (ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the browser UI may be served from another origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handler{
		actionNewGame:  server.handleNewGame,
		actionGetGame:  server.handleGetGame,
		actionTurn:     server.handleTurn,
		actionReset:    server.handleReset,
		actionLeave:    server.handleLeave,
		actionEvaluate: server.handleEvaluate,
		actionMove:     server.handleMove,
	}

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	// Shutdown does not track hijacked connections, so unblock the read on cancel.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				log.Info("connection closed on shutdown")
				return nil
			}

			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(raw, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = that.send(conn, actionError, ResponsePayload{Error: "invalid message"}); err != nil {
				return err
			}
			continue
		}

		response := that.dispatch(ctx, &message)

		if err = that.send(conn, message.Action, response); err != nil {
			return err
		}

		if response.Error != "" {
			log.Debug("request rejected", "action", message.Action, "error", response.Error)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) ResponsePayload {
	handle, ok := that.handlers[message.Action]
	if !ok {
		return ResponsePayload{Error: "unknown action: " + message.Action}
	}

	var payload Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return ResponsePayload{Error: "invalid payload"}
		}
	}

	response, err := handle(ctx, &payload)
	if err != nil {
		return ResponsePayload{Game: response.Game, Error: err.Error()}
	}

	return response
}

func (that *Server) send(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
