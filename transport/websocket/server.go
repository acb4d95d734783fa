package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	JumpTo(ctx context.Context, id string, step int) (*entity.Game, error)
	ToggleOrder(ctx context.Context, id string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, req *Request) (*entity.Game, error)

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	handlers    map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
	}

	server.handlers = map[string]handlerFunc{
		actionNewGame: server.handleNewGame,
		actionGetGame: server.handleGetGame,
		actionPlay:    server.handlePlay,
		actionJump:    server.handleJump,
		actionOrder:   server.handleOrder,
	}

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", that)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP upgrades the connection and serves messages until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error("failed to accept connection", "error", err)
		return
	}
	defer conn.CloseNow()

	log.Debug("WebSocket connection established")

	if err = that.handleMessages(r.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
		conn.Close(websocket.StatusInternalError, "internal error")
		return
	}

	conn.Close(websocket.StatusNormalClosure, "")
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	for {
		var msg Message

		err := wsjson.Read(ctx, conn, &msg)
		switch {
		case websocket.CloseStatus(err) == websocket.StatusNormalClosure,
			websocket.CloseStatus(err) == websocket.StatusGoingAway:
			return nil
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read message: %w", err)
		}

		if err = that.write(ctx, conn, msg.Action, that.dispatch(ctx, &msg)); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, msg *Message) Response {
	log := that.logger.With("method", "dispatch", "action", msg.Action)

	handler, ok := that.handlers[msg.Action]
	if !ok {
		return Response{Error: "unknown action " + msg.Action}
	}

	var req Request
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return Response{Error: "invalid payload"}
		}
	}

	game, err := handler(ctx, &req)
	if err != nil {
		log.Debug("request failed", "error", err)
		return Response{Error: err.Error()}
	}

	return Response{Game: tictactoe.Describe(game)}
}

func (that *Server) write(ctx context.Context, conn *websocket.Conn, action string, resp Response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = wsjson.Write(ctx, conn, Message{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}
