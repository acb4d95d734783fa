package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/console"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/websocket"
)

var ErrUnknownStorage = errors.New("unknown storage")

// RunApp - runs the REST and WebSocket servers until a signal arrives or one of them fails.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	gameRepo, closeRepo, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	gameUseCase := usecase.NewGameManager(logger, gameRepo, metrics.New(registry))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewHandler(logger, gameUseCase, registry)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// RunConsole - plays a game on the terminal with games kept in memory.
func RunConsole(logger *slog.Logger) error {
	ctx, cancel := signalContext(logger.With("component", "console"))
	defer cancel()

	gameUseCase := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), metrics.New(prometheus.NewRegistry()))
	session := console.NewSession(gameUseCase, termenv.NewOutput(os.Stdout))

	if err := session.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigs)
		cancel()
	}
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection, conf.Redis.GameTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
