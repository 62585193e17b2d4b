package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

var (
	ErrAddrNotFound   = errors.New("redis host is empty")
	ErrUnknownStorage = errors.New("unknown storage")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	sessionRepo, closeStorage, err := initSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	engine := tictactoe.NewEngine(logger, conf.Search.Pruning)
	gameUseCase := usecase.NewGameManager(logger, sessionRepo, engine)

	router := rest.NewRouter(logger, gameUseCase, map[string]http.Handler{
		"/ws": websocket.New(logger, gameUseCase),
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage, "pruning", conf.Search.Pruning)

	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func initSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemorySessionRepository(conf.SessionTTL), func() error { return nil }, nil
	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(redisStorage.Connection, conf.SessionTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
