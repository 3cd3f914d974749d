package http

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"todoapi/internal/adapter/database/postgres"
	pgrepo "todoapi/internal/adapter/database/postgres/repository"
	"todoapi/internal/adapter/database/sqlite"
	sqliterepo "todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/core/port"
	"todoapi/pkg/auth"
	"todoapi/pkg/config"
	"todoapi/pkg/tracing"
)

func StartServer(cfg *config.Config, metrics *tracing.AppMetrics, logger *config.AppLogger) {
	issuer, err := auth.NewJWT(cfg.JWTSecret)

	if err != nil {
		log.Fatal("Failed to initialize token issuer:", err)
	}

	userRepo, todoRepo := openRepositories(cfg)

	container := NewContainer(userRepo, todoRepo, issuer, metrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		AccountHandler: container.AccountHandler,
		TodoHandler:    container.TodoHandler,
	}, issuer, metrics, logger)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"database", databaseKind(cfg))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}

func openRepositories(cfg *config.Config) (port.UserRepository, port.TodoRepository) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(context.Background())

		if err != nil {
			log.Fatal("Failed to connect to postgres:", err)
		}

		return pgrepo.NewUserRepository(db), pgrepo.NewTodoRepository(db)
	}

	db, err := sqlite.NewDB()

	if err != nil {
		log.Fatal("Failed to open sqlite database:", err)
	}

	return sqliterepo.NewUserRepository(db), sqliterepo.NewTodoRepository(db)
}

func databaseKind(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}

	return "sqlite"
}
