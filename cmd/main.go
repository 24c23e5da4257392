package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/todolist-backend/internal/data/repos"
	"github.com/yungbote/todolist-backend/internal/db"
	"github.com/yungbote/todolist-backend/internal/handlers"
	"github.com/yungbote/todolist-backend/internal/middleware"
	"github.com/yungbote/todolist-backend/internal/platform/envutil"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/server"
	"github.com/yungbote/todolist-backend/internal/services"
)

func main() {
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	port := envutil.String("PORT", "3000")
	shutdownTimeout := time.Duration(envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second
	allowOrigins := strings.Split(envutil.String("CORS_ALLOW_ORIGINS", "http://localhost:3001"), ",")

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	gormDB := postgresService.DB()

	log.Info("Setting up repos...")
	todoRepo := repos.NewTodoRepo(gormDB, log)
	labelRepo := repos.NewLabelRepo(gormDB, log)

	log.Info("Setting up services...")
	todoService := services.NewTodoService(log, todoRepo)
	labelService := services.NewLabelService(log, labelRepo)

	log.Info("Setting up handlers and router...")
	todoHandler := handlers.NewTodoHandler(todoService)
	labelHandler := handlers.NewLabelHandler(labelService)
	requestID := middleware.NewRequestIDMiddleware(log)

	router := server.NewRouter(server.RouterConfig{
		TodoHandler:  todoHandler,
		LabelHandler: labelHandler,
		RequestID:    requestID,
		AllowOrigins: allowOrigins,
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("Shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server exited with error", "error", err)
	}
	log.Info("Server stopped")
}
