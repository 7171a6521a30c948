package main

import (
	"BinViewer/internal/config"
	"BinViewer/internal/handlers"
	"BinViewer/internal/middleware"
	"BinViewer/internal/repo"
	"BinViewer/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	fileRepo := repo.NewFileRepository(gormDB)
	catalog := service.NewCatalogService(fileRepo, cfg.ResourcesDir, sugar)
	if _, err := catalog.Rescan(ctx); err != nil {
		sugar.Fatalw("failed to scan resources", "dir", cfg.ResourcesDir, "error", err)
	}

	h := handlers.NewHandler(catalog, sugar, cfg)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"ResourcesDir", cfg.ResourcesDir,
		"DatabaseDSN", cfg.DatabaseDSN != "",
	)

	srv := &http.Server{Addr: cfg.BaseURL, Handler: h.Router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		_ = srv.Shutdown(shutdownCtx)
	}()

	sugar.Infow("Starting server", "addr", cfg.BaseURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
}
