package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-api/internal/cfg"
	v1Http "github.com/DRSN-tech/catalog-api/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-api/internal/repository/memory"
	"github.com/DRSN-tech/catalog-api/internal/usecase"
	"github.com/DRSN-tech/catalog-api/pkg/closer"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Run собирает зависимости приложения и запускает HTTP-сервер.
// Возвращает ошибку только при фатальном сбое сервера.
func Run(cfg *config.Config, log logger.Logger) error {
	productRepo := memory.NewProductRepo(memory.SeedProducts())

	validate := validator.New()
	catalogUC := usecase.NewCatalogUC(productRepo, validate, log)
	contentUC := usecase.NewContentUC(log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, contentUC, cfg.App)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	cl := closer.NewCloser(0)
	cl.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Errorf(err, "shutdown error")
	} else {
		log.Infof("HTTP server stopped")
	}

	log.Infof("Application shutdown complete")

	return appErr
}
