package http

import (
	_ "github.com/DRSN-tech/catalog-api/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-api/internal/cfg"
	"github.com/DRSN-tech/catalog-api/internal/usecase"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, contentUC usecase.ContentUC, appCfg *cfg.AppCfg) {
	r.router.Use(requestID)
	if appCfg.Debug {
		r.router.Use(requestLogger(r.logger))
	}

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))

	metaHandler := NewMetaHandler(appCfg)
	r.router.Get("/", metaHandler.welcome)
	r.router.Get("/health", metaHandler.healthCheck)

	prHandler := NewProductHandler(catalogUC, r.logger)
	r.router.Get("/products", prHandler.listProducts)
	r.router.Get("/search", prHandler.searchProducts)

	ctHandler := NewContentHandler(contentUC, r.logger)
	r.router.Get("/users/{user_id}", ctHandler.getUser)
	r.router.Get("/articles/{article_id}", ctHandler.getArticle)
}
