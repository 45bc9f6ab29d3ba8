package http

import (
	"fmt"
	"net/http"

	"github.com/DRSN-tech/catalog-api/internal/cfg"
)

// MetaHandler отдает статические метаданные приложения.
type MetaHandler struct {
	appCfg *cfg.AppCfg
}

func NewMetaHandler(appCfg *cfg.AppCfg) *MetaHandler {
	return &MetaHandler{appCfg: appCfg}
}

type WelcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// welcome
//
//	@Summary	Приветственное сообщение API
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	WelcomeResponse
//	@Router		/ [get]
func (m *MetaHandler) welcome(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, WelcomeResponse{
		Message: fmt.Sprintf("Welcome to %s", m.appCfg.AppName),
		Version: m.appCfg.APIVersion,
		Docs:    "/swagger/index.html",
	})
}

// healthCheck
//
//	@Summary	Проверка работоспособности
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (m *MetaHandler) healthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, HealthResponse{
		Status: "ok",
		App:    m.appCfg.AppName,
	})
}
