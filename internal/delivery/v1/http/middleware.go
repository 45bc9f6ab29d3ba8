package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-api/pkg/logger"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// requestID проставляет каждому запросу корреляционный идентификатор.
// Если заголовок пришел от клиента, он переиспользуется.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// requestLogger логирует каждый запрос с длительностью обработки.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debugf("%s %s %s (%s)", r.Method, r.URL.RequestURI(), w.Header().Get(requestIDHeader), time.Since(start))
		})
	}
}
