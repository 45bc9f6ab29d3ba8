package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-api/internal/usecase"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	contentUsecase usecase.ContentUC
	logger         logger.Logger
}

func NewContentHandler(contentUsecase usecase.ContentUC, logger logger.Logger) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase, logger: logger}
}

// getUser
//
//	@Summary	Синтетическая запись пользователя
//	@Tags		content
//	@Produce	json
//	@Param		user_id	path		integer	true	"Идентификатор пользователя"
//	@Success	200		{object}	usecase.UserRes
//	@Failure	422		{object}	ErrorResponse	"Некорректный идентификатор"
//	@Router		/users/{user_id} [get]
func (c *ContentHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "user_id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.contentUsecase.GetUser(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getArticle
//
//	@Summary	Синтетическая запись статьи
//	@Tags		content
//	@Produce	json
//	@Param		article_id	path		integer	true	"Идентификатор статьи"
//	@Success	200			{object}	usecase.ArticleRes
//	@Failure	422			{object}	ErrorResponse	"Некорректный идентификатор"
//	@Router		/articles/{article_id} [get]
func (c *ContentHandler) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "article_id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.contentUsecase.GetArticle(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
