package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-api/internal/domain"
	"github.com/DRSN-tech/catalog-api/pkg/e"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
)

// ContentUseCase отдает синтетические записи пользователей и статей.
// Хранилища нет, записи детерминированно строятся по идентификатору.
type ContentUseCase struct {
	logger logger.Logger
}

func NewContentUC(logger logger.Logger) *ContentUseCase {
	return &ContentUseCase{logger: logger}
}

func (c *ContentUseCase) GetUser(ctx context.Context, id int64) (*UserRes, error) {
	const op = "ContentUseCase.GetUser"

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidID)
	}

	return NewUserRes(domain.NewUser(id)), nil
}

func (c *ContentUseCase) GetArticle(ctx context.Context, id int64) (*ArticleRes, error) {
	const op = "ContentUseCase.GetArticle"

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidID)
	}

	return NewArticleRes(domain.NewArticle(id)), nil
}
