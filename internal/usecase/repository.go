package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-api/internal/domain"
)

type ProductRepository interface {
	// All возвращает свежую копию всего набора товаров.
	All(ctx context.Context) ([]domain.Product, error)
}
