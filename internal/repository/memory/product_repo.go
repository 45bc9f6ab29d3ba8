package memory

import (
	"context"

	"github.com/DRSN-tech/catalog-api/internal/domain"
)

// ProductRepo хранит неизменяемый набор товаров в памяти.
// Набор заполняется один раз при создании и далее не меняется;
// каждый вызов All отдает свежую копию, поэтому репозиторий
// безопасен для параллельных запросов без координации.
type ProductRepo struct {
	products []domain.Product
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	stored := make([]domain.Product, len(products))
	copy(stored, products)

	return &ProductRepo{products: stored}
}

// All возвращает копию всего набора товаров в порядке добавления.
func (p *ProductRepo) All(ctx context.Context) ([]domain.Product, error) {
	result := make([]domain.Product, len(p.products))
	copy(result, p.products)

	return result, nil
}

// SeedProducts возвращает стартовый набор из десяти товаров.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop Dell", Category: "electronics", Price: 89999, InStock: true},
		{ID: 2, Name: "Samsung Phone", Category: "electronics", Price: 79999, InStock: true},
		{ID: 3, Name: "MacBook Pro", Category: "electronics", Price: 199999, InStock: false},
		{ID: 4, Name: "Python Book", Category: "books", Price: 2999, InStock: true},
		{ID: 5, Name: "FastAPI Guidebook", Category: "books", Price: 3999, InStock: true},
		{ID: 6, Name: "Sony TV", Category: "electronics", Price: 149900, InStock: true},
		{ID: 7, Name: "Coffee Mug", Category: "home", Price: 1250, InStock: true},
		{ID: 8, Name: "Desk Lamp", Category: "home", Price: 3499, InStock: false},
		{ID: 9, Name: "Running Shoes", Category: "sports", Price: 8999, InStock: true},
		{ID: 10, Name: "Yoga Mat", Category: "sports", Price: 2499, InStock: true},
	}
}
