package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/DRSN-tech/catalog-api/internal/domain"
	"github.com/DRSN-tech/catalog-api/pkg/e"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// CatalogUseCase реализует движок запросов по каталогу:
// фильтрация, сортировка и пагинация поверх неизменяемого набора товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	validate    *validator.Validate
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, validate *validator.Validate, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		validate:    validate,
		logger:      logger,
	}
}

// ListProducts возвращает отфильтрованную, отсортированную и постранично
// нарезанную выборку товаров вместе с эхом принятых параметров.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	if err := c.validate.Struct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		return nil, e.Wrap(op, e.ErrInvalidPriceRange)
	}

	products, err := c.productRepo.All(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := applyListFilters(products, req)

	if req.SortBy != nil {
		sortProducts(filtered, *req.SortBy, req.SortOrder)
	}

	total := len(filtered)
	page := paginate(filtered, req.Offset, req.Limit)

	return NewListProductsRes(total, toProductInfos(page), NewFiltersApplied(req)), nil
}

// SearchProducts ищет товары по подстроке имени без пагинации.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error) {
	const op = "CatalogUseCase.SearchProducts"

	if err := c.validate.Struct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := c.productRepo.All(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, pr := range products {
		if req.Category != nil && pr.Category != *req.Category {
			continue
		}
		if !containsFold(pr.Name, req.Query) {
			continue
		}
		filtered = append(filtered, pr)
	}

	switch req.Sort {
	case SortPriceAsc:
		sortProducts(filtered, SortByPrice, SortOrderAsc)
	case SortPriceDesc:
		sortProducts(filtered, SortByPrice, SortOrderDesc)
	case SortName:
		sortProducts(filtered, SortByName, SortOrderAsc)
	case SortRelevance:
		// Ранжирования нет: сохраняется порядок набора данных
	}

	return NewSearchProductsRes(req.Query, toProductInfos(filtered)), nil
}

// applyListFilters последовательно сужает выборку независимыми предикатами.
// Порядок фиксированный: category, min_price, max_price, search_by_name, in_stock.
func applyListFilters(products []domain.Product, req *ListProductsReq) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, pr := range products {
		if req.Category != nil && pr.Category != *req.Category {
			continue
		}
		if req.MinPrice != nil && pr.Price < *req.MinPrice {
			continue
		}
		if req.MaxPrice != nil && pr.Price > *req.MaxPrice {
			continue
		}
		if req.SearchByName != nil && !containsFold(pr.Name, *req.SearchByName) {
			continue
		}
		if req.InStock != nil && pr.InStock != *req.InStock {
			continue
		}
		result = append(result, pr)
	}

	return result
}

// sortProducts выполняет устойчивую сортировку по явно заданному полю.
// Неизвестные значения sortBy отсекаются валидацией и сюда не попадают.
func sortProducts(products []domain.Product, sortBy string, sortOrder string) {
	var less func(a, b domain.Product) bool
	switch sortBy {
	case SortByPrice:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case SortByName:
		less = func(a, b domain.Product) bool { return a.Name < b.Name }
	default:
		return
	}

	if sortOrder == SortOrderDesc {
		asc := less
		less = func(a, b domain.Product) bool { return asc(b, a) }
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// paginate возвращает окно [offset, offset+limit).
// Выход offset за пределы выборки дает пустой срез, а не ошибку.
func paginate(products []domain.Product, offset, limit int) []domain.Product {
	if offset >= len(products) {
		return []domain.Product{}
	}

	end := offset + limit
	if end > len(products) {
		end = len(products)
	}

	return products[offset:end]
}

// containsFold проверяет вхождение подстроки без учета регистра.
func containsFold(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

func toProductInfos(products []domain.Product) []ProductInfo {
	result := make([]ProductInfo, 0, len(products))
	for i := range products {
		result = append(result, NewProductInfo(&products[i]))
	}

	return result
}
