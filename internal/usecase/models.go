package usecase

import (
	"github.com/DRSN-tech/catalog-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG USECASE

// Допустимые значения sort_by и sort_order для листинга.
const (
	SortByPrice = "price"
	SortByName  = "name"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Допустимые значения sort для поиска.
// SortRelevance не переупорядочивает результаты: порядок после фильтрации
// совпадает с порядком набора данных.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
	SortRelevance = "relevance"
)

// Значения по умолчанию для пагинации.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// ListProductsReq — запрос листинга товаров.
// Опциональные фильтры заданы указателями: nil означает «параметр не передан».
// Цены — в центах.
type ListProductsReq struct {
	Category     *string `validate:"omitempty,min=1"`
	MinPrice     *int64  `validate:"omitempty,gte=0"`
	MaxPrice     *int64  `validate:"omitempty,gte=0"`
	SearchByName *string `validate:"omitempty,min=2"`
	InStock      *bool
	SortBy       *string `validate:"omitempty,oneof=price name"`
	SortOrder    string  `validate:"oneof=asc desc"`
	Limit        int     `validate:"gte=1,lte=100"`
	Offset       int     `validate:"gte=0"`
}

// FiltersApplied — дословное эхо принятых параметров листинга,
// включая значения по умолчанию для limit/offset/sort_order.
type FiltersApplied struct {
	Category     *string  `json:"category,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	SearchByName *string  `json:"search_by_name,omitempty"`
	InStock      *bool    `json:"in_stock,omitempty"`
	SortBy       *string  `json:"sort_by,omitempty"`
	SortOrder    string   `json:"sort_order"`
	Limit        int      `json:"limit"`
	Offset       int      `json:"offset"`
}

// ProductInfo — DTO товара для внешнего использования.
type ProductInfo struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	InStock  bool    `json:"in_stock"`
}

// ListProductsRes — ответ листинга.
// Total — количество после фильтрации, до пагинации.
type ListProductsRes struct {
	Total          int            `json:"total"`
	Products       []ProductInfo  `json:"products"`
	FiltersApplied FiltersApplied `json:"filters_applied"`
}

// SearchProductsReq — запрос поиска по подстроке имени.
type SearchProductsReq struct {
	Query    string  `validate:"required,min=2,max=50"`
	Category *string `validate:"omitempty,min=1"`
	Sort     string  `validate:"oneof=price_asc price_desc name relevance"`
}

// SearchProductsRes — ответ поиска. Пагинации нет.
type SearchProductsRes struct {
	Query        string        `json:"query"`
	ResultsCount int           `json:"results_count"`
	Results      []ProductInfo `json:"results"`
}

// CONTENT USECASE

// UserRes — DTO синтетического пользователя.
type UserRes struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// ArticleRes — DTO синтетической статьи.
type ArticleRes struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// MAPPERS

func NewProductInfo(pr *domain.Product) ProductInfo {
	return ProductInfo{
		ID:       pr.ID,
		Name:     pr.Name,
		Category: pr.Category,
		Price:    CentsToPrice(pr.Price),
		InStock:  pr.InStock,
	}
}

func NewListProductsRes(total int, products []ProductInfo, filters FiltersApplied) *ListProductsRes {
	return &ListProductsRes{
		Total:          total,
		Products:       products,
		FiltersApplied: filters,
	}
}

func NewSearchProductsRes(query string, results []ProductInfo) *SearchProductsRes {
	return &SearchProductsRes{
		Query:        query,
		ResultsCount: len(results),
		Results:      results,
	}
}

func NewUserRes(user *domain.User) *UserRes {
	return &UserRes{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}

func NewArticleRes(article *domain.Article) *ArticleRes {
	return &ArticleRes{
		ID:     article.ID,
		Title:  article.Title,
		Author: article.Author,
		Tags:   article.Tags,
	}
}

// NewFiltersApplied собирает эхо параметров из принятого запроса.
func NewFiltersApplied(req *ListProductsReq) FiltersApplied {
	var minPrice, maxPrice *float64
	if req.MinPrice != nil {
		v := CentsToPrice(*req.MinPrice)
		minPrice = &v
	}
	if req.MaxPrice != nil {
		v := CentsToPrice(*req.MaxPrice)
		maxPrice = &v
	}

	return FiltersApplied{
		Category:     req.Category,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		SearchByName: req.SearchByName,
		InStock:      req.InStock,
		SortBy:       req.SortBy,
		SortOrder:    req.SortOrder,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}
}

// CentsToPrice конвертирует цену из центов в десятичное значение ответа.
func CentsToPrice(cents int64) float64 {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).InexactFloat64()
}
