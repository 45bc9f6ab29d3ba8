package http

import (
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/catalog-api/internal/usecase"
	"github.com/DRSN-tech/catalog-api/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		err      error
	}{
		{"integer", "600", 60000, nil},
		{"two decimal places", "599.99", 59999, nil},
		{"one decimal place", "10.5", 1050, nil},
		{"zero", "0", 0, nil},
		{"empty", "", 0, nil}, // любая ошибка, проверяется отдельно
		{"not a number", "abc", 0, e.ErrInvalidPrice},
		{"negative", "-5", 0, e.ErrInvalidPrice},
		{"too many decimal places", "9.999", 0, e.ErrPricePrecision},
		{"exceeds limit", "100000000001", 0, e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := parsePriceToCents(tt.input)
			if tt.input == "" {
				require.Error(t, err)
				return
			}

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestParseListProductsQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)

	req, err := parseListProductsQuery(r)
	require.NoError(t, err)

	assert.Nil(t, req.Category)
	assert.Nil(t, req.MinPrice)
	assert.Nil(t, req.MaxPrice)
	assert.Nil(t, req.SearchByName)
	assert.Nil(t, req.InStock)
	assert.Nil(t, req.SortBy)
	assert.Equal(t, usecase.SortOrderAsc, req.SortOrder)
	assert.Equal(t, usecase.DefaultLimit, req.Limit)
	assert.Equal(t, usecase.DefaultOffset, req.Offset)
}

func TestParseListProductsQuery_AllParams(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/products?category=books&min_price=10.50&max_price=99.99&search_by_name=book&in_stock=false&sort_by=name&sort_order=desc&limit=50&offset=20", nil)

	req, err := parseListProductsQuery(r)
	require.NoError(t, err)

	require.NotNil(t, req.Category)
	assert.Equal(t, "books", *req.Category)
	require.NotNil(t, req.MinPrice)
	assert.Equal(t, int64(1050), *req.MinPrice)
	require.NotNil(t, req.MaxPrice)
	assert.Equal(t, int64(9999), *req.MaxPrice)
	require.NotNil(t, req.SearchByName)
	assert.Equal(t, "book", *req.SearchByName)
	require.NotNil(t, req.InStock)
	assert.False(t, *req.InStock)
	require.NotNil(t, req.SortBy)
	assert.Equal(t, usecase.SortByName, *req.SortBy)
	assert.Equal(t, usecase.SortOrderDesc, req.SortOrder)
	assert.Equal(t, 50, req.Limit)
	assert.Equal(t, 20, req.Offset)
}

func TestParseListProductsQuery_BadValues(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
	}{
		{"bad limit", "/products?limit=abc", e.ErrInvalidQueryParam},
		{"bad offset", "/products?offset=ten", e.ErrInvalidQueryParam},
		{"bad in_stock", "/products?in_stock=maybe", e.ErrInvalidQueryParam},
		{"bad min_price", "/products?min_price=abc", e.ErrInvalidPrice},
		{"imprecise max_price", "/products?max_price=9.999", e.ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)

			_, err := parseListProductsQuery(r)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseSearchQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/search?q=book", nil)
	req := parseSearchQuery(r)
	assert.Equal(t, "book", req.Query)
	assert.Nil(t, req.Category)
	assert.Equal(t, usecase.SortRelevance, req.Sort)

	r = httptest.NewRequest("GET", "/search?q=book&category=books&sort=price_desc", nil)
	req = parseSearchQuery(r)
	require.NotNil(t, req.Category)
	assert.Equal(t, "books", *req.Category)
	assert.Equal(t, usecase.SortPriceDesc, req.Sort)
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"invalid price range", e.ErrInvalidPriceRange, 400},
		{"wrapped invalid price range", e.Wrap("op", e.ErrInvalidPriceRange), 400},
		{"invalid price", e.ErrInvalidPrice, 422},
		{"price precision", e.ErrPricePrecision, 422},
		{"invalid query param", e.ErrInvalidQueryParam, 422},
		{"invalid id", e.ErrInvalidID, 422},
		{"unknown error", assert.AnError, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.expectedCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}
