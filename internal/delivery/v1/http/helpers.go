package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-api/internal/usecase"
	"github.com/DRSN-tech/catalog-api/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	var vErrs validator.ValidationErrors

	switch {
	case errors.Is(err, e.ErrInvalidPriceRange):
		return http.StatusBadRequest, e.ErrInvalidPriceRange.Error()
	case errors.As(err, &vErrs):
		return http.StatusUnprocessableEntity, formatValidationError(vErrs)
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusUnprocessableEntity, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusUnprocessableEntity, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidQueryParam):
		return http.StatusUnprocessableEntity, e.ErrInvalidQueryParam.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusUnprocessableEntity, e.ErrInvalidID.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// formatValidationError формирует сообщение по первому нарушенному правилу,
// не протаскивая наружу внутреннее представление validator.
func formatValidationError(vErrs validator.ValidationErrors) string {
	if len(vErrs) == 0 {
		return "validation failed"
	}

	fe := vErrs[0]
	return fmt.Sprintf("validation failed on field '%s' (rule '%s')", fe.Field(), fe.Tag())
}

// parsePriceToCents converts a string like "599.99" or "600" to int64 cents.
// Returns error if:
// - invalid format
// - more than 2 decimal places
// - negative value
// - exceeds reasonable limit (10^9)
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	// Reject negative
	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000).Mul(decimal.NewFromInt(100))
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	// Check decimal places
	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// parseListProductsQuery разбирает query-параметры листинга.
// Отсутствующие параметры остаются nil, limit/offset/sort_order получают
// значения по умолчанию. Ограничения значений проверяет usecase.
func parseListProductsQuery(r *http.Request) (*usecase.ListProductsReq, error) {
	q := r.URL.Query()

	req := &usecase.ListProductsReq{
		SortOrder: usecase.SortOrderAsc,
		Limit:     usecase.DefaultLimit,
		Offset:    usecase.DefaultOffset,
	}

	if v := q.Get("category"); v != "" {
		req.Category = &v
	}

	if v := q.Get("min_price"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		req.MinPrice = &cents
	}

	if v := q.Get("max_price"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		req.MaxPrice = &cents
	}

	if v := q.Get("search_by_name"); v != "" {
		req.SearchByName = &v
	}

	if v := q.Get("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return nil, e.Wrap("in_stock", e.ErrInvalidQueryParam)
		}
		req.InStock = &inStock
	}

	if v := q.Get("sort_by"); v != "" {
		req.SortBy = &v
	}

	if v := q.Get("sort_order"); v != "" {
		req.SortOrder = v
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, e.Wrap("limit", e.ErrInvalidQueryParam)
		}
		req.Limit = limit
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, e.Wrap("offset", e.ErrInvalidQueryParam)
		}
		req.Offset = offset
	}

	return req, nil
}

// parseSearchQuery разбирает query-параметры поиска.
func parseSearchQuery(r *http.Request) *usecase.SearchProductsReq {
	q := r.URL.Query()

	req := &usecase.SearchProductsReq{
		Query: q.Get("q"),
		Sort:  usecase.SortRelevance,
	}

	if v := q.Get("category"); v != "" {
		req.Category = &v
	}

	if v := q.Get("sort"); v != "" {
		req.Sort = v
	}

	return req
}

// parsePathID извлекает целочисленный идентификатор из параметра пути.
func parsePathID(param string) (int64, error) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, e.Wrap(param, e.ErrInvalidID)
	}

	return id, nil
}
