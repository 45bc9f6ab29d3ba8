package e

import "fmt"

var (
	// 400 Bad Request
	ErrInvalidPriceRange = fmt.Errorf("min_price must be less than max_price")

	// 422 Unprocessable Entity
	ErrInvalidPrice      = fmt.Errorf("invalid price value")
	ErrPricePrecision    = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQueryParam = fmt.Errorf("invalid query parameter")
	ErrInvalidID         = fmt.Errorf("identifier must be a positive integer")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
