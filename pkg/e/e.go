package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 404 Not Found
	ErrNotFound = fmt.Errorf("record not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidStatus        = fmt.Errorf("invalid status value")
	ErrInvalidReason        = fmt.Errorf("invalid adjustment reason")
	ErrZeroAdjustment       = fmt.Errorf("adjustment must be non-zero")
	ErrNameRequired         = fmt.Errorf("name is required")
	ErrCodeRequired         = fmt.Errorf("promotion code is required")
	ErrInvalidDateRange     = fmt.Errorf("invalid date range")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 401 Unauthorized
	ErrAuthFailure    = fmt.Errorf("invalid credentials")
	ErrSessionExpired = fmt.Errorf("session expired or unknown")

	// Ошибки внешних хранилищ
	ErrUploadFailure = fmt.Errorf("image upload failed")

	// 500 Internal Server Error
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownStoreBackend  = fmt.Errorf("unknown store backend")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
