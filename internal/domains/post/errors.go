package post

import "errors"

var (
	// Business rule errors
	ErrPostNotFound  = errors.New("blog post not found")
	ErrDuplicateSlug = errors.New("blog post with this slug already exists")

	// Validation errors
	ErrMissingIdentifier = errors.New("either id or slug must be provided")
)

// ToErrorCode converts a domain error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrMissingIdentifier):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug):
		return 409
	case errors.Is(err, ErrMissingIdentifier):
		return 400
	default:
		return 500
	}
}
