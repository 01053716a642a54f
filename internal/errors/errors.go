package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when signing up with an email that is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPlanNotFound is returned when a plan does not exist, or when a trainer
	// tries to modify a plan they do not own. Non-owners must not learn the
	// plan exists, so the two cases are indistinguishable.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrTrainerNotFound is returned when an id does not reference a trainer.
	ErrTrainerNotFound = errors.New("trainer not found")
	// ErrAlreadySubscribed is returned on a duplicate (user, plan) subscription.
	ErrAlreadySubscribed = errors.New("already subscribed to this plan")
	// ErrAlreadyFollowing is returned on a duplicate (user, trainer) follow.
	ErrAlreadyFollowing = errors.New("already following this trainer")
	// ErrNotFollowing is returned when unfollowing a trainer that is not followed.
	ErrNotFollowing = errors.New("not following this trainer")
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
	// ErrTrainerCannotFollow is returned when a trainer tries to follow anyone.
	ErrTrainerCannotFollow = errors.New("trainers cannot follow other trainers")
	// ErrInvalidPrice is returned when a plan price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Each outcome keeps a
// stable code so clients can branch on it.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrPlanNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PLAN_NOT_FOUND")
	case errors.Is(err, ErrTrainerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRAINER_NOT_FOUND")
	case errors.Is(err, ErrAlreadySubscribed):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_SUBSCRIBED")
	case errors.Is(err, ErrAlreadyFollowing):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_FOLLOWING")
	case errors.Is(err, ErrNotFollowing):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOLLOWING")
	case errors.Is(err, ErrSelfFollow):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_FOLLOW")
	case errors.Is(err, ErrTrainerCannotFollow):
		return NewHTTPError(http.StatusForbidden, err.Error(), "TRAINER_CANNOT_FOLLOW")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
