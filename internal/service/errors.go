package service

import (
	"errors"
	"fmt"

	"github.com/shopstack/shopstack-go/internal/repository"
)

// Fault classes. Handlers classify service errors with errors.Is against
// these and map each class to one envelope status.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("persistence error")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

var (
	ErrEmailRequired    = fmt.Errorf("%w: email is required", ErrValidation)
	ErrPasswordRequired = fmt.Errorf("%w: password is required", ErrValidation)
	ErrNameRequired     = fmt.Errorf("%w: name is required", ErrValidation)
	ErrUserIDRequired   = fmt.Errorf("%w: userId is required", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid order status", ErrValidation)
)

// storeErr translates a store-layer fault into the service taxonomy.
// Known typed faults pass through; anything else becomes a persistence error.
func storeErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrEmailTaken
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
