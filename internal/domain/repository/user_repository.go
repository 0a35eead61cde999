package repository

import (
	"context"
	"errors"

	"github.com/21musie/Caxora/internal/domain/entity"
)

// Sentinel errors returned by UserRepository implementations. Insert maps a
// storage-level unique violation to the matching Taken error so concurrent
// registrations racing past the pre-check still surface as a conflict.
var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// UserRepository is the credential store contract. Lookups by username and
// email are case-insensitive; storage is case-preserving.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Insert(ctx context.Context, u *entity.User) error
	Save(ctx context.Context, u *entity.User) error
}
