package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/21musie/Caxora/internal/domain/entity"
	"github.com/21musie/Caxora/internal/domain/repository"
)

const userColumns = `id, username, email, password_hash, role, is_active,
		full_name, phone_number, location, address, city,
		created_at, updated_at, last_login_at`

// UserRepository persists users in a Postgres table with case-insensitive
// unique indexes on username and email.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findWhere(ctx, "lower(username) = lower($1)", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findWhere(ctx, "lower(email) = lower($1)", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findWhere(ctx, "id = $1", id)
}

func (r *UserRepository) findWhere(ctx context.Context, cond string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE `+cond, arg)
	if err := scanUser(row, u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, role, is_active,
			full_name, phone_number, location, address, city,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive,
		u.FullName, nullable(u.PhoneNumber), nullable(u.Location),
		nullable(u.Address), nullable(u.City), u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, role = $4,
			is_active = $5, full_name = $6, phone_number = $7, location = $8,
			address = $9, city = $10, updated_at = $11, last_login_at = $12
		WHERE id = $13
	`, u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive,
		u.FullName, nullable(u.PhoneNumber), nullable(u.Location),
		nullable(u.Address), nullable(u.City), u.UpdatedAt, u.LastLoginAt, u.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *entity.User) error {
	var (
		role                        string
		phone, location, addr, city *string
		lastLogin                   *time.Time
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role,
		&u.IsActive, &u.FullName, &phone, &location, &addr, &city,
		&u.CreatedAt, &u.UpdatedAt, &lastLogin); err != nil {
		return err
	}
	u.Role = entity.Role(role)
	u.PhoneNumber = deref(phone)
	u.Location = deref(location)
	u.Address = deref(addr)
	u.City = deref(city)
	u.LastLoginAt = lastLogin
	return nil
}

// mapUniqueViolation translates SQLSTATE 23505 into the repository's Taken
// errors using the violated constraint name.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return repository.ErrUsernameTaken
	case strings.Contains(pgErr.ConstraintName, "email"):
		return repository.ErrEmailTaken
	}
	return err
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ repository.UserRepository = (*UserRepository)(nil)
