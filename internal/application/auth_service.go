package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/21musie/Caxora/internal/domain/entity"
	"github.com/21musie/Caxora/internal/domain/repository"
	"github.com/21musie/Caxora/pkg/helpers"
	"github.com/21musie/Caxora/pkg/mailer"
)

// Fixed message set. Internal error details are logged, never echoed to the
// client.
const (
	MsgRegistrationOK     = "Registration successful"
	MsgLoginOK            = "Login successful"
	MsgUsernameTaken      = "Username already exists"
	MsgEmailTaken         = "Email already exists"
	MsgInvalidCredentials = "Invalid username or password"
	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"
)

// FailureKind classifies an unsuccessful AuthResult so the HTTP boundary can
// pick a status code without parsing messages.
type FailureKind int

const (
	KindNone FailureKind = iota
	KindUsernameTaken
	KindEmailTaken
	KindInvalidCredentials
	KindPersistence
)

// AuthResult is the uniform response envelope for register and login.
// Failures are returned as values, never as errors across this boundary.
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *UserProfile `json:"user,omitempty"`

	Kind FailureKind `json:"-"`
}

// UserProfile is the client-visible projection of a user. It never carries
// the password hash.
type UserProfile struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Location    string     `json:"location,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	Location    string
	Address     string
	City        string
	Role        string
}

type LoginInput struct {
	Username string
	Password string
}

// PasswordHasher is the one-way adaptive hash boundary. No component past it
// may see or log the plaintext password.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer builds a signed, time-bounded token carrying identity claims.
type TokenIssuer interface {
	Issue(u *entity.User) (token string, expiresAt time.Time, err error)
}

// Service orchestrates registration and login over the credential store,
// password hasher, and token issuer.
type Service struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger

	// Pub is optional; when set, registration enqueues a welcome email job.
	Pub         *helpers.RabbitPublisher
	MailEnabled bool

	now func() time.Time
}

func NewService(repo repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *Service {
	return &Service{
		Repo:   repo,
		Hasher: hasher,
		Tokens: tokens,
		Logger: logger,
		now:    time.Now,
	}
}

// Register creates a new account and issues a token for it. Username and
// email conflicts, including those detected only at insert time under
// concurrent registration, come back as Taken results.
func (s *Service) Register(ctx context.Context, in RegisterInput) *AuthResult {
	if _, err := s.Repo.FindByUsername(ctx, in.Username); err == nil {
		return failure(KindUsernameTaken, MsgUsernameTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logError("register: username lookup failed", err, in.Username)
		return failure(KindPersistence, MsgRegistrationFailed)
	}
	if _, err := s.Repo.FindByEmail(ctx, in.Email); err == nil {
		return failure(KindEmailTaken, MsgEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logError("register: email lookup failed", err, in.Username)
		return failure(KindPersistence, MsgRegistrationFailed)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		s.logError("register: password hash failed", err, in.Username)
		return failure(KindPersistence, MsgRegistrationFailed)
	}

	now := s.now().UTC()
	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.DefaultRole
	}
	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		FullName:     in.FullName,
		PhoneNumber:  in.PhoneNumber,
		Location:     in.Location,
		Address:      in.Address,
		City:         in.City,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Insert(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			return failure(KindUsernameTaken, MsgUsernameTaken)
		case errors.Is(err, repository.ErrEmailTaken):
			return failure(KindEmailTaken, MsgEmailTaken)
		}
		s.logError("register: insert failed", err, in.Username)
		return failure(KindPersistence, MsgRegistrationFailed)
	}

	token, _, err := s.Tokens.Issue(u)
	if err != nil {
		s.logError("register: token issue failed", err, in.Username)
		return failure(KindPersistence, MsgRegistrationFailed)
	}

	s.enqueueWelcome(ctx, u)

	return &AuthResult{
		Success: true,
		Message: MsgRegistrationOK,
		Token:   token,
		User:    profileOf(u),
	}
}

// Login verifies credentials for an active account. Unknown username, wrong
// password, and inactive account all produce the identical generic failure.
func (s *Service) Login(ctx context.Context, in LoginInput) *AuthResult {
	u, err := s.Repo.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure(KindInvalidCredentials, MsgInvalidCredentials)
		}
		s.logError("login: lookup failed", err, in.Username)
		return failure(KindPersistence, MsgLoginFailed)
	}
	if !u.IsActive || !s.Hasher.Verify(in.Password, u.PasswordHash) {
		return failure(KindInvalidCredentials, MsgInvalidCredentials)
	}

	u.RecordLogin(s.now())
	if err := s.Repo.Save(ctx, u); err != nil {
		s.logError("login: save failed", err, in.Username)
		return failure(KindPersistence, MsgLoginFailed)
	}

	token, _, err := s.Tokens.Issue(u)
	if err != nil {
		s.logError("login: token issue failed", err, in.Username)
		return failure(KindPersistence, MsgLoginFailed)
	}

	return &AuthResult{
		Success: true,
		Message: MsgLoginOK,
		Token:   token,
		User:    profileOf(u),
	}
}

func (s *Service) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"Name":     u.FullName,
			"Username": u.Username,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}

func (s *Service) logError(msg string, err error, username string) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithField("username", username).Error(msg)
}

func failure(kind FailureKind, msg string) *AuthResult {
	return &AuthResult{Success: false, Message: msg, Kind: kind}
}

func profileOf(u *entity.User) *UserProfile {
	return &UserProfile{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role.String(),
		IsActive:    u.IsActive,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Location:    u.Location,
		Address:     u.Address,
		City:        u.City,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
