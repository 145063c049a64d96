// Package auth manages operator credentials: registration with password
// strength rules, bcrypt hashing and JWT issuance for the HTTP surface.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/domain"
	"github.com/securebank/securebank/pkg/persistence"
)

// User is a registered operator. The password is stored only as a bcrypt
// hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdDate"`
}

// Service registers and authenticates users against the snapshot store.
type Service struct {
	store    persistence.Store
	usersKey string
	cfg      config.Jwt
	logger   *slog.Logger
	cost     int
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// WithClock overrides the service clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates an auth service persisting users under usersKey.
func New(store persistence.Store, usersKey string, cfg config.Jwt, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:    store,
		usersKey: usersKey,
		cfg:      cfg,
		logger:   logger,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates the input, hashes the password and persists the new
// user. Emails are unique, compared lowercased.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	log := s.logger.With("context", "Register", "email", in.Email)
	if strings.TrimSpace(in.Name) == "" {
		return User{}, domain.NewValidation("name", "is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !isEmail(email) {
		return User{}, domain.NewValidation("email", "is not a valid email address")
	}
	if reason, ok := checkPasswordStrength(in.Password); !ok {
		return User{}, domain.NewValidation("password", reason)
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return User{}, fmt.Errorf("user with email %s: %w", email, domain.ErrAlreadyExists)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	u := User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	users = append(users, u)
	if err := s.saveUsers(ctx, users); err != nil {
		return User{}, err
	}
	log.Info("user registered", "userID", u.ID)
	return u, nil
}

// dummyHash keeps login timing uniform when the email is unknown.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Login checks the credentials and returns the user with a signed token.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	log := s.logger.With("context", "Login", "email", email)
	email = strings.ToLower(strings.TrimSpace(email))

	users, err := s.loadUsers(ctx)
	if err != nil {
		return User{}, "", err
	}
	var found *User
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}
	if found == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		log.Warn("login failed", "error", domain.ErrUnauthorized)
		return User{}, "", domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		log.Warn("login failed", "error", domain.ErrUnauthorized)
		return User{}, "", domain.ErrUnauthorized
	}

	token, err := s.GenerateToken(*found)
	if err != nil {
		return User{}, "", err
	}
	log.Info("login successful", "userID", found.ID)
	return *found, token, nil
}

// GenerateToken signs an HS256 JWT for the user.
func (s *Service) GenerateToken(u User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["exp"] = s.now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// CurrentUserID extracts the user id from a verified token.
func (s *Service) CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

func (s *Service) loadUsers(ctx context.Context) ([]User, error) {
	var users []User
	ok, err := persistence.LoadJSON(ctx, s.store, s.usersKey, &users)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return users, nil
}

func (s *Service) saveUsers(ctx context.Context, users []User) error {
	if err := persistence.SaveJSON(ctx, s.store, s.usersKey, users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func isEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// mail.ParseAddress accepts local-only addresses; require a dotted domain
	at := strings.LastIndex(addr.Address, "@")
	return at > 0 && strings.Contains(addr.Address[at+1:], ".")
}

// checkPasswordStrength enforces the registration password policy: at
// least 8 characters with upper, lower, digit and special characters.
func checkPasswordStrength(password string) (string, bool) {
	if len(password) < 8 {
		return "must be at least 8 characters long", false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !upper || !lower {
		return "must contain both uppercase and lowercase letters", false
	}
	if !digit {
		return "must contain at least one number", false
	}
	if !special {
		return "must contain at least one special character", false
	}
	return "", true
}
