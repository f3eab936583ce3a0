package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "memberportal/internal/domain/auth"
	"memberportal/internal/domain/user"
)

// bcryptCost is the work factor for stored password hashes. Deliberately
// slow so offline brute force stays expensive.
const bcryptCost = 12

// Service defines the authentication service interface
type Service interface {
	Signup(req domain.SignupRequest) (*domain.Session, error)
	Login(req domain.LoginRequest) (*domain.Session, error)
	Logout(token string) error
	Resolve(token string) *domain.Session
	EstablishSession(username string) (*domain.Session, error)
	Promote(email string) error
	Demote(email string) error
	ListUsers() ([]user.User, error)
	HashPassword(password string) (string, error)
	CheckPassword(hashedPassword, password string) bool
}

// SessionRepository defines the session storage interface
type SessionRepository interface {
	Put(session *domain.Session) error
	GetByToken(token string) (*domain.Session, error)
	Delete(token string) error
	DeleteExpired() (int64, error)
}

type service struct {
	userRepo    user.Repository
	sessionRepo SessionRepository
	sessionTTL  time.Duration
}

// NewService creates a new auth service
func NewService(userRepo user.Repository, sessionRepo SessionRepository, sessionTTL time.Duration) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
	}
}

// Signup validates the submission, stores the new account with role "user"
// and establishes a session for it. Duplicate identities surface as
// user.ErrUserAlreadyExists from the store's unique constraints, in which
// case no session is created.
func (s *service) Signup(req domain.SignupRequest) (*domain.Session, error) {
	// Fields are validated in a fixed order; the first failing rule wins.
	if req.Username == "" || len(req.Username) > user.MaxUsernameLen {
		return nil, user.ErrInvalidUsername
	}
	if !isValidEmail(req.Email) {
		return nil, user.ErrInvalidEmail
	}
	if len(req.Password) < 6 || len(req.Password) > 20 {
		return nil, user.ErrInvalidPassword
	}

	hashedPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         user.RoleUser,
	}

	if err := s.userRepo.Create(newUser); err != nil {
		return nil, err
	}

	// If establishing the session fails here the user row stays put and
	// the caller sees the error; logging in afterwards works normally.
	return s.EstablishSession(newUser.Username)
}

// Login checks the credentials and establishes a session bound to the
// account's username. A missing account and a wrong password produce the
// same error so responses cannot be used to enumerate emails.
func (s *service) Login(req domain.LoginRequest) (*domain.Session, error) {
	u, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPassword(u.PasswordHash, req.Password) {
		return nil, user.ErrInvalidCredentials
	}

	return s.EstablishSession(u.Username)
}

// Logout destroys the session for the token. Destroying a missing or
// already-destroyed session is a no-op.
func (s *service) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(token)
}

// Resolve maps a presented token to its session. Missing, malformed or
// expired tokens (and store failures) all come back nil: the request is
// simply anonymous.
func (s *service) Resolve(token string) *domain.Session {
	if token == "" {
		return nil
	}
	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		return nil
	}
	return session
}

// EstablishSession issues a fresh random token for the username and stores
// it with the configured TTL.
func (s *service) EstablishSession(username string) (*domain.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	if err := s.sessionRepo.Put(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Promote grants the admin role. Authorization happens at the route gate;
// there is no self-promotion check here.
func (s *service) Promote(email string) error {
	return s.userRepo.SetRole(email, user.RoleAdmin)
}

// Demote revokes the admin role. Nothing stops an admin demoting
// themselves, or the last admin being demoted.
func (s *service) Demote(email string) error {
	return s.userRepo.SetRole(email, user.RoleUser)
}

func (s *service) ListUsers() ([]user.User, error) {
	return s.userRepo.List()
}

func (s *service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword reports whether the password matches the stored hash.
// Malformed hashes simply fail the check rather than erroring.
func (s *service) CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
