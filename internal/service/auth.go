package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/password"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/token"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type UserRepo interface {
	CreateUser(ctx context.Context, profile entities.Profile, passwordHash string) (entities.Profile, error)
	FindUserByEmail(ctx context.Context, email string) (entities.Profile, string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (entities.Profile, error)
}

type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type SignUpInput struct {
	Email     string
	Password  string
	FullName  string
	RegNumber string
	Mobile    string
	Hostel    string
	Room      string
}

type AuthResult struct {
	Token   string
	Session entities.Session
	Profile entities.Profile
}

type authService struct {
	logger *slog.Logger
	users  UserRepo
	tokens TokenStore
	issuer *token.Issuer

	mu        sync.RWMutex
	nextSubID int
	listeners map[int]func(entities.SessionEvent)
}

func NewAuthService(logger *slog.Logger, users UserRepo, tokens TokenStore, issuer *token.Issuer) *authService {
	return &authService{
		logger:    logger.With(slog.String("service", "auth")),
		users:     users,
		tokens:    tokens,
		issuer:    issuer,
		listeners: make(map[int]func(entities.SessionEvent)),
	}
}

// SignUp registers a student account and signs it in.
func (s *authService) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return AuthResult{}, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("%w: %w", entities.ErrAuth, err)
	}

	profile, err := s.users.CreateUser(ctx, entities.Profile{
		Email:     email,
		FullName:  strings.TrimSpace(in.FullName),
		RegNumber: strings.TrimSpace(in.RegNumber),
		Mobile:    strings.TrimSpace(in.Mobile),
		Role:      entities.RoleStudent,
		Hostel:    strings.TrimSpace(in.Hostel),
		Room:      strings.TrimSpace(in.Room),
	}, hash)
	if errors.Is(err, entities.ErrUserExists) {
		return AuthResult{}, fmt.Errorf("%w: %w", entities.ErrAuth, err)
	}
	if err != nil {
		return AuthResult{}, storeError(err)
	}

	s.logger.InfoContext(ctx, "user signed up", slog.String("user_id", profile.UserID.String()))
	return s.startSession(profile)
}

func (s *authService) SignIn(ctx context.Context, email, pass string) (AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		signIns.WithLabelValues("rejected").Inc()
		return AuthResult{}, fmt.Errorf("%w: %w", entities.ErrAuth, entities.ErrInvalidCredentials)
	}

	var (
		profile entities.Profile
		hash    string
	)
	err = utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
		var err error
		profile, hash, err = s.users.FindUserByEmail(ctx, email)
		return err
	}, entities.ErrUserNotFound)
	if errors.Is(err, entities.ErrUserNotFound) {
		signIns.WithLabelValues("rejected").Inc()
		return AuthResult{}, fmt.Errorf("%w: %w", entities.ErrAuth, entities.ErrInvalidCredentials)
	}
	if err != nil {
		signIns.WithLabelValues("error").Inc()
		return AuthResult{}, storeError(err)
	}

	if err := password.Compare(hash, pass); err != nil {
		signIns.WithLabelValues("rejected").Inc()
		return AuthResult{}, fmt.Errorf("%w: %w", entities.ErrAuth, entities.ErrInvalidCredentials)
	}

	signIns.WithLabelValues("ok").Inc()
	return s.startSession(profile)
}

// SignOut revokes the token for the rest of its lifetime.
func (s *authService) SignOut(ctx context.Context, tokenString string) error {
	claims, err := s.issuer.Parse(tokenString)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrUnauthenticated, err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		return storeError(err)
	}

	sess, err := sessionFromClaims(claims)
	if err != nil {
		return err
	}
	s.emit(entities.SessionEvent{Type: entities.SessionSignedOut, Session: sess})
	s.logger.InfoContext(ctx, "user signed out", slog.String("user_id", sess.UserID.String()))
	return nil
}

// CurrentSession resolves a bearer token into a session.
func (s *authService) CurrentSession(ctx context.Context, tokenString string) (entities.Session, error) {
	claims, err := s.issuer.Parse(tokenString)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%w: %w", entities.ErrUnauthenticated, err)
	}

	var revoked bool
	err = utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
		var err error
		revoked, err = s.tokens.IsRevoked(ctx, claims.ID)
		return err
	})
	if err != nil {
		return entities.Session{}, storeError(err)
	}
	if revoked {
		return entities.Session{}, fmt.Errorf("%w: token revoked", entities.ErrUnauthenticated)
	}

	return sessionFromClaims(claims)
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (entities.Profile, error) {
	var profile entities.Profile
	err := utils.Retry(ctx, utils.DefaultRetryConfig, func() error {
		var err error
		profile, err = s.users.GetProfile(ctx, userID)
		return err
	}, entities.ErrUserNotFound)
	if err != nil {
		return entities.Profile{}, storeError(err, entities.ErrUserNotFound)
	}
	return profile, nil
}

// OnSessionChange registers fn for sign-in and sign-out events. fn runs on the
// caller's goroutine and must not block.
func (s *authService) OnSessionChange(fn func(entities.SessionEvent)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *authService) startSession(profile entities.Profile) (AuthResult, error) {
	signed, claims, err := s.issuer.Issue(profile.UserID, profile.Role.String())
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	sess := entities.Session{
		UserID:    profile.UserID,
		Role:      profile.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	s.emit(entities.SessionEvent{Type: entities.SessionSignedIn, Session: sess})

	return AuthResult{Token: signed, Session: sess, Profile: profile}, nil
}

func (s *authService) emit(event entities.SessionEvent) {
	s.mu.RLock()
	listeners := make([]func(entities.SessionEvent), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(event)
	}
}

func sessionFromClaims(claims token.Claims) (entities.Session, error) {
	role, err := entities.ParseRole(claims.Role)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%w: %w", entities.ErrUnauthenticated, err)
	}
	return entities.Session{
		UserID:    claims.UserID,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: invalid email", entities.ErrAuth)
	}
	return email, nil
}
