package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
	"github.com/sbilibin2017/idea2context/internal/repositories"
)

// backgroundTimeout bounds post-login bookkeeping that runs after the response.
const backgroundTimeout = 5 * time.Second

// UserRepository defines the store operations the auth flows need.
type UserRepository interface {
	Ping(ctx context.Context) error
	FindByEmail(ctx context.Context, email string) (*models.UserDB, error)
	Insert(ctx context.Context, name, email, passwordHash string, now time.Time) (*models.UserDB, error)
	TouchLogin(ctx context.Context, id uuid.UUID, now time.Time) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	VerifyDummy(password string)
}

// EventPublisher publishes account lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.AuthEvent) error
}

// AuthService handles registration and login.
type AuthService struct {
	users        UserRepository
	hasher       PasswordHasher
	events       EventPublisher
	storeTimeout time.Duration

	background sync.WaitGroup
}

// NewAuthService creates a new AuthService instance.
// events may be nil, in which case no events are published.
func NewAuthService(users UserRepository, hasher PasswordHasher, events EventPublisher, storeTimeout time.Duration) *AuthService {
	return &AuthService{
		users:        users,
		hasher:       hasher,
		events:       events,
		storeTimeout: storeTimeout,
	}
}

// Register validates the input and creates a new user.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	if err := svc.ping(ctx); err != nil {
		logger.Log.Errorw("user store is not reachable", "err", err)
		return nil, ErrStoreUnavailable
	}

	// Fast path for a friendly conflict; the unique constraint on insert is authoritative.
	_, err := svc.findByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Log.Infow("registration for existing email rejected")
		return nil, ErrUserAlreadyExists
	case !errors.Is(err, repositories.ErrUserNotFound):
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := svc.insert(ctx, name, email, hashedPassword)
	if errors.Is(err, repositories.ErrEmailTaken) {
		logger.Log.Infow("registration lost the race on unique email")
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	logger.Log.Infow("user registered", "user_id", user.ID)
	svc.publishAsync(ctx, models.NewAuthEvent(models.EventUserRegistered, user.ID))

	return user.Public(), nil
}

// Login authenticates a user by email and password.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	if err := validateLogin(email, password); err != nil {
		return nil, err
	}

	user, err := svc.findByEmail(ctx, email)
	if errors.Is(err, repositories.ErrUserNotFound) {
		svc.hasher.VerifyDummy(password)
		logger.Log.Infow("login failed", "reason", "unknown email")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	svc.afterLogin(ctx, user.ID)

	return user.Public(), nil
}

// Wait blocks until background bookkeeping started by Register and Login is done.
func (svc *AuthService) Wait() {
	svc.background.Wait()
}

// afterLogin refreshes last_login and publishes the login event without
// holding up the response. Failures are logged only.
func (svc *AuthService) afterLogin(ctx context.Context, userID uuid.UUID) {
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), backgroundTimeout)

	svc.background.Add(1)
	go func() {
		defer svc.background.Done()
		defer cancel()

		if err := svc.users.TouchLogin(bg, userID, time.Now().UTC()); err != nil {
			logger.Log.Warnw("failed to refresh last login", "user_id", userID, "err", err)
		}
		svc.publish(bg, models.NewAuthEvent(models.EventUserLoggedIn, userID))
	}()
}

func (svc *AuthService) publishAsync(ctx context.Context, event models.AuthEvent) {
	if svc.events == nil {
		return
	}
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), backgroundTimeout)

	svc.background.Add(1)
	go func() {
		defer svc.background.Done()
		defer cancel()
		svc.publish(bg, event)
	}()
}

func (svc *AuthService) publish(ctx context.Context, event models.AuthEvent) {
	if svc.events == nil {
		return
	}
	if err := svc.events.Publish(ctx, event); err != nil {
		logger.Log.Warnw("failed to publish auth event", "type", event.Type, "user_id", event.UserID, "err", err)
	}
}

func (svc *AuthService) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, svc.storeTimeout)
	defer cancel()
	return svc.users.Ping(ctx)
}

func (svc *AuthService) findByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.storeTimeout)
	defer cancel()
	return svc.users.FindByEmail(ctx, email)
}

func (svc *AuthService) insert(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.storeTimeout)
	defer cancel()
	return svc.users.Insert(ctx, name, email, passwordHash, time.Now().UTC())
}
