package user

import (
	"context"
	"strings"
	"sync"

	"github.com/F1oxyz/coffe-cat-cop/internal/docstore"
	"github.com/F1oxyz/coffe-cat-cop/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	SignUp(ctx context.Context, email, password string) (Identity, error)
	SignIn(ctx context.Context, email, password string) (Identity, error)
	SignOut()
	// Current reports the signed-in identity, if the session is still valid.
	Current() (Identity, bool)
}

type service struct {
	repo     Repository
	secret   []byte
	attempts *attemptLimiter

	mu    sync.Mutex
	token string
}

func NewService(repo Repository, secret []byte) Service {
	return &service{
		repo:     repo,
		secret:   secret,
		attempts: newAttemptLimiter(),
	}
}

func (s *service) SignUp(ctx context.Context, email, password string) (Identity, error) {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateCredentials(email, password); err != nil {
		return Identity{}, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return Identity{}, err
	}

	id, err := s.repo.Create(ctx, email, hashed)
	if err != nil {
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return Identity{}, err
	}

	if err := s.startSession(id); err != nil {
		log.Error("failed to start session", zap.String("uid", id.UID), zap.Error(err))
		return Identity{}, err
	}

	log.Info("sign-up completed",
		zap.String("uid", id.UID),
		zap.String("email", email),
	)

	return id, nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (Identity, error) {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if !s.attempts.allow(email) {
		log.Warn("sign-in throttled", zap.String("email", email))
		return Identity{}, ErrTooManyAttempts
	}

	id, hash, err := s.repo.FindByEmail(ctx, email)
	if err == docstore.ErrNotFound {
		return Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to look up user", zap.String("email", email), zap.Error(err))
		return Identity{}, err
	}

	if !CheckPasswordHash(password, hash) {
		return Identity{}, ErrInvalidCredentials
	}

	if err := s.startSession(id); err != nil {
		log.Error("failed to start session", zap.String("uid", id.UID), zap.Error(err))
		return Identity{}, err
	}

	log.Info("sign-in completed", zap.String("uid", id.UID))

	return id, nil
}

func (s *service) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *service) Current() (Identity, bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return Identity{}, false
	}

	claims, err := ParseSessionToken(s.secret, token)
	if err != nil {
		// Expired or tampered session; drop it.
		s.SignOut()
		return Identity{}, false
	}

	return Identity{UID: claims.UID, Email: claims.Email}, true
}

func (s *service) startSession(id Identity) error {
	token, err := GenerateSessionToken(s.secret, id.UID, id.Email)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func validateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return ErrEmailInvalid
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
