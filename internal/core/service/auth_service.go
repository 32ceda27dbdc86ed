package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// securityAnswer is the normalized answer to the admin-recovery security
// question ("el color negro y dorado", lowercased with whitespace stripped).
const securityAnswer = "elcolornegroydorado"

const (
	resetCodeTTLSeconds  = 600
	credentialsRevealSec = 15
)

// AuthService implements login, registration, the password-reset flow and
// the admin credential recovery gimmick.
type AuthService struct {
	users     ports.UserRepository
	logs      ports.LogRepository
	codes     ports.ResetCodeStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, logs ports.LogRepository, codes ports.ResetCodeStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		logs:      logs,
		codes:     codes,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login scans the full user list for an exact username+password match.
// There is no hashing, lockout or rate limiting; a miss is always the same
// generic error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	all, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	for i := range all {
		if all[i].Username == username && all[i].Password == password {
			user = &all[i]
			break
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := signToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	actor := ports.Actor{UserID: user.ID, Username: user.Username, Role: user.Role}
	appendLog(ctx, s.logs, s.logger, domain.ActionLogin, fmt.Sprintf("User %s logged in", user.Username), actor)

	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// Register creates a USER-role account after a fixed validation chain:
// field presence, username length, email shape, password complexity, then a
// non-transactional duplicate scan over the full list.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.FullName == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}
	if len(input.Username) < minUsernameLength {
		return nil, fmt.Errorf("%w: username must be at least %d characters", domain.ErrValidation, minUsernameLength)
	}
	if !validEmail(input.Email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	all, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		// Username uniqueness is case-sensitive here; admin-driven account
		// management checks case-insensitively.
		if all[i].Username == input.Username {
			return nil, domain.ErrUsernameTaken
		}
		if all[i].Email != "" && strings.EqualFold(all[i].Email, input.Email) {
			return nil, domain.ErrEmailTaken
		}
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FullName:  input.FullName,
		Role:      domain.RoleUser,
		CreatedAt: domain.NowTimestamp(),
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

// RequestPasswordReset generates a 6-digit code for the account matching the
// email (case-insensitive) and stores it with a short TTL. The code is
// returned to the caller; surfacing it in the response is the demo channel.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*ports.RequestResetResult, error) {
	all, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	user := findByEmail(all, email)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	code := generateResetCode()
	if err := s.codes.Set(ctx, strings.ToLower(email), code); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset code issued")
	return &ports.RequestResetResult{Code: code, ExpiresIn: resetCodeTTLSeconds}, nil
}

// ConfirmPasswordReset overwrites the account password when the submitted
// code matches the pending one and the new password passes the complexity
// rule. The code is single-use.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, input ports.ConfirmResetInput) error {
	stored, err := s.codes.Get(ctx, strings.ToLower(input.Email))
	if err != nil {
		return err
	}
	if stored == "" || stored != input.Code {
		return domain.ErrInvalidResetCode
	}
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	all, err := s.users.FindAll(ctx)
	if err != nil {
		return err
	}
	user := findByEmail(all, input.Email)
	if user == nil {
		return domain.ErrUserNotFound
	}

	user.Password = input.NewPassword
	if err := s.users.Upsert(ctx, user); err != nil {
		return err
	}
	if err := s.codes.Delete(ctx, strings.ToLower(input.Email)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete consumed reset code")
	}

	s.logger.Info().Str("username", user.Username).Msg("password reset completed")
	return nil
}

// RecoverAdminCredentials reveals the bootstrap admin's credentials when the
// security-question answer matches after normalization (lowercase, all
// whitespace removed). The 15 second figure is the countdown a client should
// run before hiding the credentials again.
func (s *AuthService) RecoverAdminCredentials(ctx context.Context, answer string) (*ports.RecoveredCredentials, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(answer), ""))
	if normalized != securityAnswer {
		return nil, domain.ErrForbidden
	}

	admin, err := s.users.FindByUsername(ctx, domain.SuperAdminUsername)
	if err != nil {
		return nil, err
	}

	s.logger.Warn().Msg("admin credentials revealed via security question")
	return &ports.RecoveredCredentials{
		Username:  admin.Username,
		Password:  admin.Password,
		RevealFor: credentialsRevealSec,
	}, nil
}

func findByEmail(users []domain.User, email string) *domain.User {
	for i := range users {
		if users[i].Email != "" && strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}

// generateResetCode returns a random 6-digit numeric code.
func generateResetCode() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from current nanoseconds
		return fmt.Sprintf("%06d", time.Now().UnixNano()%900000+100000)
	}
	n := binary.BigEndian.Uint32(b)
	return fmt.Sprintf("%06d", int(n%900000)+100000)
}
