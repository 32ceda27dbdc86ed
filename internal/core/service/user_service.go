package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// UserService implements self-service profile editing and the bootstrap
// admin's user directory. The management gate is the literal username
// check, not the role field: an ADMIN account that is not "ElSuperAdmin"
// manages nobody but itself.
type UserService struct {
	users     ports.UserRepository
	logs      ports.LogRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(users ports.UserRepository, logs ports.LogRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		users:     users,
		logs:      logs,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *UserService) List(ctx context.Context, actor ports.Actor) ([]domain.User, error) {
	if actor.Username != domain.SuperAdminUsername {
		return nil, domain.ErrForbidden
	}
	return s.users.FindAll(ctx)
}

// Create adds an account on behalf of the bootstrap admin. The username rule
// is looser than self-registration: 4 characters, not 9.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput, actor ports.Actor) (*domain.User, error) {
	if actor.Username != domain.SuperAdminUsername {
		return nil, domain.ErrForbidden
	}
	if !validEmail(input.Email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if len(input.Username) < minAdminCreatedUsernameLn {
		return nil, fmt.Errorf("%w: username is too short", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required for new users", domain.ErrValidation)
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	if err := s.checkDuplicates(ctx, input.Username, input.Email, ""); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  input.Password,
		FullName:  input.FullName,
		Role:      role,
		CreatedAt: domain.NowTimestamp(),
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	appendLog(ctx, s.logs, s.logger, domain.ActionCreate,
		fmt.Sprintf("Admin %s created user %s", actor.Username, user.Username), actor)
	s.logger.Info().Str("username", user.Username).Msg("user created by admin")
	return user, nil
}

// Update edits a record. Any authenticated user may edit their own; only the
// bootstrap admin may edit others or change roles. A blank password keeps
// the stored one; a non-blank password must pass the complexity rule.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput, actor ports.Actor) (*ports.UpdateUserResult, error) {
	isSuperAdmin := actor.Username == domain.SuperAdminUsername
	isSelf := actor.UserID == input.ID
	if !isSelf && !isSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if !validEmail(input.Email) {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	if input.Password != "" {
		if err := validatePassword(input.Password); err != nil {
			return nil, err
		}
	}

	all, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var target *domain.User
	for i := range all {
		if all[i].ID == input.ID {
			target = &all[i]
			break
		}
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}

	for i := range all {
		if all[i].ID == target.ID {
			continue
		}
		if strings.EqualFold(all[i].Username, input.Username) {
			return nil, domain.ErrUsernameTaken
		}
		if all[i].Email != "" && strings.EqualFold(all[i].Email, input.Email) {
			return nil, domain.ErrEmailTaken
		}
	}

	updated := &domain.User{
		ID:        target.ID,
		Username:  input.Username,
		Email:     input.Email,
		FullName:  input.FullName,
		Role:      target.Role,
		Password:  target.Password,
		CreatedAt: target.CreatedAt,
	}
	if isSuperAdmin && input.Role != "" {
		if !input.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
		}
		updated.Role = input.Role
	}
	if input.Password != "" {
		updated.Password = input.Password
	}

	if err := s.users.Upsert(ctx, updated); err != nil {
		return nil, err
	}

	result := &ports.UpdateUserResult{User: updated}
	if isSelf {
		appendLog(ctx, s.logs, s.logger, domain.ActionUpdate,
			fmt.Sprintf("User updated their profile: %s", updated.Username), actor)
		// The claims may have changed; hand back a fresh token so the
		// client's session reflects the record it just saved.
		token, err := signToken(updated, s.jwtSecret, s.tokenTTL)
		if err != nil {
			return nil, err
		}
		result.Token = token
	} else {
		appendLog(ctx, s.logs, s.logger, domain.ActionUpdate,
			fmt.Sprintf("Admin %s updated user %s", actor.Username, updated.Username), actor)
	}

	s.logger.Info().Str("username", updated.Username).Bool("self", isSelf).Msg("user updated")
	return result, nil
}

// Delete removes an account. Only the bootstrap admin may delete, and never
// their own record.
func (s *UserService) Delete(ctx context.Context, id string, actor ports.Actor) error {
	if actor.Username != domain.SuperAdminUsername {
		return domain.ErrForbidden
	}
	if id == actor.UserID {
		return domain.ErrSelfDeletion
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	appendLog(ctx, s.logs, s.logger, domain.ActionDelete, fmt.Sprintf("Deleted user ID: %s", id), actor)
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// checkDuplicates re-fetches the full list and scans case-insensitively,
// excluding excludeID. Check-then-write, not transactional: two concurrent
// clients can both pass, and the last writer wins.
func (s *UserService) checkDuplicates(ctx context.Context, username, email, excludeID string) error {
	all, err := s.users.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(all[i].Username, username) {
			return domain.ErrUsernameTaken
		}
		if all[i].Email != "" && strings.EqualFold(all[i].Email, email) {
			return domain.ErrEmailTaken
		}
	}
	return nil
}
