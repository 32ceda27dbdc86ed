package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

var superActor = ports.Actor{UserID: "super-admin-001", Username: domain.SuperAdminUsername, Role: domain.RoleAdmin}

func newUserService(users *stubUserRepo, logs *stubLogRepo) *UserService {
	return NewUserService(users, logs, "secret", time.Hour, zerolog.Nop())
}

func TestUserService_List_SuperuserGate(t *testing.T) {
	users := &stubUserRepo{}
	seedUser(users, "super-admin-001", domain.SuperAdminUsername, "admin@nexus.com", "Superadmin-123", domain.RoleAdmin)
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, &stubLogRepo{})

	got, err := svc.List(context.Background(), superActor)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 users, got %d", len(got))
	}

	// The gate is the literal username, not the role: an ordinary ADMIN is
	// rejected.
	if _, err := svc.List(context.Background(), adminActor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-bootstrap admin, got %v", err)
	}
}

func TestUserService_Create(t *testing.T) {
	users := &stubUserRepo{}
	logs := &stubLogRepo{}
	svc := newUserService(users, logs)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "ops1",
		Email:    "ops1@example.com",
		Password: "Password-123!",
		FullName: "Ops One",
	}, superActor)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default USER role, got %s", user.Role)
	}
	if logs.lastDetails() != "Admin ElSuperAdmin created user ops1" {
		t.Fatalf("unexpected audit details %q", logs.lastDetails())
	}

	// Admin creation allows shorter usernames than self-registration, but
	// not arbitrarily short ones.
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "ab", Email: "ab@example.com", Password: "Password-123!", FullName: "AB",
	}, superActor); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for 2-char username, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "ops2", Email: "ops2@example.com", Password: "Password-123!", FullName: "Ops Two",
	}, adminActor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-bootstrap admin, got %v", err)
	}
}

func TestUserService_Create_DuplicatesCaseInsensitive(t *testing.T) {
	users := &stubUserRepo{}
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, &stubLogRepo{})

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "WAREHOUSE1", Email: "other@example.com", Password: "Password-123!", FullName: "W",
	}, superActor); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "ops1", Email: "W1@EXAMPLE.COM", Password: "Password-123!", FullName: "W",
	}, superActor); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_Update_Self(t *testing.T) {
	users := &stubUserRepo{}
	logs := &stubLogRepo{}
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, logs)

	actor := ports.Actor{UserID: "u1", Username: "warehouse1", Role: domain.RoleUser}
	result, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       "u1",
		Username: "warehouse1b",
		Email:    "w1@example.com",
		FullName: "Renamed",
		Role:     domain.RoleAdmin, // ignored: only the bootstrap admin changes roles
	}, actor)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("role should not change on self-update, got %s", result.User.Role)
	}
	// Blank password keeps the stored one.
	if result.User.Password != "Password-123!" {
		t.Fatalf("blank password should keep the stored one")
	}
	if result.Token == "" {
		t.Fatalf("self-update should return a fresh token")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("fresh token invalid: %v", err)
	}
	if claims["username"] != "warehouse1b" {
		t.Fatalf("fresh token should carry the new username, got %v", claims["username"])
	}
	if logs.lastDetails() != "User updated their profile: warehouse1b" {
		t.Fatalf("unexpected audit details %q", logs.lastDetails())
	}
}

func TestUserService_Update_ByBootstrapAdmin(t *testing.T) {
	users := &stubUserRepo{}
	logs := &stubLogRepo{}
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, logs)

	result, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       "u1",
		Username: "warehouse1",
		Email:    "w1@example.com",
		FullName: "Promoted",
		Role:     domain.RoleAdmin,
		Password: "NewPassword-1!",
	}, superActor)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if result.User.Role != domain.RoleAdmin {
		t.Fatalf("bootstrap admin should be able to change roles")
	}
	if result.User.Password != "NewPassword-1!" {
		t.Fatalf("password should be overwritten")
	}
	if result.Token != "" {
		t.Fatalf("no token on admin-driven update")
	}
	if logs.lastDetails() != "Admin ElSuperAdmin updated user warehouse1" {
		t.Fatalf("unexpected audit details %q", logs.lastDetails())
	}
}

func TestUserService_Update_Forbidden(t *testing.T) {
	users := &stubUserRepo{}
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	seedUser(users, "u2", "warehouse2", "w2@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, &stubLogRepo{})

	actor := ports.Actor{UserID: "u1", Username: "warehouse1", Role: domain.RoleUser}
	if _, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: "u2", Username: "warehouse2", Email: "w2@example.com", FullName: "W",
	}, actor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden editing another user, got %v", err)
	}
}

func TestUserService_Update_Duplicates(t *testing.T) {
	users := &stubUserRepo{}
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	seedUser(users, "u2", "warehouse2", "w2@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, &stubLogRepo{})

	// Taking another account's username fails, case-insensitively.
	if _, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: "u1", Username: "WAREHOUSE2", Email: "w1@example.com", FullName: "W",
	}, superActor); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// Keeping your own values is not a conflict.
	if _, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: "u1", Username: "warehouse1", Email: "w1@example.com", FullName: "W",
	}, superActor); err != nil {
		t.Fatalf("own values should not conflict, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	users := &stubUserRepo{}
	logs := &stubLogRepo{}
	seedUser(users, "super-admin-001", domain.SuperAdminUsername, "admin@nexus.com", "Superadmin-123", domain.RoleAdmin)
	seedUser(users, "u1", "warehouse1", "w1@example.com", "Password-123!", domain.RoleUser)
	svc := newUserService(users, logs)

	if err := svc.Delete(context.Background(), "super-admin-001", superActor); !errors.Is(err, domain.ErrSelfDeletion) {
		t.Fatalf("expected ErrSelfDeletion, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", adminActor); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-bootstrap admin, got %v", err)
	}

	if err := svc.Delete(context.Background(), "u1", superActor); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected user to be removed")
	}
	if logs.lastDetails() != "Deleted user ID: u1" {
		t.Fatalf("unexpected audit details %q", logs.lastDetails())
	}
}
