package service

import (
	"context"
	"sort"
	"strings"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
)

// In-memory stand-ins for the repository ports. Each stores clones so that
// tests can mutate returned values without corrupting the fixture.

type stubUserRepo struct {
	users   []domain.User
	findErr error
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Upsert(_ context.Context, user *domain.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubAreaRepo struct {
	areas []domain.Area
}

func (r *stubAreaRepo) FindAll(_ context.Context) ([]domain.Area, error) {
	out := make([]domain.Area, len(r.areas))
	copy(out, r.areas)
	return out, nil
}

func (r *stubAreaRepo) Upsert(_ context.Context, area *domain.Area) error {
	for i := range r.areas {
		if r.areas[i].ID == area.ID {
			r.areas[i] = *area
			return nil
		}
	}
	r.areas = append(r.areas, *area)
	return nil
}

func (r *stubAreaRepo) Delete(_ context.Context, id string) error {
	for i := range r.areas {
		if r.areas[i].ID == id {
			r.areas = append(r.areas[:i], r.areas[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubAreaRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.areas)), nil
}

type stubItemRepo struct {
	items []domain.Item
}

func (r *stubItemRepo) FindAll(_ context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *stubItemRepo) Upsert(_ context.Context, item *domain.Item) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id string) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubLogRepo struct {
	entries   []domain.Log
	appendErr error
}

func (r *stubLogRepo) Append(_ context.Context, log *domain.Log) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, *log)
	return nil
}

func (r *stubLogRepo) FindRecent(_ context.Context, limit int) ([]domain.Log, error) {
	out := make([]domain.Log, len(r.entries))
	copy(out, r.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubLogRepo) lastAction() domain.LogAction {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}

func (r *stubLogRepo) lastDetails() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Details
}

type stubCodeStore struct {
	codes map[string]string
}

func newStubCodeStore() *stubCodeStore {
	return &stubCodeStore{codes: make(map[string]string)}
}

func (s *stubCodeStore) Set(_ context.Context, email, code string) error {
	s.codes[strings.ToLower(email)] = code
	return nil
}

func (s *stubCodeStore) Get(_ context.Context, email string) (string, error) {
	return s.codes[strings.ToLower(email)], nil
}

func (s *stubCodeStore) Delete(_ context.Context, email string) error {
	delete(s.codes, strings.ToLower(email))
	return nil
}
