package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"donation-dashboard-service/internal/domain"
	"donation-dashboard-service/internal/storage"
)

// Fixed namespaced keys of the five collections in the backend.
const (
	KeyUsers      = "donation_dashboard_users"
	KeyTeams      = "donation_dashboard_teams"
	KeyActivities = "donation_dashboard_activities"
	KeyPending    = "donation_dashboard_pending"
	KeyRecent     = "donation_dashboard_recent"
)

var collectionKeys = []string{KeyUsers, KeyTeams, KeyActivities, KeyPending, KeyRecent}

// Store owns the five collections over a key-value backend. Every operation
// is a whole-collection read-modify-write; all access is serialized behind
// one mutex so multi-collection transitions stay consistent under concurrent
// handlers.
type Store struct {
	backend storage.Backend
	mu      sync.Mutex
	now     func() time.Time
}

func New(backend storage.Backend) *Store {
	return &Store{
		backend: backend,
		now:     time.Now,
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// loadList reads a collection. Absent keys and corrupt payloads degrade to
// the empty collection; backend faults surface as ErrStorage.
func loadList[T any](ctx context.Context, backend storage.Backend, key string) ([]T, error) {
	raw, err := backend.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", domain.ErrStorage, key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}
	return items, nil
}

func saveList[T any](ctx context.Context, backend storage.Backend, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, key, err)
	}
	if err := backend.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// Initialize seeds the starter data set when the users collection is absent.
// Safe to call on every start; never overwrites existing data.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.backend.Load(ctx, KeyUsers)
	if err != nil {
		return fmt.Errorf("%w: load %s: %v", domain.ErrStorage, KeyUsers, err)
	}
	if len(raw) > 0 {
		return nil
	}

	users := []domain.User{
		{ID: 1, Role: domain.RoleAdmin, Name: "Administrador", Email: "admin@fecap.com", Password: "admin123"},
		{ID: 2, Role: domain.RoleMentor, Name: "Carlos Silva", Email: "carlos@fecap.com", Password: "mentor123", TeamIDs: []int{1}},
		{ID: 3, Role: domain.RoleMentor, Name: "Ana Santos", Email: "ana@fecap.com", Password: "mentor123", TeamIDs: []int{2}},
		{ID: 4, Role: domain.RoleAluno, Name: "João Aluno", Email: "joao@fecap.com", Password: "aluno123", TeamID: 1},
		{ID: 5, Role: domain.RoleAluno, Name: "Maria Aluna", Email: "maria@fecap.com", Password: "aluno123", TeamID: 2},
	}

	teams := []domain.Team{
		{ID: 1, Name: "Equipe Alpha", Mentor: "Carlos Silva", Total: 0, Activities: []domain.Activity{}},
		{ID: 2, Name: "Equipe Beta", Mentor: "Ana Santos", Total: 0, Activities: []domain.Activity{}},
	}

	if err := saveList(ctx, s.backend, KeyUsers, users); err != nil {
		return err
	}
	if err := saveList(ctx, s.backend, KeyTeams, teams); err != nil {
		return err
	}
	for _, key := range []string{KeyActivities, KeyPending, KeyRecent} {
		if err := saveList(ctx, s.backend, key, []domain.Activity{}); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes all five collections.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range collectionKeys {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, key, err)
		}
	}
	return nil
}
