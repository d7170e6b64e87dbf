package store

import (
	"context"

	"donation-dashboard-service/internal/domain"
)

// Export returns the full contents of the five collections as one snapshot.
func (s *Store) Export(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := loadList[domain.User](ctx, s.backend, KeyUsers)
	if err != nil {
		return nil, err
	}
	teams, err := loadList[domain.Team](ctx, s.backend, KeyTeams)
	if err != nil {
		return nil, err
	}
	activities, err := loadList[domain.Activity](ctx, s.backend, KeyActivities)
	if err != nil {
		return nil, err
	}
	pending, err := loadList[domain.Activity](ctx, s.backend, KeyPending)
	if err != nil {
		return nil, err
	}
	recent, err := loadList[domain.Activity](ctx, s.backend, KeyRecent)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Users:      users,
		Teams:      teams,
		Activities: activities,
		Pending:    pending,
		Recent:     recent,
		ExportedAt: s.timestamp(),
	}, nil
}

// Import overwrites the collections present in the snapshot. Nil collections
// are skipped, matching the manual-backup contract.
func (s *Store) Import(ctx context.Context, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snapshot.Users != nil {
		if err := saveList(ctx, s.backend, KeyUsers, snapshot.Users); err != nil {
			return err
		}
	}
	if snapshot.Teams != nil {
		if err := saveList(ctx, s.backend, KeyTeams, snapshot.Teams); err != nil {
			return err
		}
	}
	if snapshot.Activities != nil {
		if err := saveList(ctx, s.backend, KeyActivities, snapshot.Activities); err != nil {
			return err
		}
	}
	if snapshot.Pending != nil {
		if err := saveList(ctx, s.backend, KeyPending, snapshot.Pending); err != nil {
			return err
		}
	}
	if snapshot.Recent != nil {
		if err := saveList(ctx, s.backend, KeyRecent, snapshot.Recent); err != nil {
			return err
		}
	}
	return nil
}
