package store

import (
	"context"

	"donation-dashboard-service/internal/domain"
)

// recentLimit caps the recent-approvals queue.
const recentLimit = 50

func (s *Store) GetAllActivities(ctx context.Context) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[domain.Activity](ctx, s.backend, KeyActivities)
}

func (s *Store) GetActivitiesByTeam(ctx context.Context, teamID int) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := loadList[domain.Activity](ctx, s.backend, KeyActivities)
	if err != nil {
		return nil, err
	}
	filtered := make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		if activity.TeamID == teamID {
			filtered = append(filtered, activity)
		}
	}
	return filtered, nil
}

func (s *Store) GetPendingActivities(ctx context.Context) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[domain.Activity](ctx, s.backend, KeyPending)
}

func (s *Store) GetRecentActivities(ctx context.Context) ([]domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[domain.Activity](ctx, s.backend, KeyRecent)
}

// CreateActivity assigns the next sequential id, defaults the status to
// Pendente and enqueues the new activity to the pending queue.
func (s *Store) CreateActivity(ctx context.Context, activity domain.Activity) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := loadList[domain.Activity](ctx, s.backend, KeyActivities)
	if err != nil {
		return nil, err
	}

	activity.ID = 1
	for _, existing := range activities {
		if existing.ID >= activity.ID {
			activity.ID = existing.ID + 1
		}
	}
	if activity.Status == "" {
		activity.Status = domain.StatusPendente
	}
	activity.CreatedAt = s.timestamp()

	activities = append(activities, activity)
	if err := saveList(ctx, s.backend, KeyActivities, activities); err != nil {
		return nil, err
	}

	pending, err := loadList[domain.Activity](ctx, s.backend, KeyPending)
	if err != nil {
		return nil, err
	}
	pending = append(pending, activity)
	if err := saveList(ctx, s.backend, KeyPending, pending); err != nil {
		return nil, err
	}

	return &activity, nil
}

// DecideActivity applies a terminal transition. The whole transition runs
// under the store lock: activity status and motivo, the owning team's total
// on approval, the recent queue push and the pending removal. A decided
// activity is never decided again.
func (s *Store) DecideActivity(ctx context.Context, id int, status, motivo string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities, err := loadList[domain.Activity](ctx, s.backend, KeyActivities)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range activities {
		if activities[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrActivityNotFound
	}
	if activities[idx].Decided() {
		return nil, domain.ErrActivityAlreadyDecided
	}

	// Resolve the owning team before mutating anything, so a dangling team
	// reference leaves no partial state behind.
	var teams []domain.Team
	teamIdx := -1
	if status == domain.StatusAprovada {
		teams, err = loadList[domain.Team](ctx, s.backend, KeyTeams)
		if err != nil {
			return nil, err
		}
		for i := range teams {
			if teams[i].ID == activities[idx].TeamID {
				teamIdx = i
				break
			}
		}
		if teamIdx == -1 {
			return nil, domain.ErrTeamNotFound
		}
	}

	activities[idx].Status = status
	if status == domain.StatusRejeitada {
		activities[idx].Motivo = motivo
	}
	activities[idx].UpdatedAt = s.timestamp()

	if err := saveList(ctx, s.backend, KeyActivities, activities); err != nil {
		return nil, err
	}

	if status == domain.StatusAprovada {
		teams[teamIdx].Total += activities[idx].Valor
		teams[teamIdx].UpdatedAt = s.timestamp()
		if err := saveList(ctx, s.backend, KeyTeams, teams); err != nil {
			return nil, err
		}

		recent, err := loadList[domain.Activity](ctx, s.backend, KeyRecent)
		if err != nil {
			return nil, err
		}
		recent = append([]domain.Activity{activities[idx]}, recent...)
		if len(recent) > recentLimit {
			recent = recent[:recentLimit]
		}
		if err := saveList(ctx, s.backend, KeyRecent, recent); err != nil {
			return nil, err
		}
	}

	pending, err := loadList[domain.Activity](ctx, s.backend, KeyPending)
	if err != nil {
		return nil, err
	}
	remaining := make([]domain.Activity, 0, len(pending))
	for _, p := range pending {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if err := saveList(ctx, s.backend, KeyPending, remaining); err != nil {
		return nil, err
	}

	decided := activities[idx]
	return &decided, nil
}
