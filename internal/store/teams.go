package store

import (
	"context"

	"donation-dashboard-service/internal/domain"
)

func (s *Store) GetAllTeams(ctx context.Context) ([]domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return loadList[domain.Team](ctx, s.backend, KeyTeams)
}

func (s *Store) GetTeamByID(ctx context.Context, id int) (*domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return findTeam(ctx, s, id)
}

func findTeam(ctx context.Context, s *Store, id int) (*domain.Team, error) {
	teams, err := loadList[domain.Team](ctx, s.backend, KeyTeams)
	if err != nil {
		return nil, err
	}
	for _, team := range teams {
		if team.ID == id {
			return &team, nil
		}
	}
	return nil, domain.ErrTeamNotFound
}

// CreateTeam assigns the next sequential id and applies the defaults
// (total 0, empty activity list).
func (s *Store) CreateTeam(ctx context.Context, team domain.Team) (*domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := loadList[domain.Team](ctx, s.backend, KeyTeams)
	if err != nil {
		return nil, err
	}

	team.ID = 1
	for _, existing := range teams {
		if existing.ID >= team.ID {
			team.ID = existing.ID + 1
		}
	}
	team.Total = 0
	if team.Activities == nil {
		team.Activities = []domain.Activity{}
	}
	team.CreatedAt = s.timestamp()

	teams = append(teams, team)
	if err := saveList(ctx, s.backend, KeyTeams, teams); err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam shallow-merges the patch over the stored record.
func (s *Store) UpdateTeam(ctx context.Context, id int, patch domain.TeamPatch) (*domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teams, err := loadList[domain.Team](ctx, s.backend, KeyTeams)
	if err != nil {
		return nil, err
	}

	for i := range teams {
		if teams[i].ID != id {
			continue
		}
		if patch.Name != nil {
			teams[i].Name = *patch.Name
		}
		if patch.Mentor != nil {
			teams[i].Mentor = *patch.Mentor
		}
		if patch.Total != nil {
			teams[i].Total = *patch.Total
		}
		teams[i].UpdatedAt = s.timestamp()

		if err := saveList(ctx, s.backend, KeyTeams, teams); err != nil {
			return nil, err
		}
		updated := teams[i]
		return &updated, nil
	}
	return nil, domain.ErrTeamNotFound
}
