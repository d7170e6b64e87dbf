package usecase

import (
	"context"
	"math"
	"sort"

	"donation-dashboard-service/internal/domain"
)

// StatsUseCase implements the read-only aggregation over the store snapshot.
// Nothing is cached; snapshots are cheap and recomputed per call.
type StatsUseCase struct {
	store domain.Store
}

// NewStatsUseCase creates a new StatsUseCase instance.
func NewStatsUseCase(store domain.Store) domain.StatsUseCase {
	return &StatsUseCase{
		store: store,
	}
}

// TeamStats returns the per-team counters. Total comes from the team record.
func (uc *StatsUseCase) TeamStats(ctx context.Context, teamID int) (*domain.TeamStats, error) {
	team, err := uc.store.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	activities, err := uc.store.GetActivitiesByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	stats := &domain.TeamStats{
		Total:           team.Total,
		TotalActivities: len(activities),
	}
	for _, activity := range activities {
		switch activity.Status {
		case domain.StatusAprovada:
			stats.ApprovedActivities++
		case domain.StatusPendente:
			stats.PendingActivities++
		case domain.StatusRejeitada:
			stats.RejectedActivities++
		}
	}
	return stats, nil
}

// GlobalStats returns the admin dashboard counters.
func (uc *StatsUseCase) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	teams, err := uc.store.GetAllTeams(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.store.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := uc.store.GetAllActivities(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := uc.store.GetPendingActivities(ctx)
	if err != nil {
		return nil, err
	}

	var raised float64
	for _, team := range teams {
		raised += team.Total
	}

	return &domain.GlobalStats{
		TotalTeams:        len(teams),
		TotalUsers:        len(users),
		TotalActivities:   len(activities),
		TotalRaised:       raised,
		PendingActivities: len(pending),
	}, nil
}

// Ranking returns the teams sorted descending by total. The sort is stable:
// teams with equal totals keep their stored relative order.
func (uc *StatsUseCase) Ranking(ctx context.Context) ([]domain.Team, error) {
	teams, err := uc.store.GetAllTeams(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Total > teams[j].Total
	})
	return teams, nil
}

// VerifyTotals compares each team's materialized total against the sum
// derived from its approved activities and reports every divergence.
func (uc *StatsUseCase) VerifyTotals(ctx context.Context) ([]domain.TotalDrift, error) {
	teams, err := uc.store.GetAllTeams(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := uc.store.GetAllActivities(ctx)
	if err != nil {
		return nil, err
	}

	derived := make(map[int]float64, len(teams))
	for _, activity := range activities {
		if activity.Status == domain.StatusAprovada {
			derived[activity.TeamID] += activity.Valor
		}
	}

	drifts := []domain.TotalDrift{}
	for _, team := range teams {
		if math.Abs(team.Total-derived[team.ID]) > 1e-9 {
			drifts = append(drifts, domain.TotalDrift{
				TeamID:   team.ID,
				TeamName: team.Name,
				Recorded: team.Total,
				Derived:  derived[team.ID],
			})
		}
	}
	return drifts, nil
}
