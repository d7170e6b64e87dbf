package usecase_test

import (
	"context"
	"testing"

	"donation-dashboard-service/internal/domain"
	"donation-dashboard-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsUseCase_TeamStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	activityUC := usecase.NewActivityUseCase(s)
	statsUC := usecase.NewStatsUseCase(s)

	a1, err := activityUC.Submit(ctx, domain.ActivitySubmission{TeamID: 1, Tipo: domain.TipoFundos, Nome: "Bazar", Valor: "150.5"})
	require.NoError(t, err)
	a2, err := activityUC.Submit(ctx, domain.ActivitySubmission{TeamID: 1, Tipo: domain.TipoEvento, Nome: "Rifa", Valor: "50"})
	require.NoError(t, err)
	_, err = activityUC.Submit(ctx, domain.ActivitySubmission{TeamID: 1, Tipo: domain.TipoAlimentos, Nome: "Alimentos", Valor: "12.5"})
	require.NoError(t, err)
	// activity of another team must not be counted
	_, err = activityUC.Submit(ctx, domain.ActivitySubmission{TeamID: 2, Tipo: domain.TipoFundos, Nome: "Feira", Valor: "30"})
	require.NoError(t, err)

	_, err = activityUC.Decide(ctx, a1.ID, domain.StatusAprovada, "")
	require.NoError(t, err)
	_, err = activityUC.Decide(ctx, a2.ID, domain.StatusRejeitada, "Dados insuficientes")
	require.NoError(t, err)

	stats, err := statsUC.TeamStats(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 150.5, stats.Total, 1e-9)
	assert.Equal(t, 3, stats.TotalActivities)
	assert.Equal(t, 1, stats.ApprovedActivities)
	assert.Equal(t, 1, stats.PendingActivities)
	assert.Equal(t, 1, stats.RejectedActivities)
}

func TestStatsUseCase_TeamStats_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	statsUC := usecase.NewStatsUseCase(s)

	_, err := statsUC.TeamStats(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestStatsUseCase_GlobalStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	activityUC := usecase.NewActivityUseCase(s)
	statsUC := usecase.NewStatsUseCase(s)

	a1, err := activityUC.Submit(ctx, domain.ActivitySubmission{TeamID: 1, Tipo: domain.TipoFundos, Nome: "Bazar", Valor: "100"})
	require.NoError(t, err)
	_, err = activityUC.Submit(ctx, domain.ActivitySubmission{TeamID: 2, Tipo: domain.TipoEvento, Nome: "Rifa", Valor: "40"})
	require.NoError(t, err)
	_, err = activityUC.Decide(ctx, a1.ID, domain.StatusAprovada, "")
	require.NoError(t, err)

	stats, err := statsUC.GlobalStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTeams)
	assert.Equal(t, 5, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalActivities)
	assert.InDelta(t, 100, stats.TotalRaised, 1e-9)
	assert.Equal(t, 1, stats.PendingActivities)
}

func TestStatsUseCase_Ranking_StableOnTies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	statsUC := usecase.NewStatsUseCase(s)

	// Alpha keeps total 0; Beta and the new Gama tie at 50
	fifty := 50.0
	_, err := s.UpdateTeam(ctx, 2, domain.TeamPatch{Total: &fifty})
	require.NoError(t, err)
	gama, err := s.CreateTeam(ctx, domain.Team{Name: "Equipe Gama", Mentor: "Beatriz Costa"})
	require.NoError(t, err)
	_, err = s.UpdateTeam(ctx, gama.ID, domain.TeamPatch{Total: &fifty})
	require.NoError(t, err)

	ranking, err := statsUC.Ranking(ctx)
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	// tied teams keep their stored relative order
	assert.Equal(t, "Equipe Beta", ranking[0].Name)
	assert.Equal(t, "Equipe Gama", ranking[1].Name)
	assert.Equal(t, "Equipe Alpha", ranking[2].Name)
}

func TestStatsUseCase_VerifyTotals_DetectsDrift(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	statsUC := usecase.NewStatsUseCase(s)

	drifts, err := statsUC.VerifyTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// force a divergence between the materialized total and the derived sum
	bogus := 999.0
	_, err = s.UpdateTeam(ctx, 1, domain.TeamPatch{Total: &bogus})
	require.NoError(t, err)

	drifts, err = statsUC.VerifyTotals(ctx)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, 1, drifts[0].TeamID)
	assert.InDelta(t, 999, drifts[0].Recorded, 1e-9)
	assert.Zero(t, drifts[0].Derived)
}
