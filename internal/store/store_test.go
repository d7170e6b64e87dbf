package store_test

import (
	"context"
	"testing"

	"donation-dashboard-service/internal/domain"
	"donation-dashboard-service/internal/storage"
	"donation-dashboard-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s := store.New(storage.NewMemory())
	require.NoError(t, s.Initialize(context.Background()))
	t.Cleanup(func() { _ = s.Clear(context.Background()) })
	return s
}

func TestStore_Initialize_SeedsStarterData(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	teams, err := s.GetAllTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Equipe Alpha", teams[0].Name)
	assert.Equal(t, "Equipe Beta", teams[1].Name)
	assert.Zero(t, teams[0].Total)
	assert.Zero(t, teams[1].Total)

	activities, err := s.GetAllActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, activities)

	pending, err := s.GetPendingActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	recent, err := s.GetRecentActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestStore_Initialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.CreateUser(ctx, domain.User{
		Role: domain.RoleAluno, Name: "Pedro", Email: "pedro@fecap.com", Password: "senha123", TeamID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	require.NoError(t, s.Initialize(ctx))

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 6)
}

func TestStore_CreateActivity_DefaultsAndPending(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	activity, err := s.CreateActivity(ctx, domain.Activity{
		TeamID: 1, TeamName: "Equipe Alpha", UserID: 4,
		Tipo: domain.TipoFundos, Nome: "Bazar", Valor: 150.5, Data: "01/09/2026",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, activity.ID)
	assert.Equal(t, domain.StatusPendente, activity.Status)
	assert.NotEmpty(t, activity.CreatedAt)

	second, err := s.CreateActivity(ctx, domain.Activity{TeamID: 2, Tipo: domain.TipoEvento, Nome: "Rifa", Valor: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	pending, err := s.GetPendingActivities(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].ID)
	assert.Equal(t, 2, pending[1].ID)
}

func TestStore_DecideActivity_Twice(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	activity, err := s.CreateActivity(ctx, domain.Activity{TeamID: 1, Tipo: domain.TipoFundos, Nome: "Bazar", Valor: 100})
	require.NoError(t, err)

	_, err = s.DecideActivity(ctx, activity.ID, domain.StatusAprovada, "")
	require.NoError(t, err)

	_, err = s.DecideActivity(ctx, activity.ID, domain.StatusAprovada, "")
	assert.ErrorIs(t, err, domain.ErrActivityAlreadyDecided)

	// the second call must not double-count
	team, err := s.GetTeamByID(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 100, team.Total, 1e-9)
}

func TestStore_DecideActivity_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.DecideActivity(ctx, 99, domain.StatusAprovada, "")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestStore_UpdateUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	name := "Novo Nome"
	_, err := s.UpdateUser(ctx, 99, domain.UserPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStore_UpdateTeam_PartialMerge(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mentor := "Beatriz Costa"
	updated, err := s.UpdateTeam(ctx, 1, domain.TeamPatch{Mentor: &mentor})
	require.NoError(t, err)
	assert.Equal(t, "Beatriz Costa", updated.Mentor)
	assert.Equal(t, "Equipe Alpha", updated.Name)
	assert.NotEmpty(t, updated.UpdatedAt)
}

func TestStore_GetUserByEmail_FirstMatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user, err := s.GetUserByEmail(ctx, "joao@fecap.com")
	require.NoError(t, err)
	assert.Equal(t, 4, user.ID)

	_, err = s.GetUserByEmail(ctx, "nonexistent@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStore_CorruptData_DegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()
	require.NoError(t, backend.Save(ctx, store.KeyUsers, []byte("{not json")))

	s := store.New(backend)

	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestStore_ExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	activity, err := s.CreateActivity(ctx, domain.Activity{
		TeamID: 1, TeamName: "Equipe Alpha", UserID: 4,
		Tipo: domain.TipoAlimentos, Nome: "Arrecadação de alimentos", Valor: 12.5,
	})
	require.NoError(t, err)
	_, err = s.DecideActivity(ctx, activity.ID, domain.StatusAprovada, "")
	require.NoError(t, err)

	snapshot, err := s.Export(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot.ExportedAt)

	// restore into an empty store
	restored := store.New(storage.NewMemory())
	require.NoError(t, restored.Import(ctx, *snapshot))

	roundTrip, err := restored.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Users, roundTrip.Users)
	assert.Equal(t, snapshot.Teams, roundTrip.Teams)
	assert.Equal(t, snapshot.Activities, roundTrip.Activities)
	assert.Equal(t, snapshot.Pending, roundTrip.Pending)
	assert.Equal(t, snapshot.Recent, roundTrip.Recent)
}

func TestStore_Import_SkipsAbsentCollections(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Import(ctx, domain.Snapshot{
		Teams: []domain.Team{{ID: 7, Name: "Equipe Gama", Mentor: "Beatriz", Activities: []domain.Activity{}}},
	}))

	teams, err := s.GetAllTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Equipe Gama", teams[0].Name)

	// users were not part of the snapshot and must be untouched
	users, err := s.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}
