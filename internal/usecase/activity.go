package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"donation-dashboard-service/internal/domain"
)

// ActivityUseCase implements the activity lifecycle: Pendente on submission,
// one terminal decision afterwards.
type ActivityUseCase struct {
	store domain.Store
}

// NewActivityUseCase creates a new ActivityUseCase instance.
func NewActivityUseCase(store domain.Store) domain.ActivityUseCase {
	return &ActivityUseCase{
		store: store,
	}
}

// Submit validates the form input, denormalizes the team name and creates
// the activity in the Pendente state.
func (uc *ActivityUseCase) Submit(ctx context.Context, submission domain.ActivitySubmission) (*domain.Activity, error) {
	if !domain.ValidTipo(submission.Tipo) {
		return nil, domain.ErrInvalidTipo
	}

	valor, err := strconv.ParseFloat(strings.TrimSpace(submission.Valor), 64)
	if err != nil || math.IsNaN(valor) || math.IsInf(valor, 0) {
		return nil, domain.ErrInvalidValor
	}

	team, err := uc.store.GetTeamByID(ctx, submission.TeamID)
	if err != nil {
		return nil, err
	}

	data := submission.Data
	if data == "" {
		data = time.Now().Format("02/01/2006")
	}

	return uc.store.CreateActivity(ctx, domain.Activity{
		TeamID:   team.ID,
		TeamName: team.Name,
		UserID:   submission.UserID,
		Tipo:     submission.Tipo,
		Nome:     submission.Nome,
		Valor:    valor,
		Data:     data,
	})
}

// Decide moves an activity to a terminal state. A rejection requires a
// motivo; on approval any motivo is ignored. The store performs the
// transition atomically and rejects double decisions.
func (uc *ActivityUseCase) Decide(ctx context.Context, activityID int, decision, motivo string) (*domain.Activity, error) {
	if !domain.ValidDecision(decision) {
		return nil, domain.ErrInvalidDecision
	}
	if decision == domain.StatusRejeitada && strings.TrimSpace(motivo) == "" {
		return nil, domain.ErrMotivoRequired
	}
	if decision == domain.StatusAprovada {
		motivo = ""
	}

	return uc.store.DecideActivity(ctx, activityID, decision, motivo)
}
