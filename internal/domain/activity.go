package domain

// Activity statuses. Pendente is the initial state; Aprovada and Rejeitada
// are terminal.
const (
	StatusPendente  = "Pendente"
	StatusAprovada  = "Aprovada"
	StatusRejeitada = "Rejeitada"
)

// Activity categories. The category determines the unit of Valor: kilograms
// for alimentos, currency for everything else.
const (
	TipoAlimentos = "alimentos"
	TipoFundos    = "fundos"
	TipoEvento    = "evento"
)

// Activity represents a single reported donation/fundraising/event record.
// TeamName is denormalized from the team at submission time. Motivo is set
// only when the activity is rejected.
type Activity struct {
	ID        int     `json:"id"`
	TeamID    int     `json:"teamId"`
	TeamName  string  `json:"teamName"`
	UserID    int     `json:"userId"`
	Tipo      string  `json:"tipo"`
	Nome      string  `json:"nome"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
	Status    string  `json:"status"`
	Motivo    string  `json:"motivo,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// Decided reports whether the activity has reached a terminal state.
func (a Activity) Decided() bool {
	return a.Status != StatusPendente
}

// ValidTipo reports whether tipo is one of the known activity categories.
func ValidTipo(tipo string) bool {
	switch tipo {
	case TipoAlimentos, TipoFundos, TipoEvento:
		return true
	}
	return false
}

// ValidDecision reports whether decision is a terminal activity status.
func ValidDecision(decision string) bool {
	return decision == StatusAprovada || decision == StatusRejeitada
}

// ActivitySubmission carries the submit form input. Valor is kept as the raw
// string the form produced and parsed during validation.
type ActivitySubmission struct {
	TeamID int
	UserID int
	Tipo   string
	Nome   string
	Valor  string
	Data   string
}
