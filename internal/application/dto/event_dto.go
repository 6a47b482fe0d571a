package dto

// AppendEventRequest registro de um novo evento no histórico.
// User vazio assume o nome do operador autenticado.
type AppendEventRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	User        string `json:"user"`
	Severity    string `json:"severity"`
	Details     string `json:"details"`
	TargetID    string `json:"target_id"`
}

// EventResponse evento na resposta. Timestamp em RFC 3339.
type EventResponse struct {
	ID          string `json:"id"`
	Timestamp   string `json:"timestamp"`
	Type        string `json:"type"`
	Description string `json:"description"`
	User        string `json:"user"`
	Severity    string `json:"severity"`
	Details     string `json:"details,omitempty"`
	TargetID    string `json:"target_id,omitempty"`
}

// EventStatsResponse contadores por severidade sobre o log completo.
type EventStatsResponse struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Success  int `json:"success"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

// EventListResponse listagem filtrada do histórico.
type EventListResponse struct {
	Items []EventResponse    `json:"items"`
	Stats EventStatsResponse `json:"stats"`
}
