package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/domain"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

// EventUseCase registra e consulta o histórico operacional. O log é
// append-only: não existem operações de edição ou remoção.
type EventUseCase struct {
	repo repository.EventRepository
	sync SyncNotifier
}

// NewEventUseCase constrói o caso de uso. sync pode ser nil.
func NewEventUseCase(repo repository.EventRepository, sync SyncNotifier) *EventUseCase {
	return &EventUseCase{repo: repo, sync: sync}
}

// Append grava um novo evento. Tipo e severidade precisam ser válidos;
// User vazio assume o nome do operador informado pelo chamador.
func (uc *EventUseCase) Append(in dto.AppendEventRequest, operator string) (*dto.EventResponse, error) {
	if !entity.ValidEventType(in.Type) || !entity.ValidEventSeverity(in.Severity) {
		return nil, domain.ErrInvalidInput
	}
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	user := in.User
	if user == "" {
		user = operator
	}
	event := &entity.AppEvent{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		Type:        in.Type,
		Description: in.Description,
		User:        user,
		Severity:    in.Severity,
		Details:     in.Details,
		TargetID:    in.TargetID,
	}
	if err := uc.repo.Append(event); err != nil {
		return nil, err
	}
	if uc.sync != nil {
		uc.sync.Pulse()
	}
	return toEventResponse(event), nil
}

// List devolve o subconjunto filtrado do histórico. As estatísticas por
// severidade são sempre calculadas sobre o log completo, não sobre o filtro.
func (uc *EventUseCase) List(f filter.EventFilter) (*dto.EventListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	stats := dto.EventStatsResponse{Total: len(all)}
	for _, e := range all {
		switch e.Severity {
		case entity.SeverityCritical:
			stats.Critical++
		case entity.SeverityWarning:
			stats.Warning++
		case entity.SeveritySuccess:
			stats.Success++
		case entity.SeverityInfo:
			stats.Info++
		}
	}

	filtered := filter.Events(all, f)
	items := make([]dto.EventResponse, 0, len(filtered))
	for _, e := range filtered {
		items = append(items, *toEventResponse(e))
	}
	return &dto.EventListResponse{Items: items, Stats: stats}, nil
}

func toEventResponse(e *entity.AppEvent) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		Timestamp:   e.Timestamp.Format(time.RFC3339),
		Type:        e.Type,
		Description: e.Description,
		User:        e.User,
		Severity:    e.Severity,
		Details:     e.Details,
		TargetID:    e.TargetID,
	}
}
