package repository

import "github.com/securetrack/securetrack-api/internal/domain/entity"

// EventRepository define o porto do histórico de eventos. O log é
// append-only: não existe Update nem Delete, por contrato.
type EventRepository interface {
	Append(event *entity.AppEvent) error
	ListAll() ([]*entity.AppEvent, error)
}
