package memory

import (
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepository)(nil)

// EventRepository implementa repository.EventRepository sobre o Store.
// Eventos novos entram no início; o log nunca é alterado nem truncado.
type EventRepository struct {
	store *Store
}

// NewEventRepository constrói o repositório sobre o store.
func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Append(event *entity.AppEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.events = append([]*entity.AppEvent{cloneEvent(event)}, r.store.events...)
	return nil
}

func (r *EventRepository) ListAll() ([]*entity.AppEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.AppEvent, len(r.store.events))
	for i, e := range r.store.events {
		out[i] = cloneEvent(e)
	}
	return out, nil
}
