// Package memory implementa os repositórios do domínio sobre um estado
// em memória: todo o conjunto de dados vive no processo, protegido por um
// RWMutex, e é perdido ao reiniciar. Leituras e escritas trabalham sempre
// com cópias profundas, nunca com os ponteiros internos do Store.
package memory

import (
	"sync"
	"time"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

// Store é o dono do estado. Os repositórios e o TxRunner compartilham a
// mesma instância e o mesmo mutex.
type Store struct {
	mu        sync.RWMutex
	customers []*entity.Customer
	budgets   []*entity.Budget // mais recentes primeiro
	events    []*entity.AppEvent
	users     []*entity.User
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{}
}

// ── Cópias profundas ─────────────────────────────────────────────────────────

func cloneCustomer(c *entity.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	out := *c
	out.Services = make([]*entity.Service, len(c.Services))
	for i, s := range c.Services {
		out.Services[i] = cloneService(s)
	}
	out.Equipments = make([]*entity.Equipment, len(c.Equipments))
	for i, e := range c.Equipments {
		clone := *e
		out.Equipments[i] = &clone
	}
	out.Notes = make([]*entity.Note, len(c.Notes))
	for i, n := range c.Notes {
		clone := *n
		out.Notes[i] = &clone
	}
	return &out
}

func cloneService(s *entity.Service) *entity.Service {
	clone := *s
	clone.EndDate = cloneTime(s.EndDate)
	clone.RenewalDate = cloneTime(s.RenewalDate)
	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func cloneCustomers(in []*entity.Customer) []*entity.Customer {
	out := make([]*entity.Customer, len(in))
	for i, c := range in {
		out[i] = cloneCustomer(c)
	}
	return out
}

func cloneBudget(b *entity.Budget) *entity.Budget {
	if b == nil {
		return nil
	}
	out := *b
	out.Items = make([]*entity.BudgetItem, len(b.Items))
	for i, it := range b.Items {
		clone := *it
		out.Items[i] = &clone
	}
	return &out
}

func cloneBudgets(in []*entity.Budget) []*entity.Budget {
	out := make([]*entity.Budget, len(in))
	for i, b := range in {
		out[i] = cloneBudget(b)
	}
	return out
}

func cloneEvent(e *entity.AppEvent) *entity.AppEvent {
	clone := *e
	return &clone
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
