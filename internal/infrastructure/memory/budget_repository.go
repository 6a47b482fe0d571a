package memory

import (
	"github.com/securetrack/securetrack-api/internal/domain"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

var _ repository.BudgetRepository = (*BudgetRepository)(nil)

// BudgetRepository implementa repository.BudgetRepository sobre o Store.
// Propostas novas entram no início da lista.
type BudgetRepository struct {
	store *Store
	inTx  bool
}

// NewBudgetRepository constrói o repositório sobre o store.
func NewBudgetRepository(store *Store) *BudgetRepository {
	return &BudgetRepository{store: store}
}

func (r *BudgetRepository) Create(budget *entity.Budget) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.budgets = append([]*entity.Budget{cloneBudget(budget)}, r.store.budgets...)
	return nil
}

func (r *BudgetRepository) GetByID(id string) (*entity.Budget, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, b := range r.store.budgets {
		if b.ID == id {
			return cloneBudget(b), nil
		}
	}
	return nil, nil
}

func (r *BudgetRepository) ListAll() ([]*entity.Budget, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return cloneBudgets(r.store.budgets), nil
}

func (r *BudgetRepository) Update(budget *entity.Budget) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for i, b := range r.store.budgets {
		if b.ID == budget.ID {
			r.store.budgets[i] = cloneBudget(budget)
			return nil
		}
	}
	return domain.ErrNotFound
}
