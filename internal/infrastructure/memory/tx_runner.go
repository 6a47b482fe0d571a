package memory

import (
	"context"

	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks atomicamente sobre o Store: segura o lock de
// escrita durante todo o callback e, em caso de erro, restaura o snapshot
// tirado no início. Ou todas as escritas do callback valem, ou nenhuma.
type TxRunner struct {
	store *Store
}

// NewTxRunner constrói o runner sobre o store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executa fn com repositórios atados ao lock já adquirido. O contexto é
// verificado na entrada; o callback em si roda sem pontos de bloqueio.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	budgetRepo repository.BudgetRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	snapCustomers := cloneCustomers(r.store.customers)
	snapBudgets := cloneBudgets(r.store.budgets)

	customerRepo := &CustomerRepository{store: r.store, inTx: true}
	budgetRepo := &BudgetRepository{store: r.store, inTx: true}

	if err := fn(customerRepo, budgetRepo); err != nil {
		r.store.customers = snapCustomers
		r.store.budgets = snapBudgets
		return err
	}
	return nil
}
