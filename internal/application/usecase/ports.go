package usecase

import (
	"context"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

// TxRunner executa fn como uma transação lógica sobre clientes e orçamentos:
// ou todas as escritas feitas dentro de fn valem, ou nenhuma. É o que garante
// a atomicidade da conversão de orçamento (novo serviço + status Aceito).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		budgetRepo repository.BudgetRepository,
	) error) error
}

// BudgetPDFGenerator gera a representação em PDF de uma proposta comercial.
type BudgetPDFGenerator interface {
	GenerateBudgetPDF(ctx context.Context, budget *entity.Budget) ([]byte, error)
}

// SyncNotifier aciona o indicador visual de sincronização após mutações.
// Puramente cosmético: não participa de nenhuma coordenação real.
type SyncNotifier interface {
	Pulse()
}
