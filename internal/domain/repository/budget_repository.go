package repository

import "github.com/securetrack/securetrack-api/internal/domain/entity"

// BudgetRepository define o porto de acesso aos orçamentos.
// Create insere no início da lista (propostas mais recentes primeiro);
// ListAll preserva essa ordem.
type BudgetRepository interface {
	Create(budget *entity.Budget) error
	GetByID(id string) (*entity.Budget, error)
	ListAll() ([]*entity.Budget, error)
	Update(budget *entity.Budget) error
}
