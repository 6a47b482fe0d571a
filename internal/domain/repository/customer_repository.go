package repository

import "github.com/securetrack/securetrack-api/internal/domain/entity"

// CustomerRepository define o porto de acesso ao conjunto de clientes.
// Update substitui o agregado inteiro (replace-on-write): serviços,
// equipamentos e notas viajam junto com o cliente, nunca em partes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByAccountNumber(accountNumber string) (*entity.Customer, error)
	ListAll() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
}
