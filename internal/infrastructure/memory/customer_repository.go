package memory

import (
	"github.com/securetrack/securetrack-api/internal/domain"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementa repository.CustomerRepository sobre o Store.
// Update substitui o agregado inteiro (replace-on-write).
type CustomerRepository struct {
	store *Store
	inTx  bool // dentro do TxRunner o lock já foi adquirido
}

// NewCustomerRepository constrói o repositório sobre o store.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) Create(customer *entity.Customer) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.customers = append(r.store.customers, cloneCustomer(customer))
	return nil
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, c := range r.store.customers {
		if c.ID == id {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) GetByAccountNumber(accountNumber string) (*entity.Customer, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, c := range r.store.customers {
		if c.AccountNumber == accountNumber {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepository) ListAll() ([]*entity.Customer, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	return cloneCustomers(r.store.customers), nil
}

func (r *CustomerRepository) Update(customer *entity.Customer) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for i, c := range r.store.customers {
		if c.ID == customer.ID {
			r.store.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return domain.ErrCustomerNotFound
}
