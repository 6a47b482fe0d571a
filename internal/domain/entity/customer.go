package entity

import "time"

// Status financeiro do cliente. Os rótulos são os exibidos na interface e
// também os gravados nas notas de sistema — não alterar sem migrar os textos.
const (
	PaymentUpToDate = "Em dia"
	PaymentPending  = "Pendente"
	PaymentOverdue  = "Em atraso"
)

// PaymentStatuses lista os status financeiros válidos, na ordem de exibição.
var PaymentStatuses = []string{PaymentUpToDate, PaymentPending, PaymentOverdue}

// ValidPaymentStatus informa se s é um status financeiro conhecido.
func ValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Customer representa um cliente da central de monitoramento.
// É a raiz do agregado: possui com exclusividade seus serviços, equipamentos
// e notas (listas ordenadas; as mais recentes primeiro para serviços e notas).
type Customer struct {
	ID            string
	AccountNumber string // identificador legível (ex: ACC-1001), único no conjunto de clientes
	Name          string
	Address       string
	Phone         string
	Email         string
	PaymentStatus string
	Services      []*Service
	Equipments    []*Equipment
	Notes         []*Note
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasContract informa se o cliente possui ao menos um serviço.
func (c *Customer) HasContract() bool {
	return len(c.Services) > 0
}

// FindService retorna o serviço com o ID dado, ou nil.
func (c *Customer) FindService(id string) *Service {
	for _, s := range c.Services {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// FindEquipment retorna o equipamento com o ID dado, ou nil.
func (c *Customer) FindEquipment(id string) *Equipment {
	for _, e := range c.Equipments {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindNote retorna a nota com o ID dado, ou nil.
func (c *Customer) FindNote(id string) *Note {
	for _, n := range c.Notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
