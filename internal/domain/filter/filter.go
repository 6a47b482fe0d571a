// Package filter implementa os predicados de listagem de clientes, orçamentos
// e eventos. Todos os predicados ativos são combinados com E lógico; não há
// semântica de OU entre filtros.
package filter

import (
	"strings"
	"time"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

// All é o valor sentinela de status/tipo que casa com qualquer candidato.
// String vazia tem o mesmo efeito.
const All = "Todos"

// Filtro booleano de contrato para clientes.
const (
	ContractAll  = "all"
	ContractWith = "active"      // ao menos um serviço
	ContractNone = "no-contract" // nenhum serviço
)

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesEnum(want, got string) bool {
	return want == "" || want == All || want == got
}

// Intervalo inclusivo: a data do candidato deve ser >= From (se dado) e
// <= To (se dado). As datas comparam como instantes, não como dia calendário;
// quem chama decide a hora de corte (o handler estende To até o fim do dia).
func matchesRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

// CustomerFilter são os predicados de listagem de clientes.
type CustomerFilter struct {
	Query    string // substring case-insensitive sobre nome OU número de conta
	Contract string // ContractAll, ContractWith ou ContractNone
}

// Customers devolve o subconjunto de clientes que satisfaz todos os predicados.
func Customers(list []*entity.Customer, f CustomerFilter) []*entity.Customer {
	out := make([]*entity.Customer, 0, len(list))
	for _, c := range list {
		if !matchesQuery(f.Query, c.Name, c.AccountNumber) {
			continue
		}
		switch f.Contract {
		case ContractWith:
			if !c.HasContract() {
				continue
			}
		case ContractNone:
			if c.HasContract() {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// BudgetFilter são os predicados de listagem de orçamentos.
// Status compara com o status persistido, nunca com o derivado Expirado.
type BudgetFilter struct {
	Query  string // substring case-insensitive sobre nome do cliente OU referência
	Status string
	From   *time.Time // sobre CreatedAt, inclusivo
	To     *time.Time
}

// Budgets devolve o subconjunto de orçamentos que satisfaz todos os predicados.
func Budgets(list []*entity.Budget, f BudgetFilter) []*entity.Budget {
	out := make([]*entity.Budget, 0, len(list))
	for _, b := range list {
		if !matchesQuery(f.Query, b.CustomerName, b.AccountNumber) {
			continue
		}
		if !matchesEnum(f.Status, b.Status) {
			continue
		}
		if !matchesRange(b.CreatedAt, f.From, f.To) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// EventFilter são os predicados de listagem do histórico de eventos.
type EventFilter struct {
	Query    string // substring case-insensitive sobre descrição OU usuário
	Type     string
	Severity string
	From     *time.Time // sobre Timestamp, inclusivo
	To       *time.Time
}

// Events devolve o subconjunto de eventos que satisfaz todos os predicados.
func Events(list []*entity.AppEvent, f EventFilter) []*entity.AppEvent {
	out := make([]*entity.AppEvent, 0, len(list))
	for _, ev := range list {
		if !matchesQuery(f.Query, ev.Description, ev.User) {
			continue
		}
		if !matchesEnum(f.Type, ev.Type) {
			continue
		}
		if !matchesEnum(f.Severity, ev.Severity) {
			continue
		}
		if !matchesRange(ev.Timestamp, f.From, f.To) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
