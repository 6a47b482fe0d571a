package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status persistido de um orçamento. BudgetExpired nunca é gravado: é um
// estado derivado em tempo de exibição quando o status ainda é BudgetOpen e
// validUntil já passou. Filtros por status operam sobre o status persistido.
const (
	BudgetOpen     = "Em Aberto"
	BudgetAccepted = "Aceito"
	BudgetRejected = "Rejeitado"
	BudgetExpired  = "Expirado"
)

// BudgetStatuses lista os status persistíveis de orçamento (sem Expirado).
var BudgetStatuses = []string{BudgetOpen, BudgetAccepted, BudgetRejected}

// ValidBudgetStatus informa se s é um status persistível de orçamento.
// Expirado é deliberadamente rejeitado: é calculado, nunca gravado.
func ValidBudgetStatus(s string) bool {
	for _, v := range BudgetStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// BudgetItem é uma linha de orçamento. Total é sempre Quantity * UnitPrice,
// recalculado a cada edição.
type BudgetItem struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// Budget representa uma proposta comercial. Pode referenciar um Customer por
// ID (referência fraca: orçamentos de lead não têm cliente cadastrado).
// Subtotal é a soma dos totais dos itens e Total = max(0, Subtotal - Discount);
// ambos recalculados sempre que itens ou desconto mudam.
type Budget struct {
	ID            string
	AccountNumber string // referência legível da proposta (ex: QT-5001)
	CustomerID    string // vazio para leads
	CustomerName  string
	CustomerEmail string
	Items         []*BudgetItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentTerms  string
	ValidUntil    time.Time
	Status        string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayStatus devolve o status a exibir: Expirado quando o orçamento ainda
// está Em Aberto e a validade já passou; caso contrário o status persistido.
func (b *Budget) DisplayStatus(now time.Time) string {
	if b.Status == BudgetOpen && b.ValidUntil.Before(now) {
		return BudgetExpired
	}
	return b.Status
}
