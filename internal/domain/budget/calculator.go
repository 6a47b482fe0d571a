// Package budget implementa a aritmética de orçamentos (serviço de domínio):
// totais de item, subtotal e total geral com piso em zero.
package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

// ItemTotal calcula o total de uma linha: Quantity * UnitPrice.
func ItemTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Recalculate recalcula todos os valores derivados do orçamento a partir dos
// insumos atuais: o total de cada item, o subtotal (soma dos totais) e o
// total geral. O desconto nunca leva o total abaixo de zero.
//
// Deve ser chamado após qualquer edição de itens ou desconto — Subtotal e
// Total jamais são aceitos do cliente.
func Recalculate(b *entity.Budget) {
	subtotal := decimal.Zero
	for _, item := range b.Items {
		item.Total = ItemTotal(item.Quantity, item.UnitPrice)
		subtotal = subtotal.Add(item.Total)
	}
	b.Subtotal = subtotal

	total := subtotal.Sub(b.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	b.Total = total
}

// ConversionDescription monta a descrição do serviço criado a partir de um
// orçamento aceito: referência da proposta mais os itens convertidos.
func ConversionDescription(b *entity.Budget) string {
	descriptions := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		descriptions = append(descriptions, item.Description)
	}
	return fmt.Sprintf("%s Orçamento %s. Itens: %s",
		ConvertedMarker, b.AccountNumber, strings.Join(descriptions, ", "))
}

// ConvertedMarker identifica serviços originados de conversão de orçamento.
const ConvertedMarker = "[CONVERTIDO]"
