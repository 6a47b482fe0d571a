package budget_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	budgetcalc "github.com/securetrack/securetrack-api/internal/domain/budget"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRecalculate_TotaisDerivados(t *testing.T) {
	// Proposta de instalação: 1x 1200 + 4x 280 = 2320, desconto 120 → 2200
	b := &entity.Budget{
		Items: []*entity.BudgetItem{
			{Description: "Instalação de Sistema de Monitoramento", Quantity: dec(1), UnitPrice: dec(1200)},
			{Description: "Câmera IP Hikvision", Quantity: dec(4), UnitPrice: dec(280)},
		},
		Discount: dec(120),
	}

	budgetcalc.Recalculate(b)

	assert.True(t, b.Items[0].Total.Equal(dec(1200)))
	assert.True(t, b.Items[1].Total.Equal(dec(1120)))
	assert.True(t, b.Subtotal.Equal(dec(2320)), "subtotal deve ser a soma dos itens")
	assert.True(t, b.Total.Equal(dec(2200)), "total deve ser subtotal - desconto")
}

func TestRecalculate_DescontoMaiorQueSubtotal(t *testing.T) {
	b := &entity.Budget{
		Items: []*entity.BudgetItem{
			{Description: "Sensor", Quantity: dec(1), UnitPrice: dec(85)},
		},
		Discount: dec(500),
	}

	budgetcalc.Recalculate(b)

	assert.True(t, b.Total.IsZero(), "o desconto nunca leva o total abaixo de zero")
	assert.True(t, b.Subtotal.Equal(dec(85)), "o subtotal não é afetado pelo piso")
}

func TestRecalculate_SemItens(t *testing.T) {
	b := &entity.Budget{Discount: dec(10)}

	budgetcalc.Recalculate(b)

	assert.True(t, b.Subtotal.IsZero())
	assert.True(t, b.Total.IsZero())
}

func TestRecalculate_SobrescreveTotaisInformados(t *testing.T) {
	// Totais vindos de fora são descartados: sempre derivados no servidor.
	b := &entity.Budget{
		Items: []*entity.BudgetItem{
			{Description: "Painel", Quantity: dec(2), UnitPrice: dec(450), Total: dec(999)},
		},
		Subtotal: dec(999),
		Total:    dec(999),
	}

	budgetcalc.Recalculate(b)

	assert.True(t, b.Items[0].Total.Equal(dec(900)))
	assert.True(t, b.Subtotal.Equal(dec(900)))
	assert.True(t, b.Total.Equal(dec(900)))
}

func TestConversionDescription(t *testing.T) {
	b := &entity.Budget{
		AccountNumber: "QT-5001",
		Items: []*entity.BudgetItem{
			{Description: "Instalação de Sistema de Monitoramento"},
			{Description: "Câmera IP Hikvision"},
		},
	}

	got := budgetcalc.ConversionDescription(b)

	assert.Equal(t, "[CONVERTIDO] Orçamento QT-5001. Itens: Instalação de Sistema de Monitoramento, Câmera IP Hikvision", got)
}

func TestDisplayStatus_ExpiradoDerivado(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	open := &entity.Budget{Status: entity.BudgetOpen, ValidUntil: now.AddDate(0, 0, -1)}
	assert.Equal(t, entity.BudgetExpired, open.DisplayStatus(now),
		"proposta em aberto com validade vencida exibe Expirado")

	valid := &entity.Budget{Status: entity.BudgetOpen, ValidUntil: now.AddDate(0, 0, 10)}
	assert.Equal(t, entity.BudgetOpen, valid.DisplayStatus(now))

	accepted := &entity.Budget{Status: entity.BudgetAccepted, ValidUntil: now.AddDate(0, 0, -30)}
	assert.Equal(t, entity.BudgetAccepted, accepted.DisplayStatus(now),
		"status terminal nunca vira Expirado, mesmo vencido")
}

func TestValidBudgetStatus_RejeitaExpirado(t *testing.T) {
	assert.True(t, entity.ValidBudgetStatus(entity.BudgetOpen))
	assert.True(t, entity.ValidBudgetStatus(entity.BudgetAccepted))
	assert.True(t, entity.ValidBudgetStatus(entity.BudgetRejected))
	assert.False(t, entity.ValidBudgetStatus(entity.BudgetExpired),
		"Expirado é derivado, nunca gravável")
}
