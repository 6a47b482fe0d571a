// Package report contém as agregações read-only do painel: contadores do
// dashboard, estatísticas de orçamentos e o relatório de garantias.
// Tudo é recalculado a cada consulta; coleções vazias produzem zeros, nunca erro.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

// DashboardCounts são os quatro contadores do topo do dashboard.
type DashboardCounts struct {
	TotalCustomers  int
	ActiveServices  int
	TotalEquipments int
	PendingPayments int // clientes com status financeiro diferente de "Em dia"
}

// Dashboard calcula os contadores do dashboard sobre a carteira atual.
func Dashboard(customers []*entity.Customer) DashboardCounts {
	var counts DashboardCounts
	counts.TotalCustomers = len(customers)
	for _, c := range customers {
		for _, s := range c.Services {
			if s.Status == entity.ServiceActive {
				counts.ActiveServices++
			}
		}
		counts.TotalEquipments += len(c.Equipments)
		if c.PaymentStatus != entity.PaymentUpToDate {
			counts.PendingPayments++
		}
	}
	return counts
}

// TypeCount é a contagem de serviços de um tipo, para o gráfico do dashboard.
type TypeCount struct {
	Type  string
	Count int
}

// ServiceTypeDistribution conta os serviços por tipo, na ordem canônica dos
// tipos. Tipos sem ocorrência aparecem com contagem zero.
func ServiceTypeDistribution(customers []*entity.Customer) []TypeCount {
	byType := make(map[string]int, len(entity.ServiceTypes))
	for _, c := range customers {
		for _, s := range c.Services {
			byType[s.Type]++
		}
	}
	out := make([]TypeCount, 0, len(entity.ServiceTypes))
	for _, t := range entity.ServiceTypes {
		out = append(out, TypeCount{Type: t, Count: byType[t]})
	}
	return out
}

// BudgetStats são as estatísticas exibidas sobre um subconjunto filtrado de
// orçamentos.
type BudgetStats struct {
	TotalValue     decimal.Decimal
	Count          int
	ConversionRate float64 // percentual de aceitos; 0 quando o subconjunto é vazio
}

// BudgetReport calcula valor total, contagem e taxa de conversão do
// subconjunto. Subconjunto vazio produz taxa zero, nunca divisão por zero.
func BudgetReport(budgets []*entity.Budget) BudgetStats {
	stats := BudgetStats{TotalValue: decimal.Zero, Count: len(budgets)}
	if stats.Count == 0 {
		return stats
	}
	accepted := 0
	for _, b := range budgets {
		stats.TotalValue = stats.TotalValue.Add(b.Total)
		if b.Status == entity.BudgetAccepted {
			accepted++
		}
	}
	stats.ConversionRate = float64(accepted) / float64(stats.Count) * 100
	return stats
}

// WarrantyEntry é um par (equipamento, nome do dono) do relatório de garantias.
type WarrantyEntry struct {
	Equipment *entity.Equipment
	OwnerName string
}

// WarrantyPreview achata os equipamentos de todos os clientes em pares
// (equipamento, dono), limitado a limit entradas (limit <= 0 devolve tudo).
func WarrantyPreview(customers []*entity.Customer, limit int) []WarrantyEntry {
	var out []WarrantyEntry
	for _, c := range customers {
		for _, e := range c.Equipments {
			out = append(out, WarrantyEntry{Equipment: e, OwnerName: c.Name})
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}
