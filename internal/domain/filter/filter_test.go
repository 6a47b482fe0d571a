package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
)

func ts(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func tsPtr(t time.Time) *time.Time { return &t }

func TestCustomers_BuscaCaseInsensitive(t *testing.T) {
	list := []*entity.Customer{
		{Name: "João Silva", AccountNumber: "ACC-1001"},
		{Name: "Maria Oliveira", AccountNumber: "ACC-1002"},
	}

	got := filter.Customers(list, filter.CustomerFilter{Query: "joão"})
	require.Len(t, got, 1)
	assert.Equal(t, "João Silva", got[0].Name)

	// A busca também casa com o número de conta
	got = filter.Customers(list, filter.CustomerFilter{Query: "1002"})
	require.Len(t, got, 1)
	assert.Equal(t, "Maria Oliveira", got[0].Name)

	got = filter.Customers(list, filter.CustomerFilter{Query: "inexistente"})
	assert.Empty(t, got)
}

func TestCustomers_FiltroDeContrato(t *testing.T) {
	list := []*entity.Customer{
		{Name: "Com Contrato", Services: []*entity.Service{{Type: entity.ServiceMonitoring}}},
		{Name: "Sem Contrato"},
	}

	com := filter.Customers(list, filter.CustomerFilter{Contract: filter.ContractWith})
	require.Len(t, com, 1)
	assert.Equal(t, "Com Contrato", com[0].Name)

	sem := filter.Customers(list, filter.CustomerFilter{Contract: filter.ContractNone})
	require.Len(t, sem, 1)
	assert.Equal(t, "Sem Contrato", sem[0].Name)

	todos := filter.Customers(list, filter.CustomerFilter{Contract: filter.ContractAll})
	assert.Len(t, todos, 2)
}

func TestCustomers_PredicadosCombinamComE(t *testing.T) {
	list := []*entity.Customer{
		{Name: "João Silva", Services: []*entity.Service{{Type: entity.ServiceMonitoring}}},
		{Name: "João Souza"}, // casa a busca, mas não o contrato
	}

	got := filter.Customers(list, filter.CustomerFilter{
		Query:    "joão",
		Contract: filter.ContractWith,
	})

	require.Len(t, got, 1, "todos os predicados ativos devem valer ao mesmo tempo")
	assert.Equal(t, "João Silva", got[0].Name)
}

func TestBudgets_StatusComSentinelaTodos(t *testing.T) {
	list := []*entity.Budget{
		{AccountNumber: "QT-5001", Status: entity.BudgetOpen},
		{AccountNumber: "QT-5002", Status: entity.BudgetAccepted},
	}

	abertos := filter.Budgets(list, filter.BudgetFilter{Status: entity.BudgetOpen})
	require.Len(t, abertos, 1)
	assert.Equal(t, "QT-5001", abertos[0].AccountNumber)

	todos := filter.Budgets(list, filter.BudgetFilter{Status: filter.All})
	assert.Len(t, todos, 2, "Todos casa com qualquer status")

	vazio := filter.Budgets(list, filter.BudgetFilter{})
	assert.Len(t, vazio, 2, "status vazio tem o mesmo efeito de Todos")
}

func TestBudgets_IntervaloDeDatasInclusivo(t *testing.T) {
	list := []*entity.Budget{
		{AccountNumber: "QT-1", CreatedAt: ts(2023, 11, 20)},
		{AccountNumber: "QT-2", CreatedAt: ts(2023, 12, 5)},
		{AccountNumber: "QT-3", CreatedAt: ts(2024, 1, 10)},
	}

	got := filter.Budgets(list, filter.BudgetFilter{
		From: tsPtr(ts(2023, 11, 20)),
		To:   tsPtr(ts(2023, 12, 5)),
	})

	require.Len(t, got, 2, "os dois limites do intervalo são inclusivos")
	assert.Equal(t, "QT-1", got[0].AccountNumber)
	assert.Equal(t, "QT-2", got[1].AccountNumber)
}

func TestEvents_FiltroCombinado(t *testing.T) {
	list := []*entity.AppEvent{
		{Description: "Disparo de alarme", User: "Sistema", Severity: entity.SeverityCritical, Type: entity.EventSecurityAlert, Timestamp: ts(2024, 1, 1)},
		{Description: "Manutenção concluída", User: "Técnico Roberto", Severity: entity.SeveritySuccess, Type: entity.EventEquipmentMaintenance, Timestamp: ts(2024, 1, 2)},
		{Description: "Disparo de alarme - Zona 2", User: "Sistema", Severity: entity.SeverityCritical, Type: entity.EventSecurityAlert, Timestamp: ts(2024, 2, 1)},
	}

	got := filter.Events(list, filter.EventFilter{
		Query:    "disparo",
		Severity: entity.SeverityCritical,
		To:       tsPtr(ts(2024, 1, 15)),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Disparo de alarme", got[0].Description)
}

func TestEvents_BuscaPorUsuario(t *testing.T) {
	list := []*entity.AppEvent{
		{Description: "Manutenção concluída", User: "Técnico Roberto"},
		{Description: "Alteração de endereço", User: "Admin SecureTrack"},
	}

	got := filter.Events(list, filter.EventFilter{Query: "roberto"})
	require.Len(t, got, 1)
	assert.Equal(t, "Técnico Roberto", got[0].User)
}
