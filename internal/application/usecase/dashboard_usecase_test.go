package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/infrastructure/memory"
)

func dashboardFixture(t *testing.T) *usecase.DashboardUseCase {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)
	return usecase.NewDashboardUseCase(memory.NewCustomerRepository(store))
}

func TestDashboardSummary_ContadoresDaCarteira(t *testing.T) {
	uc := dashboardFixture(t)

	out, err := uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalCustomers)
	assert.Equal(t, 1, out.ActiveServices, "só o monitoramento do João está Ativo")
	assert.Equal(t, 3, out.TotalEquipments)
	assert.Equal(t, 1, out.PendingPayments, "pendente = todo status diferente de Em dia")

	// A distribuição cobre todos os tipos, com zero para os ausentes
	require.Len(t, out.ServiceDistribution, len(entity.ServiceTypes))
	byType := map[string]int{}
	for _, d := range out.ServiceDistribution {
		byType[d.Type] = d.Count
	}
	assert.Equal(t, 1, byType[entity.ServiceMonitoring])
	assert.Equal(t, 1, byType[entity.ServiceMaintenance])
	assert.Equal(t, 0, byType[entity.ServiceInstallation])
}

func TestWarrantyReport_PreviaComDono(t *testing.T) {
	uc := dashboardFixture(t)

	out, err := uc.GetWarrantyReport()
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	first := out.Items[0]
	assert.Equal(t, "João Silva", first.Owner)
	assert.Equal(t, "2025-01-15", first.WarrantyUntil)
}
