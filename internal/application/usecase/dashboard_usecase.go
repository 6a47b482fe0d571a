package usecase

import (
	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/domain/report"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

// entradas exibidas na prévia do relatório de garantias
const warrantyPreviewLimit = 5

// DashboardUseCase agregações read-only do painel. Nada aqui muta estado.
type DashboardUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(customerRepo repository.CustomerRepository) *DashboardUseCase {
	return &DashboardUseCase{customerRepo: customerRepo}
}

// GetSummary recalcula os contadores do topo do dashboard e a distribuição
// de serviços por tipo sobre a carteira atual.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	customers, err := uc.customerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	counts := report.Dashboard(customers)
	dist := report.ServiceTypeDistribution(customers)

	out := &dto.DashboardSummaryDTO{
		TotalCustomers:      counts.TotalCustomers,
		ActiveServices:      counts.ActiveServices,
		TotalEquipments:     counts.TotalEquipments,
		PendingPayments:     counts.PendingPayments,
		ServiceDistribution: make([]dto.ServiceTypeCountDTO, 0, len(dist)),
	}
	for _, tc := range dist {
		out.ServiceDistribution = append(out.ServiceDistribution, dto.ServiceTypeCountDTO{
			Type:  tc.Type,
			Count: tc.Count,
		})
	}
	return out, nil
}

// GetWarrantyReport monta a prévia do relatório de garantias: os primeiros
// equipamentos da carteira com o nome do cliente dono.
func (uc *DashboardUseCase) GetWarrantyReport() (*dto.WarrantyReportDTO, error) {
	customers, err := uc.customerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	entries := report.WarrantyPreview(customers, warrantyPreviewLimit)
	out := &dto.WarrantyReportDTO{Items: make([]dto.WarrantyItemDTO, 0, len(entries))}
	for _, entry := range entries {
		item := dto.WarrantyItemDTO{
			Name:   entry.Equipment.Name,
			Brand:  entry.Equipment.Brand,
			Model:  entry.Equipment.Model,
			Status: entry.Equipment.Status,
			Owner:  entry.OwnerName,
		}
		if !entry.Equipment.WarrantyUntil.IsZero() {
			item.WarrantyUntil = entry.Equipment.WarrantyUntil.Format(dto.DateLayout)
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
