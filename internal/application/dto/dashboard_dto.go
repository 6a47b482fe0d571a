package dto

import "github.com/shopspring/decimal"

// ServiceTypeCountDTO contagem de serviços por tipo para o gráfico.
type ServiceTypeCountDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DashboardSummaryDTO resumo do topo do dashboard, recalculado a cada consulta.
type DashboardSummaryDTO struct {
	TotalCustomers      int                   `json:"total_customers"`
	ActiveServices      int                   `json:"active_services"`
	TotalEquipments     int                   `json:"total_equipments"`
	PendingPayments     int                   `json:"pending_payments"`
	ServiceDistribution []ServiceTypeCountDTO `json:"service_distribution"`
}

// WarrantyItemDTO entrada do relatório de garantias (equipamento + dono).
type WarrantyItemDTO struct {
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Status        string `json:"status"`
	WarrantyUntil string `json:"warranty_until"`
	Owner         string `json:"owner"`
}

// WarrantyReportDTO prévia do relatório de garantias.
type WarrantyReportDTO struct {
	Items []WarrantyItemDTO `json:"items"`
}

// CatalogItemDTO entrada do catálogo estático de equipamentos.
type CatalogItemDTO struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	BasePrice decimal.Decimal `json:"base_price"`
}
