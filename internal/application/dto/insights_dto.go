package dto

// CustomerInsightDTO é o resumo compacto de um cliente enviado ao modelo de
// linguagem: nome, tipos de serviço contratados, quantidade de equipamentos e
// o status do primeiro serviço ("N/A" quando não há serviços).
type CustomerInsightDTO struct {
	Name           string   `json:"name"`
	Services       []string `json:"services"`
	EquipmentCount int      `json:"equipmentCount"`
	Status         string   `json:"status"`
}

// InsightsResponse relatório gerado pela IA. Generated indica se o texto veio
// do modelo ou é a mensagem fixa de fallback.
type InsightsResponse struct {
	Insights  string `json:"insights"`
	Generated bool   `json:"generated"`
}
