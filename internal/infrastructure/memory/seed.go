package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/securetrack/securetrack-api/internal/domain/entity"
)

// Seed carrega o conjunto de demonstração: dois clientes com serviços,
// equipamentos e notas, duas propostas e o histórico inicial de eventos.
// Deve ser chamado uma única vez, antes do servidor aceitar requisições.
func Seed(store *Store) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()

	store.customers = []*entity.Customer{
		{
			ID:            "1",
			AccountNumber: "ACC-1001",
			Name:          "João Silva",
			Address:       "Av. Paulista, 1000 - São Paulo, SP",
			Phone:         "(11) 99999-8888",
			Email:         "joao@email.com",
			PaymentStatus: entity.PaymentUpToDate,
			CreatedAt:     day(2023, 1, 15),
			UpdatedAt:     day(2023, 2, 10),
			Notes: []*entity.Note{
				{ID: "n1", Text: "Cliente prefere contato via WhatsApp.", CreatedAt: day(2023, 1, 15)},
				{ID: "n2", Text: "Possui cão de guarda no quintal, atentar ao acesso técnico.", CreatedAt: day(2023, 2, 10)},
			},
			Services: []*entity.Service{
				{
					ID:            "s1",
					Type:          entity.ServiceMonitoring,
					Status:        entity.ServiceActive,
					StartDate:     day(2023, 1, 15),
					Price:         decimal.NewFromInt(150),
					PaymentMethod: "Boleto",
				},
			},
			Equipments: []*entity.Equipment{
				{
					ID:               "e1",
					Name:             "Painel de Alarme",
					Brand:            "Intelbras",
					Model:            "AMT 2018 E",
					Status:           entity.EquipmentOperational,
					InstallationDate: day(2023, 1, 15),
					WarrantyUntil:    day(2025, 1, 15),
					IsLeased:         false,
				},
				{
					ID:               "e2",
					Name:             "Sensor de Presença",
					Brand:            "JFL",
					Model:            "DX-400",
					Status:           entity.EquipmentOperational,
					InstallationDate: day(2023, 1, 15),
					WarrantyUntil:    day(2024, 1, 15),
					IsLeased:         true,
				},
			},
		},
		{
			ID:            "2",
			AccountNumber: "ACC-1002",
			Name:          "Maria Oliveira",
			Address:       "Rua das Flores, 450 - Curitiba, PR",
			Phone:         "(41) 98888-7777",
			Email:         "maria.o@email.com",
			PaymentStatus: entity.PaymentPending,
			CreatedAt:     day(2023, 5, 20),
			UpdatedAt:     day(2023, 12, 1),
			Notes: []*entity.Note{
				{ID: "n3", Text: "Solicitou revisão das câmeras para o próximo mês.", CreatedAt: day(2023, 12, 1)},
			},
			Services: []*entity.Service{
				{
					ID:            "s2",
					Type:          entity.ServiceMaintenance,
					Status:        entity.ServiceFinished,
					StartDate:     day(2024, 1, 10),
					EndDate:       datePtr(day(2024, 1, 12)),
					Price:         decimal.NewFromInt(250),
					PaymentMethod: "Pix",
				},
			},
			Equipments: []*entity.Equipment{
				{
					ID:               "e3",
					Name:             "Câmera IP",
					Brand:            "Hikvision",
					Model:            "DS-2CD1023G0E",
					Status:           entity.EquipmentNeedsMaintenance,
					InstallationDate: day(2023, 5, 20),
					WarrantyUntil:    day(2024, 5, 20),
					IsLeased:         false,
				},
			},
		},
	}

	store.budgets = []*entity.Budget{
		{
			ID:            "b1",
			AccountNumber: "QT-5001",
			CustomerName:  "Condomínio Solar",
			CustomerEmail: "contato@solar.com",
			Items: []*entity.BudgetItem{
				{
					ID:          "bi1",
					Description: "Instalação de Sistema de Monitoramento",
					Quantity:    decimal.NewFromInt(1),
					UnitPrice:   decimal.NewFromInt(1200),
					Total:       decimal.NewFromInt(1200),
				},
				{
					ID:          "bi2",
					Description: "Câmera IP Hikvision",
					Quantity:    decimal.NewFromInt(4),
					UnitPrice:   decimal.NewFromInt(280),
					Total:       decimal.NewFromInt(1120),
				},
			},
			Subtotal:     decimal.NewFromInt(2320),
			Discount:     decimal.NewFromInt(120),
			Total:        decimal.NewFromInt(2200),
			PaymentTerms: "3x no Boleto",
			ValidUntil:   day(2025, 12, 30),
			Status:       entity.BudgetOpen,
			CreatedAt:    day(2023, 11, 20),
			UpdatedAt:    day(2023, 11, 20),
		},
		{
			ID:            "b2",
			AccountNumber: "QT-5002",
			CustomerID:    "1",
			CustomerName:  "João Silva",
			CustomerEmail: "joao@email.com",
			Items: []*entity.BudgetItem{
				{
					ID:          "bi3",
					Description: "Manutenção Preventiva Semestral",
					Quantity:    decimal.NewFromInt(1),
					UnitPrice:   decimal.NewFromInt(250),
					Total:       decimal.NewFromInt(250),
				},
			},
			Subtotal:     decimal.NewFromInt(250),
			Discount:     decimal.Zero,
			Total:        decimal.NewFromInt(250),
			PaymentTerms: "Pix à vista",
			ValidUntil:   day(2024, 1, 15),
			Status:       entity.BudgetAccepted,
			CreatedAt:    day(2023, 12, 5),
			UpdatedAt:    day(2023, 12, 5),
		},
	}

	store.events = []*entity.AppEvent{
		{
			ID:          "ev1",
			Timestamp:   now,
			Type:        entity.EventSecurityAlert,
			Description: "Disparo de alarme - Zona 4 (Cozinha)",
			User:        "Sistema Monitoramento",
			Severity:    entity.SeverityCritical,
			Details:     "Alarme acionado no Condomínio Solar às 02:34 AM. Viaturas em deslocamento.",
		},
		{
			ID:          "ev2",
			Timestamp:   now.Add(-1 * time.Hour),
			Type:        entity.EventStatusChange,
			Description: `Status financeiro alterado para "Pendente"`,
			User:        "Admin SecureTrack",
			Severity:    entity.SeverityWarning,
			Details:     "Cliente Maria Oliveira teve o status alterado devido a atraso no boleto 456.",
		},
		{
			ID:          "ev3",
			Timestamp:   now.Add(-2 * time.Hour),
			Type:        entity.EventEquipmentMaintenance,
			Description: "Manutenção de Câmera IP concluída",
			User:        "Técnico Roberto",
			Severity:    entity.SeveritySuccess,
			Details:     "Substituição de conector RJ45 e realinhamento de lente.",
		},
		{
			ID:          "ev4",
			Timestamp:   now.Add(-24 * time.Hour),
			Type:        entity.EventCustomerInteraction,
			Description: "Nova proposta comercial enviada via WhatsApp",
			User:        "Vendedor Lucas",
			Severity:    entity.SeverityInfo,
			Details:     "Proposta QT-5003 enviada para o cliente João Silva.",
		},
		{
			ID:          "ev5",
			Timestamp:   now.Add(-48 * time.Hour),
			Type:        entity.EventDataModification,
			Description: "Alteração de endereço de cobrança",
			User:        "Admin SecureTrack",
			Severity:    entity.SeveritySuccess,
			Details:     "Endereço atualizado conforme solicitação do cliente via ticket #889.",
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	return &t
}
