package usecase

import (
	"context"
	"time"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/ports"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

// InsightsFallback é a resposta exibida quando o provedor de IA falha ou
// demora demais. A geração de insights nunca propaga erro ao painel.
const InsightsFallback = "Não foi possível gerar insights no momento."

const insightsTimeout = 10 * time.Second

// InsightsUseCase gera a análise de negócio do painel a partir de um resumo
// da carteira, delegando o texto ao provedor de IA configurado.
type InsightsUseCase struct {
	customerRepo repository.CustomerRepository
	ai           ports.InsightsService
}

// NewInsightsUseCase constrói o caso de uso. ai pode ser nil quando nenhum
// provedor está configurado.
func NewInsightsUseCase(customerRepo repository.CustomerRepository, ai ports.InsightsService) *InsightsUseCase {
	return &InsightsUseCase{customerRepo: customerRepo, ai: ai}
}

// Generate monta o resumo da carteira e pede a análise ao provedor.
// Qualquer falha (provedor ausente, erro ou timeout) devolve o texto de
// fallback com Generated=false, nunca um erro HTTP.
func (uc *InsightsUseCase) Generate(ctx context.Context) (*dto.InsightsResponse, error) {
	customers, err := uc.customerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	summary := make([]dto.CustomerInsightDTO, 0, len(customers))
	for _, c := range customers {
		services := make([]string, 0, len(c.Services))
		for _, s := range c.Services {
			services = append(services, s.Type)
		}
		status := "N/A"
		if len(c.Services) > 0 {
			status = c.Services[0].Status
		}
		summary = append(summary, dto.CustomerInsightDTO{
			Name:           c.Name,
			Services:       services,
			EquipmentCount: len(c.Equipments),
			Status:         status,
		})
	}

	if uc.ai == nil {
		return &dto.InsightsResponse{Insights: InsightsFallback, Generated: false}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, insightsTimeout)
	defer cancel()

	text, err := uc.ai.GenerateBusinessInsights(ctx, summary)
	if err != nil || text == "" {
		return &dto.InsightsResponse{Insights: InsightsFallback, Generated: false}, nil
	}
	return &dto.InsightsResponse{Insights: text, Generated: true}, nil
}
