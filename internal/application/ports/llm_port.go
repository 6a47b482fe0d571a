package ports

import (
	"context"

	"github.com/securetrack/securetrack-api/internal/application/dto"
)

// InsightsService define o porto de saída para o serviço de IA generativa.
// Qualquer adaptador (Gemini, Anthropic, mock) deve implementar esta
// interface; a camada de aplicação só conhece este contrato.
type InsightsService interface {
	// GenerateBusinessInsights envia o resumo compacto da carteira de clientes
	// e devolve um relatório curto em português (até ~200 palavras).
	// O contexto deve levar timeout para não bloquear em chamadas externas.
	GenerateBusinessInsights(ctx context.Context, customers []dto.CustomerInsightDTO) (string, error)
}

// AddressLookup define o porto de consulta de endereço por CEP.
type AddressLookup interface {
	// Lookup consulta um CEP de 8 dígitos. Falhas do serviço externo ou CEP
	// inexistente retornam Found=false com campos vazios, sem erro duro.
	Lookup(ctx context.Context, cep string) (*dto.AddressDTO, error)
}
