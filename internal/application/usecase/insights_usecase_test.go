package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/infrastructure/memory"
)

// fakeInsights implementa o porto de IA com respostas controladas.
type fakeInsights struct {
	text    string
	err     error
	summary []dto.CustomerInsightDTO
}

func (f *fakeInsights) GenerateBusinessInsights(_ context.Context, customers []dto.CustomerInsightDTO) (string, error) {
	f.summary = customers
	return f.text, f.err
}

func insightsFixture(t *testing.T, ai *fakeInsights) *usecase.InsightsUseCase {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)
	if ai == nil {
		return usecase.NewInsightsUseCase(memory.NewCustomerRepository(store), nil)
	}
	return usecase.NewInsightsUseCase(memory.NewCustomerRepository(store), ai)
}

func TestInsights_ResumoDaCarteira(t *testing.T) {
	ai := &fakeInsights{text: "Relatório gerado."}
	uc := insightsFixture(t, ai)

	out, err := uc.Generate(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Generated)
	assert.Equal(t, "Relatório gerado.", out.Insights)

	require.Len(t, ai.summary, 2, "um resumo por cliente da carteira")
	joao := ai.summary[0]
	assert.Equal(t, "João Silva", joao.Name)
	assert.Equal(t, []string{"Monitoramento"}, joao.Services)
	assert.Equal(t, 2, joao.EquipmentCount)
	assert.Equal(t, "Ativo", joao.Status, "status do primeiro serviço do cliente")
}

func TestInsights_ClienteSemServicoUsaNA(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewCustomerRepository(store)
	ai := &fakeInsights{text: "ok"}
	uc := usecase.NewInsightsUseCase(repo, ai)

	custUC := usecase.NewCustomerUseCase(repo, nil)
	_, err := custUC.Create(dto.CreateCustomerRequest{Name: "Sem Serviço", Email: "s@s.com"})
	require.NoError(t, err)

	_, err = uc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, ai.summary, 1)
	assert.Equal(t, "N/A", ai.summary[0].Status)
}

func TestInsights_FalhaDoProvedorViraFallback(t *testing.T) {
	uc := insightsFixture(t, &fakeInsights{err: errors.New("quota excedida")})

	out, err := uc.Generate(context.Background())
	require.NoError(t, err, "falha do provedor nunca vira erro HTTP")
	assert.False(t, out.Generated)
	assert.Equal(t, usecase.InsightsFallback, out.Insights)
}

func TestInsights_SemProvedorConfigurado(t *testing.T) {
	uc := insightsFixture(t, nil)

	out, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Generated)
	assert.Equal(t, usecase.InsightsFallback, out.Insights)
}

func TestInsights_RespostaVaziaViraFallback(t *testing.T) {
	uc := insightsFixture(t, &fakeInsights{text: ""})

	out, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Generated)
	assert.Equal(t, usecase.InsightsFallback, out.Insights)
}
