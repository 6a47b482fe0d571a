package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
	"github.com/securetrack/securetrack-api/internal/infrastructure/memory"
)

// budgetFixture monta o caso de uso de propostas sobre o estado demo.
func budgetFixture(t *testing.T) (*usecase.BudgetUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)
	uc := usecase.NewBudgetUseCase(
		memory.NewBudgetRepository(store),
		memory.NewCustomerRepository(store),
		memory.NewTxRunner(store),
		nil,
		nil,
	)
	return uc, store
}

func saveRequest() dto.SaveBudgetRequest {
	return dto.SaveBudgetRequest{
		CustomerName:  "Condomínio Solar",
		CustomerEmail: "sindico@solar.com",
		Items: []dto.BudgetItemRequest{
			{Description: "Central de alarme", Quantity: looseNum("1"), UnitPrice: looseNum("1200")},
			{Description: "Sensor de presença", Quantity: looseNum("4"), UnitPrice: looseNum("280")},
		},
		Discount:     looseNum("120"),
		PaymentTerms: "3x no Boleto",
		ValidUntil:   "2030-12-30",
	}
}

func looseNum(s string) dto.LooseDecimal {
	var ld dto.LooseDecimal
	_ = ld.UnmarshalJSON([]byte(s))
	return ld
}

func TestBudgetCreate_TotaisDerivadosNoServidor(t *testing.T) {
	uc, _ := budgetFixture(t)

	out, err := uc.Create(saveRequest())
	require.NoError(t, err)

	assert.Equal(t, "2320", out.Subtotal.String())
	assert.Equal(t, "2200", out.Total.String())
	assert.Equal(t, "1120", out.Items[1].Total.String(), "total da linha = qtd × unitário")
	assert.Equal(t, entity.BudgetOpen, out.Status)
	assert.True(t, strings.HasPrefix(out.AccountNumber, "QT-"),
		"referência ausente deve ser gerada")
}

func TestBudgetCreate_Validacao(t *testing.T) {
	uc, _ := budgetFixture(t)

	in := saveRequest()
	in.Items = nil
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ao menos um item é obrigatório")

	in = saveRequest()
	in.CustomerEmail = ""
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBudgetSetStatus_ExpiradoNaoGravavel(t *testing.T) {
	uc, _ := budgetFixture(t)

	_, err := uc.SetStatus("b1", entity.BudgetExpired)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.SetStatus("b1", entity.BudgetRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetRejected, out.Status)
}

func TestBudgetConvert_CriaServicoEAceita(t *testing.T) {
	uc, store := budgetFixture(t)
	customerUC := usecase.NewCustomerUseCase(memory.NewCustomerRepository(store), nil)

	// b2 está vinculado ao cliente "1" (João Silva) no estado demo
	out, err := uc.Convert(context.Background(), "b2")
	require.NoError(t, err)

	assert.Equal(t, "1", out.CustomerID)
	assert.Equal(t, entity.BudgetAccepted, out.Budget.Status)
	assert.Equal(t, entity.ServiceInstallation, out.Service.Type)
	assert.Equal(t, entity.ServicePending, out.Service.Status)
	assert.Equal(t, "Pix à vista", out.Service.PaymentMethod)
	assert.True(t, strings.HasPrefix(out.Service.Description, "[CONVERTIDO] Orçamento QT-5002."))

	customer, err := customerUC.GetByID("1")
	require.NoError(t, err)
	require.NotEmpty(t, customer.Services)
	assert.Equal(t, out.Service.ID, customer.Services[0].ID,
		"o serviço convertido entra no topo da lista")
	assert.True(t, customer.Services[0].Price.Equal(out.Budget.Total),
		"preço do serviço = total da proposta")
}

func TestBudgetConvert_Idempotente(t *testing.T) {
	uc, store := budgetFixture(t)
	customerUC := usecase.NewCustomerUseCase(memory.NewCustomerRepository(store), nil)

	_, err := uc.Convert(context.Background(), "b2")
	require.NoError(t, err)
	_, err = uc.Convert(context.Background(), "b2")
	require.NoError(t, err, "converter proposta já aceita não é erro")

	customer, err := customerUC.GetByID("1")
	require.NoError(t, err)

	converted := 0
	for _, s := range customer.Services {
		if strings.HasPrefix(s.Description, "[CONVERTIDO]") {
			converted++
		}
	}
	assert.Equal(t, 2, converted, "cada conversão cria seu próprio serviço")
}

func TestBudgetConvert_SemClienteVinculado(t *testing.T) {
	uc, _ := budgetFixture(t)

	// b1 é um lead sem cliente cadastrado
	_, err := uc.Convert(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrBudgetNotLinked)

	out, err := uc.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetOpen, out.Status, "falha de conversão não muda a proposta")
}

func TestBudgetConvert_ClienteInexistenteReverte(t *testing.T) {
	uc, _ := budgetFixture(t)

	in := saveRequest()
	in.CustomerID = "999"
	created, err := uc.Create(in)
	require.NoError(t, err)

	_, err = uc.Convert(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BudgetOpen, out.Status, "nada é gravado quando o cliente não existe")
}

func TestBudgetWhatsAppLink_TelefoneSomenteDigitos(t *testing.T) {
	uc, _ := budgetFixture(t)

	out, err := uc.WhatsAppLink("b2")
	require.NoError(t, err)

	assert.Equal(t, "11999998888", out.Phone, "telefone do cliente vinculado sem máscara")
	assert.True(t, strings.HasPrefix(out.URL, "https://wa.me/11999998888?text="))
	assert.Contains(t, out.Message, "João Silva")
	assert.Contains(t, out.Message, "R$ 250,00")
}

func TestBudgetWhatsAppLink_LeadSemDestinatario(t *testing.T) {
	uc, _ := budgetFixture(t)

	out, err := uc.WhatsAppLink("b1")
	require.NoError(t, err)

	assert.Empty(t, out.Phone)
	assert.Contains(t, out.Message, "R$ 2.200,00", "total no formato monetário brasileiro")
}

func TestBudgetSendEmail_ExigeEmail(t *testing.T) {
	uc, _ := budgetFixture(t)

	out, err := uc.SendEmail("b1")
	require.NoError(t, err)
	assert.True(t, out.Sent)
	assert.Equal(t, "contato@solar.com", out.To)

	_, err = uc.SendEmail("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBudgetList_EstatisticasDoSubconjunto(t *testing.T) {
	uc, _ := budgetFixture(t)

	out, err := uc.List(filter.BudgetFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Stats.Count)
	assert.Equal(t, "2450", out.Stats.TotalValue.String(), "2200 + 250")
	assert.InDelta(t, 50.0, out.Stats.ConversionRate, 0.001, "1 aceita em 2")
}

func TestFormatMoneyBR(t *testing.T) {
	assert.Equal(t, "2.200,00", usecase.FormatMoneyBR(decimal.RequireFromString("2200")))
	assert.Equal(t, "1.234.567,89", usecase.FormatMoneyBR(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "0,50", usecase.FormatMoneyBR(decimal.RequireFromString("0.5")))
	assert.Equal(t, "-120,00", usecase.FormatMoneyBR(decimal.RequireFromString("-120")))
}
