package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/domain"
	budgetcalc "github.com/securetrack/securetrack-api/internal/domain/budget"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
	"github.com/securetrack/securetrack-api/internal/domain/report"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

// validade padrão de uma proposta quando o formulário não informa data
const defaultValidityDays = 15

// BudgetUseCase casos de uso de propostas comerciais: criação/edição com
// totais derivados, filtros com estatísticas, troca de status, conversão em
// serviço, links de envio e exportação em PDF.
type BudgetUseCase struct {
	budgetRepo   repository.BudgetRepository
	customerRepo repository.CustomerRepository
	tx           TxRunner
	pdf          BudgetPDFGenerator
	sync         SyncNotifier
}

// NewBudgetUseCase constrói o caso de uso. pdf e sync podem ser nil.
func NewBudgetUseCase(
	budgetRepo repository.BudgetRepository,
	customerRepo repository.CustomerRepository,
	tx TxRunner,
	pdf BudgetPDFGenerator,
	sync SyncNotifier,
) *BudgetUseCase {
	return &BudgetUseCase{
		budgetRepo:   budgetRepo,
		customerRepo: customerRepo,
		tx:           tx,
		pdf:          pdf,
		sync:         sync,
	}
}

func (uc *BudgetUseCase) pulse() {
	if uc.sync != nil {
		uc.sync.Pulse()
	}
}

// Create registra uma nova proposta. Nome e e-mail do cliente e ao menos um
// item são obrigatórios; subtotal e total são sempre derivados no servidor.
func (uc *BudgetUseCase) Create(in dto.SaveBudgetRequest) (*dto.BudgetResponse, error) {
	if err := validateBudgetInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	validUntil, err := parseValidUntil(in.ValidUntil, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	accountNumber := strings.TrimSpace(in.AccountNumber)
	if accountNumber == "" {
		accountNumber = fmt.Sprintf("QT-%d", now.Unix()%100_000)
	}

	budget := &entity.Budget{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Items:         itemsFromRequest(in.Items),
		Discount:      in.Discount.Decimal,
		PaymentTerms:  in.PaymentTerms,
		ValidUntil:    validUntil,
		Status:        entity.BudgetOpen,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	budgetcalc.Recalculate(budget)
	if err := uc.budgetRepo.Create(budget); err != nil {
		return nil, err
	}
	uc.pulse()
	return toBudgetResponse(budget, time.Now()), nil
}

// Update edita uma proposta existente. Status e data de criação não mudam por
// esta operação; os valores derivados são recalculados.
func (uc *BudgetUseCase) Update(id string, in dto.SaveBudgetRequest) (*dto.BudgetResponse, error) {
	if err := validateBudgetInput(in); err != nil {
		return nil, err
	}
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	validUntil, err := parseValidUntil(in.ValidUntil, now)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if ref := strings.TrimSpace(in.AccountNumber); ref != "" {
		budget.AccountNumber = ref
	}
	budget.CustomerID = in.CustomerID
	budget.CustomerName = in.CustomerName
	budget.CustomerEmail = in.CustomerEmail
	budget.Items = itemsFromRequest(in.Items)
	budget.Discount = in.Discount.Decimal
	budget.PaymentTerms = in.PaymentTerms
	budget.ValidUntil = validUntil
	budget.Notes = in.Notes
	budget.UpdatedAt = now
	budgetcalc.Recalculate(budget)
	if err := uc.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	uc.pulse()
	return toBudgetResponse(budget, now), nil
}

// GetByID devolve a proposta com status de exibição calculado.
func (uc *BudgetUseCase) GetByID(id string) (*dto.BudgetResponse, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	return toBudgetResponse(budget, time.Now()), nil
}

// List devolve o subconjunto filtrado com as estatísticas do período
// (valor total, contagem e taxa de conversão — zero quando vazio).
func (uc *BudgetUseCase) List(f filter.BudgetFilter) (*dto.BudgetListResponse, error) {
	all, err := uc.budgetRepo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := filter.Budgets(all, f)
	stats := report.BudgetReport(filtered)
	now := time.Now()
	items := make([]dto.BudgetResponse, 0, len(filtered))
	for _, b := range filtered {
		items = append(items, *toBudgetResponse(b, now))
	}
	return &dto.BudgetListResponse{
		Items: items,
		Stats: dto.BudgetStatsResponse{
			TotalValue:     stats.TotalValue,
			Count:          stats.Count,
			ConversionRate: stats.ConversionRate,
		},
	}, nil
}

// SetStatus troca manualmente o status persistido. Expirado nunca é aceito
// como alvo: é um estado derivado da validade, não gravável.
func (uc *BudgetUseCase) SetStatus(id, status string) (*dto.BudgetResponse, error) {
	if !entity.ValidBudgetStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	budget.Status = status
	budget.UpdatedAt = time.Now()
	if err := uc.budgetRepo.Update(budget); err != nil {
		return nil, err
	}
	uc.pulse()
	return toBudgetResponse(budget, time.Now()), nil
}

// Convert transforma a proposta em um serviço do cliente vinculado: cria o
// serviço (Instalação, Pendente, preço = total da proposta) e marca a
// proposta como Aceita, atomicamente — ou as duas escritas valem, ou nenhuma.
// Proposta sem cliente vinculado ou com cliente inexistente falha sem mutação.
func (uc *BudgetUseCase) Convert(ctx context.Context, id string) (*dto.ConvertBudgetResponse, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	if budget.CustomerID == "" {
		return nil, domain.ErrBudgetNotLinked
	}

	var resp *dto.ConvertBudgetResponse
	err = uc.tx.Run(ctx, func(
		customerRepo repository.CustomerRepository,
		budgetRepo repository.BudgetRepository,
	) error {
		customer, err := customerRepo.GetByID(budget.CustomerID)
		if err != nil || customer == nil {
			return domain.ErrCustomerNotFound
		}

		now := time.Now()
		service := &entity.Service{
			ID:            uuid.New().String(),
			Type:          entity.ServiceInstallation,
			Status:        entity.ServicePending,
			StartDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			Price:         budget.Total,
			PaymentMethod: budget.PaymentTerms,
			Description:   budgetcalc.ConversionDescription(budget),
			ContractNotes: budget.Notes,
		}
		customer.Services = append([]*entity.Service{service}, customer.Services...)
		customer.UpdatedAt = now
		if err := customerRepo.Update(customer); err != nil {
			return err
		}

		// Idempotente: proposta já aceita permanece aceita.
		if budget.Status != entity.BudgetAccepted {
			budget.Status = entity.BudgetAccepted
			budget.UpdatedAt = now
			if err := budgetRepo.Update(budget); err != nil {
				return err
			}
		}

		resp = &dto.ConvertBudgetResponse{
			Budget:       *toBudgetResponse(budget, now),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Service:      toServiceResponse(service),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.pulse()
	return resp, nil
}

// WhatsAppLink monta o deep link wa.me com o resumo da proposta. O telefone
// vem do cliente vinculado (apenas dígitos); sem vínculo, o link fica sem
// destinatário, como no painel.
func (uc *BudgetUseCase) WhatsAppLink(id string) (*dto.WhatsAppLinkResponse, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	phone := ""
	if budget.CustomerID != "" {
		if customer, _ := uc.customerRepo.GetByID(budget.CustomerID); customer != nil {
			phone = onlyDigits(customer.Phone)
		}
	}

	message := fmt.Sprintf("Olá %s! Segue o resumo do seu orçamento na SecureTrack Pro:\n\n"+
		"📌 Proposta: %s\n"+
		"💰 Total: R$ %s\n"+
		"💳 Pagamento: %s\n"+
		"📅 Validade: %s\n\n"+
		"Ficamos à disposição para dúvidas!",
		budget.CustomerName,
		budget.AccountNumber,
		FormatMoneyBR(budget.Total),
		budget.PaymentTerms,
		budget.ValidUntil.Format(dto.DateLayout),
	)
	return &dto.WhatsAppLinkResponse{
		URL:     "https://wa.me/" + phone + "?text=" + url.QueryEscape(message),
		Phone:   phone,
		Message: message,
	}, nil
}

// SendEmail simula o envio da proposta por e-mail. Nenhuma resposta do
// destinatário é consumida.
func (uc *BudgetUseCase) SendEmail(id string) (*dto.EmailSendResponse, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	if budget.CustomerEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	return &dto.EmailSendResponse{Sent: true, To: budget.CustomerEmail}, nil
}

// ExportPDF gera a proposta em PDF.
func (uc *BudgetUseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	budget, err := uc.budgetRepo.GetByID(id)
	if err != nil || budget == nil {
		return nil, domain.ErrNotFound
	}
	if uc.pdf == nil {
		return nil, fmt.Errorf("pdf: gerador não configurado")
	}
	return uc.pdf.GenerateBudgetPDF(ctx, budget)
}

// ── Auxiliares ────────────────────────────────────────────────────────────────

func validateBudgetInput(in dto.SaveBudgetRequest) error {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerEmail) == "" {
		return domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func parseValidUntil(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.AddDate(0, 0, defaultValidityDays), nil
	}
	return time.Parse(dto.DateLayout, s)
}

func itemsFromRequest(in []dto.BudgetItemRequest) []*entity.BudgetItem {
	items := make([]*entity.BudgetItem, 0, len(in))
	for _, it := range in {
		items = append(items, &entity.BudgetItem{
			ID:          uuid.New().String(),
			Description: it.Description,
			Quantity:    it.Quantity.Decimal,
			UnitPrice:   it.UnitPrice.Decimal,
		})
	}
	return items
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatMoneyBR formata um decimal no padrão monetário brasileiro:
// milhar com ponto, centavos com vírgula (2.200,00).
func FormatMoneyBR(v decimal.Decimal) string {
	s := v.StringFixed(2) // ex: 2200.00
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

func toBudgetResponse(b *entity.Budget, now time.Time) *dto.BudgetResponse {
	resp := &dto.BudgetResponse{
		ID:            b.ID,
		AccountNumber: b.AccountNumber,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Items:         make([]dto.BudgetItemResponse, 0, len(b.Items)),
		Subtotal:      b.Subtotal,
		Discount:      b.Discount,
		Total:         b.Total,
		PaymentTerms:  b.PaymentTerms,
		ValidUntil:    b.ValidUntil.Format(dto.DateLayout),
		Status:        b.Status,
		DisplayStatus: b.DisplayStatus(now),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(dto.DateLayout),
	}
	for _, it := range b.Items {
		resp.Items = append(resp.Items, dto.BudgetItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return resp
}
