package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/domain"
	"github.com/securetrack/securetrack-api/internal/domain/entity"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
	"github.com/securetrack/securetrack-api/internal/domain/repository"
)

// CustomerUseCase casos de uso do agregado de cliente: cadastro, perfil,
// status financeiro (com nota de sistema), notas, equipamentos e o fluxo de
// autorização de serviços. Toda mutação substitui o agregado inteiro.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	sync SyncNotifier
}

// NewCustomerUseCase constrói o caso de uso. sync pode ser nil (sem indicador).
func NewCustomerUseCase(repo repository.CustomerRepository, sync SyncNotifier) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, sync: sync}
}

func (uc *CustomerUseCase) pulse() {
	if uc.sync != nil {
		uc.sync.Pulse()
	}
}

// Create cadastra um cliente. Nome e e-mail são obrigatórios; o número de
// conta é gerado quando ausente e deve ser único no conjunto.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	accountNumber := strings.TrimSpace(in.AccountNumber)
	if accountNumber == "" {
		accountNumber = fmt.Sprintf("ACC-%d", now.Unix()%1_000_000)
	}
	if existing, _ := uc.repo.GetByAccountNumber(accountNumber); existing != nil {
		return nil, domain.ErrDuplicateAccount
	}

	customer := &entity.Customer{
		ID:            uuid.New().String(),
		AccountNumber: accountNumber,
		Name:          in.Name,
		Address:       composeAddress(in.Address, in.City, in.State),
		Phone:         in.Phone,
		Email:         in.Email,
		PaymentStatus: entity.PaymentUpToDate,
		Services:      []*entity.Service{},
		Equipments:    []*entity.Equipment{},
		Notes:         []*entity.Note{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if text := strings.TrimSpace(in.Notes); text != "" {
		customer.Notes = []*entity.Note{{
			ID:        uuid.New().String(),
			Text:      text,
			CreatedAt: now,
		}}
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// Update edita o perfil do cliente. Uma nota nova no formulário (diferente da
// primeira nota atual) é inserida no início da lista.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	accountNumber := strings.TrimSpace(in.AccountNumber)
	if accountNumber == "" {
		accountNumber = customer.AccountNumber
	}
	if existing, _ := uc.repo.GetByAccountNumber(accountNumber); existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicateAccount
	}

	now := time.Now()
	customer.AccountNumber = accountNumber
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	if in.City != "" || in.State != "" {
		customer.Address = composeAddress(in.Address, in.City, in.State)
	} else if in.Address != "" {
		customer.Address = in.Address
	}
	if text := strings.TrimSpace(in.Notes); text != "" {
		current := ""
		if len(customer.Notes) > 0 {
			current = customer.Notes[0].Text
		}
		if text != current {
			customer.Notes = prependNote(customer.Notes, &entity.Note{
				ID:        uuid.New().String(),
				Text:      text,
				CreatedAt: now,
			})
		}
	}
	customer.UpdatedAt = now
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// GetByID devolve o agregado completo do cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(customer), nil
}

// List devolve o subconjunto de clientes que satisfaz o filtro.
func (uc *CustomerUseCase) List(f filter.CustomerFilter) (*dto.CustomerListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := filter.Customers(all, f)
	items := make([]dto.CustomerResponse, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{Items: items, Total: len(items)}, nil
}

// SetPaymentStatus troca o status financeiro do cliente. A troca e a nota de
// sistema que a documenta são aplicadas como uma única atualização do
// agregado. Status igual ao atual é no-op: nenhuma nota, nenhuma mutação.
func (uc *CustomerUseCase) SetPaymentStatus(id string, status string) (*dto.CustomerResponse, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if customer.PaymentStatus == status {
		return toCustomerResponse(customer), nil
	}

	now := time.Now()
	systemNote := &entity.Note{
		ID: uuid.New().String(),
		Text: fmt.Sprintf(`%s Status financeiro alterado de "%s" para "%s".`,
			entity.SystemNoteMarker, customer.PaymentStatus, status),
		CreatedAt: now,
	}
	customer.PaymentStatus = status
	customer.Notes = prependNote(customer.Notes, systemNote)
	customer.UpdatedAt = now
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// AddNote insere uma nota manual no início da lista.
func (uc *CustomerUseCase) AddNote(id string, in dto.NoteRequest) (*dto.CustomerResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	customer.Notes = prependNote(customer.Notes, &entity.Note{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now(),
	})
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// DeleteNote remove uma nota manual. Notas de sistema não são removíveis.
func (uc *CustomerUseCase) DeleteNote(id, noteID string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	note := customer.FindNote(noteID)
	if note == nil {
		return nil, domain.ErrNotFound
	}
	if note.IsSystem() {
		return nil, domain.ErrForbidden
	}
	kept := make([]*entity.Note, 0, len(customer.Notes)-1)
	for _, n := range customer.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	customer.Notes = kept
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// AddEquipment cadastra um equipamento no endereço do cliente.
func (uc *CustomerUseCase) AddEquipment(id string, in dto.EquipmentRequest) (*dto.CustomerResponse, error) {
	equip, err := equipmentFromRequest(in)
	if err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	equip.ID = uuid.New().String()
	customer.Equipments = append(customer.Equipments, equip)
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// UpdateEquipment substitui integralmente os dados de um equipamento.
func (uc *CustomerUseCase) UpdateEquipment(id, equipmentID string, in dto.EquipmentRequest) (*dto.CustomerResponse, error) {
	replacement, err := equipmentFromRequest(in)
	if err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	current := customer.FindEquipment(equipmentID)
	if current == nil {
		return nil, domain.ErrNotFound
	}
	replacement.ID = current.ID
	*current = *replacement
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// DeleteEquipment remove um equipamento do cliente.
func (uc *CustomerUseCase) DeleteEquipment(id, equipmentID string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if customer.FindEquipment(equipmentID) == nil {
		return nil, domain.ErrNotFound
	}
	kept := make([]*entity.Equipment, 0, len(customer.Equipments)-1)
	for _, e := range customer.Equipments {
		if e.ID != equipmentID {
			kept = append(kept, e)
		}
	}
	customer.Equipments = kept
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// AddService cria um serviço para o cliente. Todo serviço criado por
// formulário nasce em Aguardando Autorização; comodato tem preço zero.
func (uc *CustomerUseCase) AddService(id string, in dto.ServiceRequest) (*dto.CustomerResponse, error) {
	if !entity.ValidServiceType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := parseDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	endDate, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	renewalDate, err := parseOptionalDate(in.RenewalDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	price := in.Price.Decimal
	if in.Type == entity.ServiceLease {
		price = decimal.Zero
	}
	service := &entity.Service{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Status:        entity.ServiceAwaitingApproval,
		StartDate:     startDate,
		EndDate:       endDate,
		RenewalDate:   renewalDate,
		Price:         price,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		ContractNotes: in.ContractNotes,
	}
	customer.Services = append([]*entity.Service{service}, customer.Services...)
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// ApproveService autoriza um serviço pendente de aprovação, ativando-o.
func (uc *CustomerUseCase) ApproveService(id, serviceID string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	service := customer.FindService(serviceID)
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if service.Status != entity.ServiceAwaitingApproval {
		return nil, domain.ErrConflict
	}
	service.Status = entity.ServiceActive
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// SetServiceStatus troca manualmente o status de um serviço. Qualquer status
// válido é alcançável a partir de qualquer outro.
func (uc *CustomerUseCase) SetServiceStatus(id, serviceID, status string) (*dto.CustomerResponse, error) {
	if !entity.ValidServiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	service := customer.FindService(serviceID)
	if service == nil {
		return nil, domain.ErrNotFound
	}
	service.Status = status
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// DeleteService remove o serviço em definitivo. A confirmação em duas etapas
// acontece no painel; esta chamada é a ação já confirmada. Não gera nota nem
// evento no histórico.
func (uc *CustomerUseCase) DeleteService(id, serviceID string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil || customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	if customer.FindService(serviceID) == nil {
		return nil, domain.ErrNotFound
	}
	kept := make([]*entity.Service, 0, len(customer.Services)-1)
	for _, s := range customer.Services {
		if s.ID != serviceID {
			kept = append(kept, s)
		}
	}
	customer.Services = kept
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	uc.pulse()
	return toCustomerResponse(customer), nil
}

// ── Auxiliares ────────────────────────────────────────────────────────────────

func prependNote(notes []*entity.Note, n *entity.Note) []*entity.Note {
	return append([]*entity.Note{n}, notes...)
}

// composeAddress monta o endereço completo "logradouro, cidade - UF" quando
// cidade/UF vieram da consulta de CEP.
func composeAddress(address, city, state string) string {
	full := address
	if city != "" {
		full += ", " + city
	}
	if state != "" {
		full += " - " + state
	}
	return full
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dto.DateLayout)
}

func equipmentFromRequest(in dto.EquipmentRequest) (*entity.Equipment, error) {
	if strings.TrimSpace(in.Name) == "" || !entity.ValidEquipmentStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	installation, err := parseDate(in.InstallationDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	warranty, err := parseDate(in.WarrantyUntil)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Equipment{
		Name:             in.Name,
		Brand:            in.Brand,
		Model:            in.Model,
		Status:           in.Status,
		InstallationDate: installation,
		WarrantyUntil:    warranty,
		IsLeased:         in.IsLeased,
	}, nil
}

func toServiceResponse(s *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:            s.ID,
		Type:          s.Type,
		Status:        s.Status,
		StartDate:     s.StartDate.Format(dto.DateLayout),
		EndDate:       formatOptionalDate(s.EndDate),
		RenewalDate:   formatOptionalDate(s.RenewalDate),
		Price:         s.Price,
		PaymentMethod: s.PaymentMethod,
		Description:   s.Description,
		ContractNotes: s.ContractNotes,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:            c.ID,
		AccountNumber: c.AccountNumber,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		PaymentStatus: c.PaymentStatus,
		Services:      make([]dto.ServiceResponse, 0, len(c.Services)),
		Equipments:    make([]dto.EquipmentResponse, 0, len(c.Equipments)),
		Notes:         make([]dto.NoteResponse, 0, len(c.Notes)),
		CreatedAt:     c.CreatedAt.Format(dto.DateLayout),
	}
	for _, s := range c.Services {
		resp.Services = append(resp.Services, toServiceResponse(s))
	}
	for _, e := range c.Equipments {
		resp.Equipments = append(resp.Equipments, dto.EquipmentResponse{
			ID:               e.ID,
			Name:             e.Name,
			Brand:            e.Brand,
			Model:            e.Model,
			Status:           e.Status,
			InstallationDate: e.InstallationDate.Format(dto.DateLayout),
			WarrantyUntil:    e.WarrantyUntil.Format(dto.DateLayout),
			IsLeased:         e.IsLeased,
		})
	}
	for _, n := range c.Notes {
		resp.Notes = append(resp.Notes, dto.NoteResponse{
			ID:        n.ID,
			Text:      n.Text,
			IsSystem:  n.IsSystem(),
			CreatedAt: n.CreatedAt.Format(dto.DateLayout),
		})
	}
	return resp
}
