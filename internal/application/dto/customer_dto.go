package dto

import "github.com/shopspring/decimal"

// DateLayout é o formato de data usado nos formulários e respostas (dia calendário).
const DateLayout = "2006-01-02"

// CreateCustomerRequest payload de cadastro de cliente.
// City e State vêm pré-preenchidos pela consulta de CEP; quando presentes, o
// endereço completo é montado no servidor como "logradouro, cidade - UF".
type CreateCustomerRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"` // vazio = gerado (ACC-<n>)
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Notes         string `json:"notes"` // nota inicial opcional
}

// UpdateCustomerRequest payload de edição do perfil do cliente.
type UpdateCustomerRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Notes         string `json:"notes"` // se novo e não vazio, vira a primeira nota
}

// PaymentStatusRequest troca de status financeiro.
type PaymentStatusRequest struct {
	Status string `json:"status"`
}

// NoteRequest criação de nota manual.
type NoteRequest struct {
	Text string `json:"text"`
}

// EquipmentRequest criação/substituição de equipamento (formulário completo).
type EquipmentRequest struct {
	Name             string `json:"name"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Status           string `json:"status"`
	InstallationDate string `json:"installation_date"` // AAAA-MM-DD
	WarrantyUntil    string `json:"warranty_until"`    // AAAA-MM-DD
	IsLeased         bool   `json:"is_leased"`
}

// ServiceRequest criação de serviço. O status nunca vem do cliente: todo
// serviço criado pelo formulário nasce em Aguardando Autorização.
type ServiceRequest struct {
	Type          string       `json:"type"`
	StartDate     string       `json:"start_date"`   // AAAA-MM-DD
	EndDate       string       `json:"end_date"`     // opcional
	RenewalDate   string       `json:"renewal_date"` // opcional
	Price         LooseDecimal `json:"price"`
	PaymentMethod string       `json:"payment_method"`
	Description   string       `json:"description"`
	ContractNotes string       `json:"contract_notes"`
}

// ServiceStatusRequest troca manual de status de serviço.
type ServiceStatusRequest struct {
	Status string `json:"status"`
}

// NoteResponse nota na resposta.
type NoteResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsSystem  bool   `json:"is_system"`
	CreatedAt string `json:"created_at"`
}

// EquipmentResponse equipamento na resposta.
type EquipmentResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	Status           string `json:"status"`
	InstallationDate string `json:"installation_date"`
	WarrantyUntil    string `json:"warranty_until"`
	IsLeased         bool   `json:"is_leased"`
}

// ServiceResponse serviço na resposta.
type ServiceResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date,omitempty"`
	RenewalDate   string          `json:"renewal_date,omitempty"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description,omitempty"`
	ContractNotes string          `json:"contract_notes,omitempty"`
}

// CustomerResponse cliente completo na resposta (agregado inteiro).
type CustomerResponse struct {
	ID            string              `json:"id"`
	AccountNumber string              `json:"account_number"`
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	Phone         string              `json:"phone"`
	Email         string              `json:"email"`
	PaymentStatus string              `json:"payment_status"`
	Services      []ServiceResponse   `json:"services"`
	Equipments    []EquipmentResponse `json:"equipments"`
	Notes         []NoteResponse      `json:"notes"`
	CreatedAt     string              `json:"created_at"`
}

// CustomerListResponse listagem filtrada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Total int                `json:"total"`
}
