package dto

import "github.com/shopspring/decimal"

// BudgetItemRequest linha de orçamento na entrada. Total nunca é aceito do
// cliente; é sempre recalculado como Quantity * UnitPrice.
type BudgetItemRequest struct {
	Description string       `json:"description"`
	Quantity    LooseDecimal `json:"quantity"`
	UnitPrice   LooseDecimal `json:"unit_price"`
}

// SaveBudgetRequest payload de criação/edição de proposta comercial.
// Subtotal e Total são derivados no servidor.
type SaveBudgetRequest struct {
	AccountNumber string              `json:"account_number"` // vazio = gerado (QT-<n>)
	CustomerID    string              `json:"customer_id"`    // vazio para lead
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Items         []BudgetItemRequest `json:"items"`
	Discount      LooseDecimal        `json:"discount"`
	PaymentTerms  string              `json:"payment_terms"`
	ValidUntil    string              `json:"valid_until"` // AAAA-MM-DD
	Notes         string              `json:"notes"`
}

// BudgetStatusRequest troca manual de status. Expirado é rejeitado: é um
// estado derivado, nunca gravável.
type BudgetStatusRequest struct {
	Status string `json:"status"`
}

// BudgetItemResponse linha de orçamento na resposta.
type BudgetItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// BudgetResponse proposta completa. Status é o persistido; DisplayStatus é o
// exibido (Expirado quando Em Aberto com validade vencida).
type BudgetResponse struct {
	ID            string               `json:"id"`
	AccountNumber string               `json:"account_number"`
	CustomerID    string               `json:"customer_id,omitempty"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	Items         []BudgetItemResponse `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Discount      decimal.Decimal      `json:"discount"`
	Total         decimal.Decimal      `json:"total"`
	PaymentTerms  string               `json:"payment_terms"`
	ValidUntil    string               `json:"valid_until"`
	Status        string               `json:"status"`
	DisplayStatus string               `json:"display_status"`
	Notes         string               `json:"notes,omitempty"`
	CreatedAt     string               `json:"created_at"`
}

// BudgetStatsResponse estatísticas do subconjunto filtrado.
type BudgetStatsResponse struct {
	TotalValue     decimal.Decimal `json:"total_value"`
	Count          int             `json:"count"`
	ConversionRate float64         `json:"conversion_rate"`
}

// BudgetListResponse listagem filtrada com estatísticas do período.
type BudgetListResponse struct {
	Items []BudgetResponse    `json:"items"`
	Stats BudgetStatsResponse `json:"stats"`
}

// ConvertBudgetResponse resultado da conversão em serviço.
type ConvertBudgetResponse struct {
	Budget       BudgetResponse  `json:"budget"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Service      ServiceResponse `json:"service"`
}

// WhatsAppLinkResponse deep link wa.me montado para a proposta.
type WhatsAppLinkResponse struct {
	URL     string `json:"url"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// EmailSendResponse resultado do envio (simulado) da proposta por e-mail.
type EmailSendResponse struct {
	Sent bool   `json:"sent"`
	To   string `json:"to"`
}
