package dto

import "github.com/shopspring/decimal"

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LooseDecimal é um decimal tolerante na entrada: valores não parseáveis
// (strings malformadas, null) viram zero em vez de rejeitar o request,
// espelhando o comportamento dos formulários do painel.
type LooseDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON aceita número ou string numérica; qualquer outra coisa vira zero.
func (d *LooseDecimal) UnmarshalJSON(data []byte) error {
	var inner decimal.Decimal
	if err := inner.UnmarshalJSON(data); err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = inner
	return nil
}

// FromDecimal embrulha um decimal em LooseDecimal (útil em testes e seeds).
func FromDecimal(v decimal.Decimal) LooseDecimal {
	return LooseDecimal{Decimal: v}
}
