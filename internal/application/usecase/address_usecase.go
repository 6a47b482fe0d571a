package usecase

import (
	"context"
	"strings"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/ports"
	"github.com/securetrack/securetrack-api/internal/domain"
)

// AddressUseCase consulta de endereço por CEP para preenchimento do
// formulário de clientes. A falha do provedor nunca vira erro: devolve
// Found=false e o formulário segue com preenchimento manual.
type AddressUseCase struct {
	lookup ports.AddressLookup
}

// NewAddressUseCase constrói o caso de uso. lookup pode ser nil.
func NewAddressUseCase(lookup ports.AddressLookup) *AddressUseCase {
	return &AddressUseCase{lookup: lookup}
}

// Lookup busca o endereço do CEP informado. Aceita o CEP com ou sem hífen;
// menos de 8 dígitos é entrada inválida.
func (uc *AddressUseCase) Lookup(ctx context.Context, cep string) (*dto.AddressDTO, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(cep), "-", "")
	if len(digits) != 8 {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, domain.ErrInvalidInput
		}
	}
	if uc.lookup == nil {
		return &dto.AddressDTO{CEP: digits, Found: false}, nil
	}
	addr, err := uc.lookup.Lookup(ctx, digits)
	if err != nil || addr == nil {
		return &dto.AddressDTO{CEP: digits, Found: false}, nil
	}
	return addr, nil
}
