package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/usecase"
)

// AddressHandler trata a consulta de endereço por CEP.
type AddressHandler struct {
	uc *usecase.AddressUseCase
}

// NewAddressHandler constrói o handler.
func NewAddressHandler(uc *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Lookup busca o endereço do CEP. CEP malformado responde 400; CEP não
// encontrado responde 200 com found=false.
func (h *AddressHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.Context(), c.Params("cep"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
