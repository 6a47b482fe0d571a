package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	"github.com/securetrack/securetrack-api/internal/domain/filter"
)

// CustomerHandler trata as rotas de clientes e seus subrecursos
// (serviços, equipamentos, notas e status financeiro).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create cadastra um novo cliente.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List devolve a carteira filtrada por busca e presença de contrato.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	f := filter.CustomerFilter{
		Query:    c.Query("q"),
		Contract: c.Query("contract", filter.ContractAll),
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve o agregado completo do cliente.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update edita os dados cadastrais do cliente.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetPaymentStatus troca o status financeiro. Troca para o mesmo status é
// no-op; troca efetiva gera a nota de sistema correspondente.
func (h *CustomerHandler) SetPaymentStatus(c *fiber.Ctx) error {
	var in dto.PaymentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetPaymentStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Notas ────────────────────────────────────────────────────────────────────

// AddNote adiciona uma nota manual ao cliente.
func (h *CustomerHandler) AddNote(c *fiber.Ctx) error {
	var in dto.NoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddNote(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteNote remove uma nota manual. Notas de sistema respondem 403.
func (h *CustomerHandler) DeleteNote(c *fiber.Ctx) error {
	out, err := h.uc.DeleteNote(c.Params("id"), c.Params("noteId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Equipamentos ─────────────────────────────────────────────────────────────

// AddEquipment instala um equipamento no cliente.
func (h *CustomerHandler) AddEquipment(c *fiber.Ctx) error {
	var in dto.EquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddEquipment(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEquipment substitui os dados de um equipamento instalado.
func (h *CustomerHandler) UpdateEquipment(c *fiber.Ctx) error {
	var in dto.EquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateEquipment(c.Params("id"), c.Params("equipmentId"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteEquipment remove um equipamento do cliente.
func (h *CustomerHandler) DeleteEquipment(c *fiber.Ctx) error {
	out, err := h.uc.DeleteEquipment(c.Params("id"), c.Params("equipmentId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Serviços ─────────────────────────────────────────────────────────────────

// AddService contrata um serviço; entra sempre como Aguardando Autorização.
func (h *CustomerHandler) AddService(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddService(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApproveService autoriza um serviço pendente de autorização.
func (h *CustomerHandler) ApproveService(c *fiber.Ctx) error {
	out, err := h.uc.ApproveService(c.Params("id"), c.Params("serviceId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetServiceStatus troca o status de um serviço contratado.
func (h *CustomerHandler) SetServiceStatus(c *fiber.Ctx) error {
	var in dto.ServiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetServiceStatus(c.Params("id"), c.Params("serviceId"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteService remove um serviço do cliente.
func (h *CustomerHandler) DeleteService(c *fiber.Ctx) error {
	out, err := h.uc.DeleteService(c.Params("id"), c.Params("serviceId"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
