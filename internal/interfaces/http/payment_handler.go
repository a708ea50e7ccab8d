package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
)

// PaymentHandler maneja pagos aplicados y programados.
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Pagos de una cuenta, más recientes primero
// @Tags         payments
// @Produce      json
// @Param        debtorId  query  string  true  "ID de la cuenta"
// @Success      200       {array}   dto.PaymentResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	debtorID := c.Query("debtorId")
	if debtorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debtor ID required"})
	}
	out, err := h.uc.ListByDebtor(c.UserContext(), GetCompanyID(c), debtorID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// CreateScheduled godoc
// @Summary      Programar pago futuro
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScheduledPaymentRequest  true  "Datos del pago programado"
// @Success      201   {object}  dto.ScheduledPaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scheduled-payments [post]
func (h *PaymentHandler) CreateScheduled(c *fiber.Ctx) error {
	var in dto.CreateScheduledPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.CreateScheduled(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListScheduled godoc
// @Summary      Pagos programados de una cuenta, próximos primero
// @Tags         payments
// @Produce      json
// @Param        debtorId  query  string  true  "ID de la cuenta"
// @Success      200       {array}   dto.ScheduledPaymentResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/scheduled-payments [get]
func (h *PaymentHandler) ListScheduled(c *fiber.Ctx) error {
	debtorID := c.Query("debtorId")
	if debtorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debtor ID required"})
	}
	out, err := h.uc.ListScheduledByDebtor(c.UserContext(), GetCompanyID(c), debtorID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
