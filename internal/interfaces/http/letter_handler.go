package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudcollect/cobranza-api/internal/application/letters"
)

// LetterHandler genera cartas de cobranza en PDF.
type LetterHandler struct {
	uc *letters.UseCase
}

// NewLetterHandler construye el handler.
func NewLetterHandler(uc *letters.UseCase) *LetterHandler {
	return &LetterHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar carta en PDF (demand, statement, agreement)
// @Tags         letters
// @Produce      application/pdf
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        kind  path  string  true  "Tipo de carta"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debtors/{id}/letters/{kind} [get]
func (h *LetterHandler) Generate(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Generate(c.UserContext(), GetCompanyID(c), c.Params("id"), c.Params("kind"))
	if err != nil {
		return failDomain(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
