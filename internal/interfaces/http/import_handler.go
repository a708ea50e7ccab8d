package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
)

// ImportHandler carga masiva de cuentas desde CSV.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Cargar cuentas desde CSV (cuerpo crudo o multipart "file")
// @Tags         debtors
// @Accept       text/csv
// @Produce      json
// @Success      200  {object}  dto.ImportSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/debtors/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cannot read uploaded file"})
		}
		defer f.Close()
		out, err := h.uc.Import(c.UserContext(), GetCompanyID(c), f)
		if err != nil {
			return failDomain(c, err)
		}
		return c.JSON(out)
	}
	if len(body) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "CSV body required"})
	}
	out, err := h.uc.Import(c.UserContext(), GetCompanyID(c), bytes.NewReader(body))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
