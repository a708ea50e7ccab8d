package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
)

// DebtorHandler maneja las peticiones HTTP de cuentas en cobranza.
type DebtorHandler struct {
	uc *usecase.DebtorUseCase
}

// NewDebtorHandler construye el handler.
func NewDebtorHandler(uc *usecase.DebtorUseCase) *DebtorHandler {
	return &DebtorHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas con sus teléfonos
// @Tags         debtors
// @Produce      json
// @Param        limit   query  int     false  "Límite"  default(50)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        q       query  string  false  "Filtro por tokens (todos deben coincidir)"
// @Param        status  query  string  false  "Filtro por estado"
// @Success      200     {array}  dto.DebtorListItem
// @Router       /api/debtors [get]
func (h *DebtorHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.UserContext(), GetCompanyID(c), page, c.Query("q"), c.Query("status"))
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cuenta (con teléfonos, transaccional)
// @Tags         debtors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDebtorRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.DebtorListItem
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/debtors [post]
func (h *DebtorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.Create(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Search godoc
// @Summary      Buscar cuentas por subcadena
// @Tags         debtors
// @Produce      json
// @Param        q    query  string  true  "Término de búsqueda"
// @Success      200  {array}   dto.SearchResultItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/debtors/search [get]
func (h *DebtorHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Search term required"})
	}
	out, err := h.uc.Search(c.UserContext(), GetCompanyID(c), term)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de la cuenta con colecciones hijas
// @Tags         debtors
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.DebtorDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/debtors/{id} [get]
func (h *DebtorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return failDomain(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Debtor not found"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial; phones reemplaza el juego completo
// @Tags         debtors
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.UpdateDebtorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debtors/{id} [put]
func (h *DebtorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDebtorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.uc.Update(c.UserContext(), GetCompanyID(c), c.Params("id"), in); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete godoc
// @Summary      Borrar cuenta; los hijos caen por cascada
// @Tags         debtors
// @Produce      json
// @Param        id   path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/debtors/{id} [delete]
func (h *DebtorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetCompanyID(c), c.Params("id")); err != nil {
		return failDomain(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
