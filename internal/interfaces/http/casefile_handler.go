package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
)

// CaseFileHandler maneja notas, documentos, acciones y codeudores.
type CaseFileHandler struct {
	uc *usecase.CaseFileUseCase
}

// NewCaseFileHandler construye el handler.
func NewCaseFileHandler(uc *usecase.CaseFileUseCase) *CaseFileHandler {
	return &CaseFileHandler{uc: uc}
}

func (h *CaseFileHandler) requireDebtorID(c *fiber.Ctx) (string, bool) {
	debtorID := c.Query("debtorId")
	if debtorID == "" {
		return "", false
	}
	return debtorID, true
}

// CreateNote godoc
// @Summary      Anotar una cuenta
// @Tags         casefile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNoteRequest  true  "Nota"
// @Success      201   {object}  dto.NoteResponse
// @Router       /api/notes [post]
func (h *CaseFileHandler) CreateNote(c *fiber.Ctx) error {
	var in dto.CreateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if in.CreatedBy == "" {
		in.CreatedBy = GetUserID(c)
	}
	out, err := h.uc.CreateNote(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListNotes godoc
// @Summary      Notas de una cuenta
// @Tags         casefile
// @Produce      json
// @Param        debtorId  query  string  true  "ID de la cuenta"
// @Success      200       {array}  dto.NoteResponse
// @Router       /api/notes [get]
func (h *CaseFileHandler) ListNotes(c *fiber.Ctx) error {
	debtorID, ok := h.requireDebtorID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debtor ID required"})
	}
	out, err := h.uc.ListNotes(c.UserContext(), GetCompanyID(c), debtorID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// CreateDocument godoc
// @Summary      Registrar metadatos de un documento
// @Tags         casefile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Documento"
// @Success      201   {object}  dto.DocumentResponse
// @Router       /api/documents [post]
func (h *CaseFileHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if in.UploadedBy == "" {
		in.UploadedBy = GetUserID(c)
	}
	out, err := h.uc.CreateDocument(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDocuments godoc
// @Summary      Documentos de una cuenta
// @Tags         casefile
// @Produce      json
// @Param        debtorId  query  string  true  "ID de la cuenta"
// @Success      200       {array}  dto.DocumentResponse
// @Router       /api/documents [get]
func (h *CaseFileHandler) ListDocuments(c *fiber.Ctx) error {
	debtorID, ok := h.requireDebtorID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debtor ID required"})
	}
	out, err := h.uc.ListDocuments(c.UserContext(), GetCompanyID(c), debtorID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// CreateAction godoc
// @Summary      Crear tarea o recordatorio
// @Tags         casefile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActionRequest  true  "Acción"
// @Success      201   {object}  dto.ActionResponse
// @Router       /api/actions [post]
func (h *CaseFileHandler) CreateAction(c *fiber.Ctx) error {
	var in dto.CreateActionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.CreateAction(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListActions godoc
// @Summary      Acciones de una cuenta
// @Tags         casefile
// @Produce      json
// @Param        debtorId  query  string  true  "ID de la cuenta"
// @Success      200       {array}  dto.ActionResponse
// @Router       /api/actions [get]
func (h *CaseFileHandler) ListActions(c *fiber.Ctx) error {
	debtorID, ok := h.requireDebtorID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debtor ID required"})
	}
	out, err := h.uc.ListActions(c.UserContext(), GetCompanyID(c), debtorID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}

// CreateCoDebtor godoc
// @Summary      Asociar codeudor
// @Tags         casefile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCoDebtorRequest  true  "Codeudor"
// @Success      201   {object}  dto.CoDebtorResponse
// @Router       /api/co-debtors [post]
func (h *CaseFileHandler) CreateCoDebtor(c *fiber.Ctx) error {
	var in dto.CreateCoDebtorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.CreateCoDebtor(c.UserContext(), GetCompanyID(c), in)
	if err != nil {
		return failDomain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCoDebtors godoc
// @Summary      Codeudores de una cuenta
// @Tags         casefile
// @Produce      json
// @Param        debtorId  query  string  true  "ID de la cuenta"
// @Success      200       {array}  dto.CoDebtorResponse
// @Router       /api/co-debtors [get]
func (h *CaseFileHandler) ListCoDebtors(c *fiber.Ctx) error {
	debtorID, ok := h.requireDebtorID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debtor ID required"})
	}
	out, err := h.uc.ListCoDebtors(c.UserContext(), GetCompanyID(c), debtorID)
	if err != nil {
		return failDomain(c, err)
	}
	return c.JSON(out)
}
