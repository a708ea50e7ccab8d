package http

import (
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cloudcollect/cobranza-api/internal/application/auth"
	"github.com/cloudcollect/cobranza-api/internal/application/dto"
	"github.com/cloudcollect/cobranza-api/internal/application/letters"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
)

// RouterDeps dependencias para armar la aplicación HTTP.
type RouterDeps struct {
	AppName          string
	CompanyUC        *usecase.CompanyUseCase
	DebtorUC         *usecase.DebtorUseCase
	PaymentUC        *usecase.PaymentUseCase
	CaseFileUC       *usecase.CaseFileUseCase
	UserUC           *usecase.UserUseCase
	DashboardUC      *usecase.DashboardUseCase
	ImportUC         *usecase.ImportUseCase
	LetterUC         *letters.UseCase
	AuthUC           *auth.AuthUseCase
	DefaultCompanyID string
	SwaggerFilePath  string
}

// NewApp construye la aplicación Fiber completa: CORS permisivo, recuperación
// de pánicos con el sobre {error, message, timestamp}, binding de tenant por
// sesión o tenant por defecto, rutas de la API, 404 JSON para rutas /api
// desconocidas y el shell del cliente para todo lo demás.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(dto.ErrorResponse{Error: e.Message})
			}
			return internalError(c, err)
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	if deps.SwaggerFilePath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFilePath,
			Path:     "docs",
			Title:    deps.AppName,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api", TenantMiddleware(deps.AuthUC, deps.DefaultCompanyID))

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Companies
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := api.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/code/:code", companyHandler.GetByCode)
	companies.Get("/:id", companyHandler.GetByID)

	// Debtors: search e import van antes de :id para que no los capture.
	debtorHandler := NewDebtorHandler(deps.DebtorUC)
	importHandler := NewImportHandler(deps.ImportUC)
	letterHandler := NewLetterHandler(deps.LetterUC)
	debtors := api.Group("/debtors")
	debtors.Get("/search", debtorHandler.Search)
	debtors.Post("/import", importHandler.Import)
	debtors.Get("/", debtorHandler.List)
	debtors.Post("/", debtorHandler.Create)
	debtors.Get("/:id/letters/:kind", letterHandler.Generate)
	debtors.Get("/:id", debtorHandler.GetByID)
	debtors.Put("/:id", debtorHandler.Update)
	debtors.Delete("/:id", debtorHandler.Delete)

	// Payments
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments := api.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	scheduled := api.Group("/scheduled-payments")
	scheduled.Post("/", paymentHandler.CreateScheduled)
	scheduled.Get("/", paymentHandler.ListScheduled)

	// Expediente
	caseFileHandler := NewCaseFileHandler(deps.CaseFileUC)
	api.Post("/notes", caseFileHandler.CreateNote)
	api.Get("/notes", caseFileHandler.ListNotes)
	api.Post("/documents", caseFileHandler.CreateDocument)
	api.Get("/documents", caseFileHandler.ListDocuments)
	api.Post("/actions", caseFileHandler.CreateAction)
	api.Get("/actions", caseFileHandler.ListActions)
	api.Post("/co-debtors", caseFileHandler.CreateCoDebtor)
	api.Get("/co-debtors", caseFileHandler.ListCoDebtors)

	// Users y roles
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users")
	users.Post("/", userHandler.CreateUser)
	users.Get("/", userHandler.ListUsers)
	roles := api.Group("/roles")
	roles.Post("/", userHandler.CreateRole)
	roles.Get("/", userHandler.ListRoles)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/stats", dashboardHandler.Stats)

	// Rutas /api desconocidas responden 404; el resto recibe el shell del
	// cliente (SPA, el enrutamiento real vive en el navegador).
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "API endpoint not found"})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(appShellHTML)
	})

	return app
}
