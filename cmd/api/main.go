package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudcollect/cobranza-api/internal/application/auth"
	"github.com/cloudcollect/cobranza-api/internal/application/letters"
	"github.com/cloudcollect/cobranza-api/internal/application/usecase"
	infrapdf "github.com/cloudcollect/cobranza-api/internal/infrastructure/pdf"
	"github.com/cloudcollect/cobranza-api/internal/infrastructure/postgres"
	httpRouter "github.com/cloudcollect/cobranza-api/internal/interfaces/http"
	"github.com/cloudcollect/cobranza-api/pkg/config"
	"github.com/cloudcollect/cobranza-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// El esquema se asegura una sola vez al arrancar, no por petición.
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicialización del esquema")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	debtorRepo := postgres.NewDebtorRepository(pool)
	phoneRepo := postgres.NewPhoneRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	scheduledRepo := postgres.NewScheduledPaymentRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	actionRepo := postgres.NewActionRepository(pool)
	coDebtorRepo := postgres.NewCoDebtorRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	debtorUC := usecase.NewDebtorUseCase(debtorRepo, phoneRepo, paymentRepo, noteRepo, documentRepo, actionRepo, txRunner)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, scheduledRepo)
	caseFileUC := usecase.NewCaseFileUseCase(noteRepo, documentRepo, actionRepo, coDebtorRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)
	importUC := usecase.NewImportUseCase(debtorUC)

	letterGenerator := infrapdf.NewMarotoLetterGenerator()
	letterUC := letters.NewUseCase(debtorRepo, companyRepo, phoneRepo, paymentRepo, letterGenerator)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:          cfg.App.Name,
		CompanyUC:        companyUC,
		DebtorUC:         debtorUC,
		PaymentUC:        paymentUC,
		CaseFileUC:       caseFileUC,
		UserUC:           userUC,
		DashboardUC:      dashboardUC,
		ImportUC:         importUC,
		LetterUC:         letterUC,
		AuthUC:           authUC,
		DefaultCompanyID: cfg.Tenant.DefaultCompanyID,
		SwaggerFilePath:  "./docs/swagger.json",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
