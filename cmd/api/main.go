package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/securetrack/securetrack-api/internal/application/auth"
	"github.com/securetrack/securetrack-api/internal/application/dto"
	"github.com/securetrack/securetrack-api/internal/application/ports"
	"github.com/securetrack/securetrack-api/internal/application/usecase"
	infraai "github.com/securetrack/securetrack-api/internal/infrastructure/ai"
	infracep "github.com/securetrack/securetrack-api/internal/infrastructure/cep"
	"github.com/securetrack/securetrack-api/internal/infrastructure/heartbeat"
	"github.com/securetrack/securetrack-api/internal/infrastructure/memory"
	infrapdf "github.com/securetrack/securetrack-api/internal/infrastructure/pdf"
	httpRouter "github.com/securetrack/securetrack-api/internal/interfaces/http"
	"github.com/securetrack/securetrack-api/pkg/config"
	"github.com/securetrack/securetrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Estado em memória: todo o conjunto de dados vive no processo.
	store := memory.NewStore()
	if cfg.Seed.Demo {
		memory.Seed(store)
		log.Info().Msg("carga de demonstração aplicada")
	}

	customerRepo := memory.NewCustomerRepository(store)
	budgetRepo := memory.NewBudgetRepository(store)
	eventRepo := memory.NewEventRepository(store)
	userRepo := memory.NewUserRepository(store)
	txRunner := memory.NewTxRunner(store)

	// Indicador de sincronização do painel
	indicator := heartbeat.New()
	indicator.Start()
	defer indicator.Stop()

	// Provedor de insights: sem API key, o painel recebe o texto de fallback
	var insightsSvc ports.InsightsService
	if cfg.AI.GeminiAPIKey != "" {
		insightsSvc = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	} else {
		log.Warn().Msg("GEMINI_API_KEY ausente, insights usarão o fallback")
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator("SecureTrack Pro")
	cepClient := infracep.NewViaCEPClient()

	customerUC := usecase.NewCustomerUseCase(customerRepo, indicator)
	budgetUC := usecase.NewBudgetUseCase(budgetRepo, customerRepo, txRunner, pdfGenerator, indicator)
	eventUC := usecase.NewEventUseCase(eventRepo, indicator)
	dashboardUC := usecase.NewDashboardUseCase(customerRepo)
	insightsUC := usecase.NewInsightsUseCase(customerRepo, insightsSvc)
	addressUC := usecase.NewAddressUseCase(cepClient)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Operador administrador da carga de demonstração
	if cfg.Seed.Demo {
		_, err := authUC.RegisterUser(dto.RegisterRequest{
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
			Name:     cfg.Seed.AdminName,
			Role:     "admin",
		})
		if err != nil {
			log.Warn().Err(err).Msg("cadastro do operador admin de demonstração")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		BudgetUC:    budgetUC,
		EventUC:     eventUC,
		DashboardUC: dashboardUC,
		InsightsUC:  insightsUC,
		AddressUC:   addressUC,
		AuthUC:      authUC,
		Indicator:   indicator,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
