package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/barrapos/backoffice-api/internal/application/usecase"
	"github.com/barrapos/backoffice-api/internal/cache"
	infrapdf "github.com/barrapos/backoffice-api/internal/infrastructure/pdf"
	"github.com/barrapos/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/barrapos/backoffice-api/internal/interfaces/http"
	"github.com/barrapos/backoffice-api/pkg/config"
	"github.com/barrapos/backoffice-api/pkg/logger"
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

	// Cache de productos: Redis si hay REDIS_ADDR, noop si no.
	var productCache cache.ProductCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisProductCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, 5*time.Minute)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, cache deshabilitado")
		} else {
			productCache = redisCache
			defer redisCache.Close()
		}
	}

	accountRepo := postgres.NewAccountRepository(pool)
	barTableRepo := postgres.NewBarTableRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	stockEntryRepo := postgres.NewStockEntryRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()

	accountUC := usecase.NewAccountUseCase(accountRepo, log)
	barTableUC := usecase.NewBarTableUseCase(barTableRepo, log)
	brandUC := usecase.NewBrandUseCase(brandRepo, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, log)
	paymentMethodUC := usecase.NewPaymentMethodUseCase(paymentMethodRepo, accountRepo, log)
	providerUC := usecase.NewProviderUseCase(providerRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, productCache, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo, productRepo, barTableRepo, employeeRepo, paymentMethodRepo, receiptGenerator, productCache, cfg.App.Name, log)
	stockEntryUC := usecase.NewStockEntryUseCase(txRunner, stockEntryRepo, productRepo, providerRepo, productCache, log)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, accountRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BarraPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:       accountUC,
		BarTableUC:      barTableUC,
		BrandUC:         brandUC,
		CategoryUC:      categoryUC,
		EmployeeUC:      employeeUC,
		PaymentMethodUC: paymentMethodUC,
		ProviderUC:      providerUC,
		ProductUC:       productUC,
		UserUC:          userUC,
		SaleUC:          saleUC,
		StockEntryUC:    stockEntryUC,
		TransactionUC:   transactionUC,
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
