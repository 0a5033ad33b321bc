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

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/carrito"
	"github.com/jhoicas/tienda-api/internal/application/catalogo"
	"github.com/jhoicas/tienda-api/internal/application/clientes"
	"github.com/jhoicas/tienda-api/internal/application/facturacion"
	"github.com/jhoicas/tienda-api/internal/application/reportes"
	"github.com/jhoicas/tienda-api/internal/application/ventas"
	"github.com/jhoicas/tienda-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	carritoTTL := time.Duration(cfg.Carrito.TTLMinutes) * time.Minute
	cartStore := session.NewMemoryCartStore(carritoTTL)
	defer cartStore.Close()

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productoUC := catalogo.NewProductoUseCase(productoRepo, categoriaRepo)
	categoriaUC := catalogo.NewCategoriaUseCase(categoriaRepo, productoRepo)
	clienteUC := clientes.NewUseCase(clienteRepo)
	carritoUC := carrito.NewUseCase(cartStore, productoRepo)
	checkoutUC := ventas.NewCheckoutUseCase(txRunner, cartStore, clienteRepo)
	ventaUC := ventas.NewVentaUseCase(ventaRepo)
	detalleUC := ventas.NewDetalleUseCase(txRunner)
	reporteUC := reportes.NewUseCase(reporteRepo)

	pdfGenerator := infrapdf.NewMarotoFacturaGenerator(cfg.App.Name)
	mailer := mail.NewGomailSender(cfg.SMTP)
	facturaUC := facturacion.NewUseCase(
		facturaRepo, ventaRepo, clienteRepo, productoRepo,
		pdfGenerator, mailer,
		facturacion.Config{Prefijo: cfg.Factura.Prefijo, DirPDF: cfg.Factura.DirPDF},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Aura API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductoUC:  productoUC,
		CategoriaUC: categoriaUC,
		ClienteUC:   clienteUC,
		CarritoUC:   carritoUC,
		CheckoutUC:  checkoutUC,
		VentaUC:     ventaUC,
		DetalleUC:   detalleUC,
		FacturaUC:   facturaUC,
		ReporteUC:   reporteUC,
		JWTSecret:   cfg.JWT.Secret,
		CarritoTTL:  carritoTTL,
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
