package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/carrito"
	"github.com/jhoicas/tienda-api/internal/application/catalogo"
	"github.com/jhoicas/tienda-api/internal/application/clientes"
	"github.com/jhoicas/tienda-api/internal/application/facturacion"
	"github.com/jhoicas/tienda-api/internal/application/reportes"
	"github.com/jhoicas/tienda-api/internal/application/ventas"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductoUC  *catalogo.ProductoUseCase
	CategoriaUC *catalogo.CategoriaUseCase
	ClienteUC   *clientes.UseCase
	CarritoUC   *carrito.UseCase
	CheckoutUC  *ventas.CheckoutUseCase
	VentaUC     *ventas.VentaUseCase
	DetalleUC   *ventas.DetalleUseCase
	FacturaUC   *facturacion.UseCase
	ReporteUC   *reportes.UseCase
	JWTSecret   string
	CarritoTTL  time.Duration
}

// Router registra las rutas de la API. Lecturas del catálogo, carrito y
// checkout son públicas; la administración exige ADMINISTRADOR y la caja
// admite ADMINISTRADOR o CAJERO.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo: lecturas públicas
	productoHandler := NewProductoHandler(deps.ProductoUC)
	api.Get("/productos", productoHandler.List)
	api.Get("/productos/:id", productoHandler.GetByID)

	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	api.Get("/categorias", categoriaHandler.List)
	api.Get("/categorias/:id", categoriaHandler.GetByID)

	// Carrito y checkout: públicos, ligados a la cookie de sesión
	sesion := SessionMiddleware(deps.CarritoTTL)
	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	carritoGroup := api.Group("/carrito", sesion)
	carritoGroup.Get("/", carritoHandler.Ver)
	carritoGroup.Delete("/", carritoHandler.Vaciar)
	carritoGroup.Post("/items", carritoHandler.Agregar)
	carritoGroup.Post("/items/quitar", carritoHandler.Quitar)
	carritoGroup.Delete("/items/:productoId", carritoHandler.Eliminar)

	ventaHandler := NewVentaHandler(deps.CheckoutUC, deps.VentaUC, deps.DetalleUC)
	api.Post("/checkout", sesion, ventaHandler.Checkout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdministrador)
	adminOCajero := RequireRole(entity.RolAdministrador, entity.RolCajero)

	// Catálogo: escrituras (ADMINISTRADOR)
	protected.Post("/productos", soloAdmin, productoHandler.Create)
	protected.Put("/productos/:id", soloAdmin, productoHandler.Update)
	protected.Delete("/productos/:id", soloAdmin, productoHandler.Delete)
	protected.Post("/categorias", soloAdmin, categoriaHandler.Create)
	protected.Put("/categorias/:id", soloAdmin, categoriaHandler.Update)
	protected.Delete("/categorias/:id", soloAdmin, categoriaHandler.Delete)

	// Clientes (ADMINISTRADOR)
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientesGroup := protected.Group("/clientes", soloAdmin)
	clientesGroup.Post("/", clienteHandler.Create)
	clientesGroup.Get("/", clienteHandler.List)
	clientesGroup.Get("/:id", clienteHandler.GetByID)
	clientesGroup.Put("/:id", clienteHandler.Update)
	clientesGroup.Delete("/:id", clienteHandler.Delete)

	// Ventas y facturación (ADMINISTRADOR o CAJERO)
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	ventasGroup := protected.Group("/ventas", adminOCajero)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Post("/:id/detalles", ventaHandler.AgregarDetalle)
	ventasGroup.Put("/:id/detalles/:detalleId", ventaHandler.ActualizarDetalle)
	ventasGroup.Delete("/:id/detalles/:detalleId", ventaHandler.EliminarDetalle)
	ventasGroup.Post("/:id/factura", facturaHandler.Generar)

	facturasGroup := protected.Group("/facturas", adminOCajero)
	facturasGroup.Get("/", facturaHandler.List)
	facturasGroup.Get("/:id", facturaHandler.GetByID)
	facturasGroup.Get("/:id/pdf", facturaHandler.DescargarPDF)
	facturasGroup.Post("/:id/enviar", facturaHandler.Enviar)

	// Reportes (ADMINISTRADOR)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	protected.Get("/reportes/ventas", soloAdmin, reporteHandler.Ventas)
}
