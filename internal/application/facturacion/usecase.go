// Package facturacion contiene los casos de uso de facturación: generación
// idempotente del comprobante de una venta, PDF y envío por correo.
package facturacion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// Config parámetros de facturación: prefijo del consecutivo y directorio de PDFs.
type Config struct {
	Prefijo string
	DirPDF  string
}

// UseCase casos de uso de facturación. Generar es idempotente por venta: la
// unicidad sobre venta_id resuelve carreras y la segunda llamada devuelve la
// factura existente.
type UseCase struct {
	facturaRepo  repository.FacturaRepository
	ventaRepo    repository.VentaRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	generator    PDFGenerator
	mailer       Mailer
	cfg          Config
	log          *logger.Logger
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	facturaRepo repository.FacturaRepository,
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	generator PDFGenerator,
	mailer Mailer,
	cfg Config,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		facturaRepo:  facturaRepo,
		ventaRepo:    ventaRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		generator:    generator,
		mailer:       mailer,
		cfg:          cfg,
		log:          log,
	}
}

// Generar crea la factura de una venta (o devuelve la existente) y genera su
// PDF. Si la generación del PDF falla, la factura queda en PENDIENTE y la
// siguiente llamada reintenta solo el PDF.
func (uc *UseCase) Generar(ctx context.Context, ventaID string) (*dto.FacturaResponse, error) {
	existente, err := uc.facturaRepo.GetByVentaID(ventaID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		if existente.Estado == entity.FacturaEstadoPendiente {
			if _, err := uc.generarPDF(ctx, existente); err != nil {
				uc.log.Warn().Err(err).Str("factura_id", existente.ID).Msg("reintento de PDF fallido")
			}
		}
		return toFacturaResponse(existente), nil
	}

	venta, err := uc.ventaRepo.GetByID(ventaID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}

	consecutivo, err := uc.facturaRepo.NextConsecutivo()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	factura := &entity.Factura{
		ID:                uuid.New().String(),
		VentaID:           ventaID,
		NumeroConsecutivo: fmt.Sprintf("%s-%08d", uc.cfg.Prefijo, consecutivo),
		Clave:             fmt.Sprintf("%s-%08d", now.Format("20060102150405"), consecutivo),
		FechaEmision:      now,
		Estado:            entity.FacturaEstadoPendiente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.facturaRepo.Create(factura); err != nil {
		// Carrera con otra petición: el índice único sobre venta_id ganó;
		// la factura ya existe, se devuelve esa.
		if errors.Is(err, domain.ErrDuplicate) {
			existente, err2 := uc.facturaRepo.GetByVentaID(ventaID)
			if err2 != nil {
				return nil, err2
			}
			if existente != nil {
				return toFacturaResponse(existente), nil
			}
		}
		return nil, err
	}

	if _, err := uc.generarPDF(ctx, factura); err != nil {
		uc.log.Warn().Err(err).Str("factura_id", factura.ID).Msg("PDF no generado, factura queda PENDIENTE")
	}
	return toFacturaResponse(factura), nil
}

// DescargarPDF devuelve los bytes del PDF y el nombre de archivo. Si el
// archivo no está en disco (o la factura sigue PENDIENTE) se regenera.
func (uc *UseCase) DescargarPDF(ctx context.Context, facturaID string) ([]byte, string, error) {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return nil, "", err
	}
	if factura == nil {
		return nil, "", domain.ErrNotFound
	}

	filename := factura.Clave + ".pdf"
	if factura.Estado == entity.FacturaEstadoGenerada && factura.PDFPath != "" {
		data, err := os.ReadFile(filepath.Join(uc.cfg.DirPDF, factura.PDFPath))
		if err == nil {
			return data, filename, nil
		}
		uc.log.Warn().Str("factura_id", factura.ID).Str("path", factura.PDFPath).Msg("PDF no encontrado en disco, regenerando")
	}

	data, err := uc.generarPDF(ctx, factura)
	if err != nil {
		return nil, "", err
	}
	return data, filename, nil
}

// EnviarPorCorreo envía la factura con el PDF adjunto. Si no viene email se
// usa el del cliente de la venta. Un fallo del SMTP devuelve
// ErrExternalService; la factura ya generada no se toca.
func (uc *UseCase) EnviarPorCorreo(ctx context.Context, facturaID string, in dto.EnviarFacturaRequest) error {
	factura, err := uc.facturaRepo.GetByID(facturaID)
	if err != nil {
		return err
	}
	if factura == nil {
		return domain.ErrNotFound
	}
	venta, err := uc.ventaRepo.GetByID(factura.VentaID)
	if err != nil {
		return err
	}
	if venta == nil {
		return domain.ErrNotFound
	}

	email := in.Email
	if email == "" {
		if venta.ClienteID == "" {
			return domain.ErrInvalidInput // venta anónima sin email destino
		}
		cliente, err := uc.clienteRepo.GetByID(venta.ClienteID)
		if err != nil {
			return err
		}
		if cliente == nil || cliente.Email == "" {
			return domain.ErrInvalidInput
		}
		email = cliente.Email
	}

	pdf, filename, err := uc.DescargarPDF(ctx, facturaID)
	if err != nil {
		return err
	}

	asunto := fmt.Sprintf("Factura %s", factura.NumeroConsecutivo)
	cuerpo := fmt.Sprintf("<p>Adjuntamos su factura <b>%s</b> por un total de <b>%s</b>.</p><p>Gracias por su compra.</p>",
		factura.NumeroConsecutivo, venta.Total.StringFixed(2))
	if err := uc.mailer.Enviar(ctx, email, asunto, cuerpo, pdf, filename); err != nil {
		uc.log.Error().Err(err).Str("factura_id", facturaID).Str("email", email).Msg("envío de factura fallido")
		return fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}
	uc.log.Info().Str("factura_id", facturaID).Str("email", email).Msg("factura enviada")
	return nil
}

// GetByID obtiene una factura por ID.
func (uc *UseCase) GetByID(id string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, nil
	}
	return toFacturaResponse(factura), nil
}

// List lista el historial de facturas con paginación.
func (uc *UseCase) List(page dto.PageRequest) (*dto.FacturaListResponse, error) {
	page.DefaultPage()
	list, err := uc.facturaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FacturaResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFacturaResponse(f))
	}
	return &dto.FacturaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// generarPDF arma los datos, genera el PDF, lo escribe bajo DirPDF/yyyy/MM/ y
// marca la factura como GENERADA.
func (uc *UseCase) generarPDF(ctx context.Context, factura *entity.Factura) ([]byte, error) {
	venta, err := uc.ventaRepo.GetByID(factura.VentaID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}

	var cliente *entity.Cliente
	if venta.ClienteID != "" {
		cliente, err = uc.clienteRepo.GetByID(venta.ClienteID)
		if err != nil {
			return nil, err
		}
	}

	rawDetalles, err := uc.ventaRepo.GetDetallesByVentaID(venta.ID)
	if err != nil {
		return nil, err
	}
	detalles := make([]DetalleParaPDF, 0, len(rawDetalles))
	for _, d := range rawDetalles {
		nombre := "Producto " + d.ProductoID
		if producto, pErr := uc.productoRepo.GetByID(d.ProductoID); pErr == nil && producto != nil {
			nombre = producto.Nombre
		}
		detalles = append(detalles, DetalleParaPDF{DetalleVenta: *d, NombreProducto: nombre})
	}

	data, err := uc.generator.GenerarPDF(ctx, factura, venta, cliente, detalles)
	if err != nil {
		return nil, fmt.Errorf("generar pdf: %w", err)
	}

	relPath := filepath.Join(factura.FechaEmision.Format("2006"), factura.FechaEmision.Format("01"), factura.Clave+".pdf")
	fullPath := filepath.Join(uc.cfg.DirPDF, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de facturas: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("guardar pdf: %w", err)
	}

	factura.Estado = entity.FacturaEstadoGenerada
	factura.PDFPath = relPath
	factura.UpdatedAt = time.Now()
	if err := uc.facturaRepo.Update(factura); err != nil {
		return nil, err
	}
	return data, nil
}

func toFacturaResponse(f *entity.Factura) *dto.FacturaResponse {
	if f == nil {
		return nil
	}
	return &dto.FacturaResponse{
		ID:                f.ID,
		VentaID:           f.VentaID,
		NumeroConsecutivo: f.NumeroConsecutivo,
		Clave:             f.Clave,
		FechaEmision:      f.FechaEmision,
		Estado:            f.Estado,
		PDFPath:           f.PDFPath,
	}
}
