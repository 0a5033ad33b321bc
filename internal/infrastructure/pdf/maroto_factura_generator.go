// Package pdf implementa la representación gráfica de la factura de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre tienda  │  N° Factura + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: Nombre + contacto (o "Cliente ocasional")        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / IVA 13% / TOTAL            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Clave del comprobante + leyenda                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tienda-api/internal/application/facturacion"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoFacturaGenerator implementa facturacion.PDFGenerator usando Maroto v2.
type MarotoFacturaGenerator struct {
	nombreTienda string
}

// NewMarotoFacturaGenerator construye el generador con el nombre comercial.
func NewMarotoFacturaGenerator(nombreTienda string) *MarotoFacturaGenerator {
	return &MarotoFacturaGenerator{nombreTienda: nombreTienda}
}

// GenerarPDF genera el PDF de la factura y devuelve sus bytes. El cliente
// puede ser nil (venta anónima).
func (g *MarotoFacturaGenerator) GenerarPDF(
	_ context.Context,
	factura *entity.Factura,
	venta *entity.Venta,
	cliente *entity.Cliente,
	detalles []facturacion.DetalleParaPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+factura.NumeroConsecutivo, true).
		WithAuthor(g.nombreTienda, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(factura, g.nombreTienda))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receptorRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(detalles) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(venta))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(factura)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y N° Factura + Fecha (der).
func headerRow(factura *entity.Factura, nombreTienda string) core.Row {
	fecha := factura.FechaEmision.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nombreTienda, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Venta de ropa y accesorios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(factura.NumeroConsecutivo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// receptorRow: datos del comprador, o "Cliente ocasional" en venta anónima.
func receptorRow(cliente *entity.Cliente) core.Row {
	nombre := "Cliente ocasional"
	contacto := ""
	if cliente != nil {
		nombre = cliente.Nombre
		contacto = fmt.Sprintf("Email: %s   |   Tel: %s",
			nonEmpty(cliente.Email, "—"),
			nonEmpty(cliente.Telefono, "—"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(detalles []facturacion.DetalleParaPDF) []core.Row {
	result := make([]core.Row, 0, len(detalles))
	for _, d := range detalles {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				d.NombreProducto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"₡"+formatMoney(d.PrecioUnitario.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"₡"+formatMoney(d.Subtotal().StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(venta *entity.Venta) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuento:"),
			label("IVA (13%):"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("₡"+formatMoney(venta.Subtotal.StringFixed(2))),
			value("₡"+formatMoney(venta.Descuento.StringFixed(2))),
			value("₡"+formatMoney(venta.Impuesto.StringFixed(2))),
			grandValue("₡"+formatMoney(venta.Total.StringFixed(2))),
		),
		col.New(3),
	)
}

// footerRows: clave del comprobante + leyenda.
func footerRows(factura *entity.Factura) []core.Row {
	return []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New("Clave del comprobante: "+factura.Clave, props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Gracias por su compra. Conserve este documento como comprobante de su transacción.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico con decimales
// separados por punto. Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	entero := s
	dec := ""
	for i := range s {
		if s[i] == '.' {
			entero = s[:i]
			dec = s[i+1:]
			break
		}
	}
	n := len(entero)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i := 0; i < n; i++ {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, entero[i])
		}
		entero = string(buf)
	}
	if dec == "" {
		return entero
	}
	return entero + "," + dec
}
