package ventas

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el descuento de
// stock y la escritura de la venta.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
