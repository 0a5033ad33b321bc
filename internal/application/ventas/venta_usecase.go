package ventas

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// VentaUseCase consultas de ventas (sin mutaciones).
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// GetByID obtiene una venta con sus detalles.
func (uc *VentaUseCase) GetByID(id string) (*dto.VentaResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	detalles, err := uc.repo.GetDetallesByVentaID(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(v, detalles), nil
}

// List lista ventas con paginación (solo cabeceras).
func (uc *VentaUseCase) List(page dto.PageRequest) (*dto.VentaListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVentaResponse(v, nil))
	}
	return &dto.VentaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
