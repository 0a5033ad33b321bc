package catalogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

type fakeCategoriaRepo struct {
	categorias map[string]*entity.Categoria
}

func (r *fakeCategoriaRepo) Create(c *entity.Categoria) error {
	for _, existente := range r.categorias {
		if existente.Nombre == c.Nombre {
			return domain.ErrDuplicate
		}
	}
	r.categorias[c.ID] = c
	return nil
}

func (r *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return r.categorias[id], nil
}

func (r *fakeCategoriaRepo) Update(c *entity.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *fakeCategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	out := make([]*entity.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoriaRepo) Delete(id string) error {
	delete(r.categorias, id)
	return nil
}

// fakeProductoCountRepo solo cuenta productos por categoría; el resto de la
// interfaz no se toca en estos tests.
type fakeProductoCountRepo struct {
	porCategoria map[string]int
}

func (r *fakeProductoCountRepo) Create(*entity.Producto) error                 { return nil }
func (r *fakeProductoCountRepo) GetByID(string) (*entity.Producto, error)      { return nil, nil }
func (r *fakeProductoCountRepo) GetForUpdate(string) (*entity.Producto, error) { return nil, nil }
func (r *fakeProductoCountRepo) Update(*entity.Producto) error                 { return nil }
func (r *fakeProductoCountRepo) UpdateStock(string, int) error                 { return nil }
func (r *fakeProductoCountRepo) Delete(string) error                           { return nil }
func (r *fakeProductoCountRepo) CountByCategoria(id string) (int, error)       { return r.porCategoria[id], nil }
func (r *fakeProductoCountRepo) List(string, string, int, int) ([]*entity.Producto, error) {
	return nil, nil
}

func buildCategoriaUseCase() (*CategoriaUseCase, *fakeCategoriaRepo, *fakeProductoCountRepo) {
	catRepo := &fakeCategoriaRepo{categorias: make(map[string]*entity.Categoria)}
	prodRepo := &fakeProductoCountRepo{porCategoria: make(map[string]int)}
	return NewCategoriaUseCase(catRepo, prodRepo), catRepo, prodRepo
}

func TestCategoriaDelete_RechazadaConProductosAsociados(t *testing.T) {
	uc, catRepo, prodRepo := buildCategoriaUseCase()

	creada, err := uc.Create(dto.CreateCategoriaRequest{Nombre: "Camisas"})
	require.NoError(t, err)
	prodRepo.porCategoria[creada.ID] = 3

	err = uc.Delete(creada.ID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)
	assert.NotNil(t, catRepo.categorias[creada.ID], "la categoría sigue existiendo")
}

func TestCategoriaDelete_SinProductos(t *testing.T) {
	uc, catRepo, _ := buildCategoriaUseCase()

	creada, err := uc.Create(dto.CreateCategoriaRequest{Nombre: "Camisas"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creada.ID))
	assert.Nil(t, catRepo.categorias[creada.ID])
}

func TestCategoriaCreate_NombreDuplicado(t *testing.T) {
	uc, _, _ := buildCategoriaUseCase()

	_, err := uc.Create(dto.CreateCategoriaRequest{Nombre: "Camisas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoriaRequest{Nombre: "Camisas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
