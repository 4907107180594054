package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/application/usecase"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/infrastructure/memory"
)

// spyCache cache en memoria que registra las invalidaciones.
type spyCache struct {
	rows        map[int64]*entity.Product
	hits        int
	invalidated []int64
}

func newSpyCache() *spyCache { return &spyCache{rows: make(map[int64]*entity.Product)} }

func (c *spyCache) Get(ctx context.Context, id int64) (*entity.Product, bool) {
	p, ok := c.rows[id]
	if ok {
		c.hits++
	}
	return p, ok
}

func (c *spyCache) Set(ctx context.Context, p *entity.Product) { c.rows[p.ID] = p }

func (c *spyCache) Invalidate(ctx context.Context, id int64) {
	delete(c.rows, id)
	c.invalidated = append(c.invalidated, id)
}

// TestProductCodigoUnico el código numérico es la clave natural.
func TestProductCodigoUnico(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductStore(), nil, nil)
	ctx := context.Background()

	cerveza, err := uc.Create(ctx, dto.CreateProductRequest{
		Code: 100, Name: "Cerveza", Price: decimal.NewFromInt(5), Cost: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, cerveza.Stock, "un producto nuevo nace con stock cero")

	_, err = uc.Create(ctx, dto.CreateProductRequest{
		Code: 100, Name: "Otra cosa", Price: decimal.NewFromInt(9), Cost: decimal.NewFromInt(1),
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "PRODUCT_EXISTS_ACTIVE", conflict.Code())
	assert.Equal(t, cerveza.ID, conflict.ExistingID)
}

// TestProductValidaciones código y montos inválidos se cortan antes del motor.
func TestProductValidaciones(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductStore(), nil, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Code: 0, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{
		Code: 1, Name: "x", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestProductCache las lecturas por id aciertan el cache y toda escritura
// invalida la entrada.
func TestProductCache(t *testing.T) {
	cache := newSpyCache()
	uc := usecase.NewProductUseCase(memory.NewProductStore(), cache, nil)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Code: 100, Name: "Cerveza", Price: decimal.NewFromInt(5), Cost: decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	// Primera lectura puebla; la segunda acierta.
	_, err = uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	_, err = uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)

	// La escritura invalida.
	name := "Cerveza rubia"
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, p.ID)

	// Lectura posterior vuelve a la base y ve el dato nuevo.
	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cerveza rubia", got.Name)
}

// TestProductDeactivateInvalidaCache la desactivación también invalida.
func TestProductDeactivateInvalidaCache(t *testing.T) {
	cache := newSpyCache()
	uc := usecase.NewProductUseCase(memory.NewProductStore(), cache, nil)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Code: 100, Name: "Cerveza", Price: decimal.NewFromInt(5), Cost: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	_, err = uc.GetByID(ctx, p.ID)
	require.NoError(t, err)

	_, err = uc.Deactivate(ctx, p.ID, nil)
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, p.ID)
}
