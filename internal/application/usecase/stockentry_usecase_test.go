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

// stockFixture producto con stock inicial y un proveedor activo.
type stockFixture struct {
	uc       *usecase.StockEntryUseCase
	products *memory.ProductStore
	cache    *spyCache
	product  *entity.Product
	provider *entity.Provider
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	ctx := context.Background()

	products := memory.NewProductStore()
	providers := memory.NewProviderStore()
	records := memory.NewRecordStore(products)
	pc := newSpyCache()

	f := &stockFixture{
		uc:       usecase.NewStockEntryUseCase(records, records.StockEntries(), products, providers, pc, nil),
		products: products,
		cache:    pc,
	}

	var err error
	f.product, err = products.Insert(ctx, withKey(&entity.Product{
		Code: 100, Name: "Cerveza", Price: decimal.NewFromInt(5), Stock: 2, Active: true,
	}))
	require.NoError(t, err)
	f.provider, err = providers.Insert(ctx, withKey(&entity.Provider{Name: "Distribuidora Sur", Active: true}))
	require.NoError(t, err)
	return f
}

// TestStockEntryCreate registrar la entrada suma el stock en la misma operación.
func TestStockEntryCreate(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	entry, err := f.uc.Create(ctx, dto.CreateStockEntryRequest{
		ProductID:  f.product.ID,
		ProviderID: &f.provider.ID,
		Quantity:   24,
		UnitCost:   decimal.RequireFromString("1.80"),
	})
	require.NoError(t, err)
	assert.Equal(t, 24, entry.Quantity)

	p, found, err := f.products.FindByID(ctx, f.product.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 26, p.Stock, "la entrada incrementa el stock existente")

	list, err := f.uc.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

// TestStockEntryInvalidaCache una entrada cambia el stock, así que la lectura
// cacheada del producto deja de valer en cuanto se confirma.
func TestStockEntryInvalidaCache(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	fernet, err := f.products.Insert(ctx, withKey(&entity.Product{
		Code: 200, Name: "Fernet", Price: decimal.NewFromInt(8), Stock: 5, Active: true,
	}))
	require.NoError(t, err)

	productUC := usecase.NewProductUseCase(f.products, f.cache, nil)
	cached, err := productUC.GetByID(ctx, fernet.ID)
	require.NoError(t, err)
	require.Equal(t, 5, cached.Stock)

	_, err = f.uc.Create(ctx, dto.CreateStockEntryRequest{
		ProductID: fernet.ID, Quantity: 5, UnitCost: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.Contains(t, f.cache.invalidated, fernet.ID, "la entrada debe invalidar el cache del producto")

	fresh, err := productUC.GetByID(ctx, fernet.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, fresh.Stock, "la siguiente lectura debe ver el stock sumado")
}

// TestStockEntrySinProveedor el proveedor es opcional.
func TestStockEntrySinProveedor(t *testing.T) {
	f := newStockFixture(t)

	entry, err := f.uc.Create(context.Background(), dto.CreateStockEntryRequest{
		ProductID: f.product.ID,
		Quantity:  5,
		UnitCost:  decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Nil(t, entry.ProviderID)
}

// TestStockEntryValidaciones cantidades no positivas, costos negativos y
// referencias muertas se rechazan.
func TestStockEntryValidaciones(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateStockEntryRequest{
		ProductID: f.product.ID, Quantity: 0, UnitCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.CreateStockEntryRequest{
		ProductID: f.product.ID, Quantity: 5, UnitCost: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.CreateStockEntryRequest{
		ProductID: 99, Quantity: 5, UnitCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := int64(99)
	_, err = f.uc.Create(ctx, dto.CreateStockEntryRequest{
		ProductID: f.product.ID, ProviderID: &bad, Quantity: 5, UnitCost: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
