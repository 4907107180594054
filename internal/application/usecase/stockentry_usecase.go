package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/cache"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// StockEntryUseCase entradas de mercancía. El documento y el incremento de
// stock van en la misma transacción. El incremento es una escritura de
// producto: invalida el cache del producto tras el commit.
type StockEntryUseCase struct {
	runner    repository.StockTxRunner
	entries   repository.StockEntryRepository
	products  repository.ProductRepository
	providers repository.ProviderRepository
	cache     cache.ProductCache
	log       *logger.Logger
}

// NewStockEntryUseCase construye el caso de uso.
func NewStockEntryUseCase(
	runner repository.StockTxRunner,
	entries repository.StockEntryRepository,
	products repository.ProductRepository,
	providers repository.ProviderRepository,
	pc cache.ProductCache,
	log *logger.Logger,
) *StockEntryUseCase {
	if pc == nil {
		pc = cache.Noop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StockEntryUseCase{
		runner:    runner,
		entries:   entries,
		products:  products,
		providers: providers,
		cache:     pc,
		log:       log,
	}
}

// Create registra una entrada y suma el stock del producto.
func (uc *StockEntryUseCase) Create(ctx context.Context, in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("cantidad %d: %w", in.Quantity, domain.ErrInvalidInput)
	}
	if in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("costo unitario negativo: %w", domain.ErrInvalidInput)
	}

	p, found, err := uc.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !found || !p.Active {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	if in.ProviderID != nil {
		prov, found, err := uc.providers.FindByID(ctx, *in.ProviderID)
		if err != nil {
			return nil, err
		}
		if !found || !prov.Active {
			return nil, fmt.Errorf("proveedor %d: %w", *in.ProviderID, domain.ErrNotFound)
		}
	}

	entry := &entity.StockEntry{
		ProductID:  in.ProductID,
		ProviderID: in.ProviderID,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		CreatedAt:  time.Now(),
	}

	var created *entity.StockEntry
	err = uc.runner.RunStockEntry(ctx, func(entries repository.StockEntryRepository, products repository.ProductRepository) error {
		e, err := entries.Create(ctx, entry)
		if err != nil {
			return err
		}
		if err := products.AdjustStock(ctx, e.ProductID, e.Quantity); err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx, created.ProductID)
	uc.log.Info().Int64("stock_entry_id", created.ID).Int64("product_id", created.ProductID).Int("quantity", created.Quantity).Msg("entrada de stock registrada")
	return toStockEntryResponse(created), nil
}

// List lista las entradas más recientes.
func (uc *StockEntryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.StockEntryListResponse, error) {
	page.DefaultPage()
	list, err := uc.entries.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toStockEntryResponse(e))
	}
	return &dto.StockEntryListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	return &dto.StockEntryResponse{
		ID:         e.ID,
		ProductID:  e.ProductID,
		ProviderID: e.ProviderID,
		Quantity:   e.Quantity,
		UnitCost:   e.UnitCost,
		CreatedAt:  e.CreatedAt,
	}
}
