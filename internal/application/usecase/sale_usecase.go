package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/cache"
	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
	"github.com/barrapos/backoffice-api/pkg/logger"
)

// ReceiptData datos ya resueltos para imprimir el recibo de una venta.
type ReceiptData struct {
	Sale         *entity.Sale
	TableNumber  int
	EmployeeName string
	MethodName   string
	ProductNames map[int64]string
	BusinessName string
}

// ReceiptGenerator puerto del generador de recibos PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}

// SaleUseCase cierre de ventas. Todo el cierre corre en una transacción:
// documento, descuento de stock por renglón y el ingreso en la cuenta del
// medio de pago. El descuento es una escritura de producto: invalida el
// cache de cada renglón tras el commit.
type SaleUseCase struct {
	runner    repository.SaleTxRunner
	sales     repository.SaleRepository
	products  repository.ProductRepository
	tables    repository.BarTableRepository
	employees repository.EmployeeRepository
	methods   repository.PaymentMethodRepository
	receipts  ReceiptGenerator
	cache     cache.ProductCache
	appName   string
	log       *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	runner repository.SaleTxRunner,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	tables repository.BarTableRepository,
	employees repository.EmployeeRepository,
	methods repository.PaymentMethodRepository,
	receipts ReceiptGenerator,
	pc cache.ProductCache,
	appName string,
	log *logger.Logger,
) *SaleUseCase {
	if pc == nil {
		pc = cache.Noop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SaleUseCase{
		runner:    runner,
		sales:     sales,
		products:  products,
		tables:    tables,
		employees: employees,
		methods:   methods,
		receipts:  receipts,
		cache:     pc,
		appName:   appName,
		log:       log,
	}
}

// Create cierra una venta: valida las referencias activas, congela precios,
// descuenta stock y postea el ingreso en caja, todo atómico.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("venta sin renglones: %w", domain.ErrInvalidInput)
	}

	table, found, err := uc.tables.FindByID(ctx, in.BarTableID)
	if err != nil {
		return nil, err
	}
	if !found || !table.Active {
		return nil, fmt.Errorf("mesa %d: %w", in.BarTableID, domain.ErrNotFound)
	}
	emp, found, err := uc.employees.FindByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !found || !emp.Active {
		return nil, fmt.Errorf("empleado %d: %w", in.EmployeeID, domain.ErrNotFound)
	}
	method, found, err := uc.methods.FindByID(ctx, in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if !found || !method.Active {
		return nil, fmt.Errorf("medio de pago %d: %w", in.PaymentMethodID, domain.ErrNotFound)
	}

	// Congelar precios y validar stock antes de abrir la transacción.
	lines := make([]entity.SaleLine, 0, len(in.Lines))
	total := decimal.Zero
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("cantidad %d para producto %d: %w", l.Quantity, l.ProductID, domain.ErrInvalidInput)
		}
		p, found, err := uc.products.FindByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if !found || !p.Active {
			return nil, fmt.Errorf("producto %d: %w", l.ProductID, domain.ErrNotFound)
		}
		if p.Stock < l.Quantity {
			return nil, fmt.Errorf("stock insuficiente para producto %d (%d < %d): %w", l.ProductID, p.Stock, l.Quantity, domain.ErrInvalidInput)
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lines = append(lines, entity.SaleLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: p.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	sale := &entity.Sale{
		BarTableID:      in.BarTableID,
		EmployeeID:      in.EmployeeID,
		PaymentMethodID: in.PaymentMethodID,
		Total:           total,
		Lines:           lines,
		CreatedAt:       time.Now(),
	}

	var created *entity.Sale
	err = uc.runner.RunSale(ctx, func(sales repository.SaleRepository, products repository.ProductRepository, txs repository.TransactionRepository) error {
		s, err := sales.Create(ctx, sale)
		if err != nil {
			return err
		}
		for _, l := range s.Lines {
			if err := products.AdjustStock(ctx, l.ProductID, -l.Quantity); err != nil {
				return err
			}
		}
		saleID := s.ID
		if _, err := txs.Create(ctx, &entity.Transaction{
			AccountID: method.AccountID,
			Kind:      entity.TransactionIn,
			Amount:    s.Total,
			Concept:   fmt.Sprintf("venta #%d mesa %d", s.ID, table.Number),
			SaleID:    &saleID,
			CreatedAt: s.CreatedAt,
		}); err != nil {
			return err
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, l := range created.Lines {
		uc.cache.Invalidate(ctx, l.ProductID)
	}
	uc.log.Info().Int64("sale_id", created.ID).Str("total", created.Total.String()).Msg("venta cerrada")
	return toSaleResponse(created), nil
}

// GetByID obtiene una venta por id.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("venta %d: %w", id, domain.ErrNotFound)
	}
	return toSaleResponse(s), nil
}

// ListByDay lista las ventas de un día.
func (uc *SaleUseCase) ListByDay(ctx context.Context, day time.Time, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.sales.ListByDay(ctx, day, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset}}, nil
}

// Receipt genera el ticket PDF de una venta.
func (uc *SaleUseCase) Receipt(ctx context.Context, id int64) ([]byte, error) {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("venta %d: %w", id, domain.ErrNotFound)
	}

	data := ReceiptData{
		Sale:         s,
		ProductNames: make(map[int64]string, len(s.Lines)),
		BusinessName: uc.appName,
	}
	if t, found, err := uc.tables.FindByID(ctx, s.BarTableID); err == nil && found {
		data.TableNumber = t.Number
	}
	if e, found, err := uc.employees.FindByID(ctx, s.EmployeeID); err == nil && found {
		data.EmployeeName = e.Name
	}
	if m, found, err := uc.methods.FindByID(ctx, s.PaymentMethodID); err == nil && found {
		data.MethodName = m.Name
	}
	for _, l := range s.Lines {
		if p, found, err := uc.products.FindByID(ctx, l.ProductID); err == nil && found {
			data.ProductNames[l.ProductID] = p.Name
		}
	}
	return uc.receipts.GenerateReceipt(ctx, data)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:              s.ID,
		BarTableID:      s.BarTableID,
		EmployeeID:      s.EmployeeID,
		PaymentMethodID: s.PaymentMethodID,
		Total:           s.Total,
		Lines:           lines,
		CreatedAt:       s.CreatedAt,
	}
}
