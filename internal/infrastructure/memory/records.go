package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/repository"
)

// ProductStore Store de productos más el ajuste de stock del puerto.
type ProductStore struct {
	*Store[*entity.Product]
}

// NewProductStore construye el store de productos.
func NewProductStore() *ProductStore {
	return &ProductStore{Store: NewStore(func(p *entity.Product) *entity.Product {
		c := *p
		if p.BrandID != nil {
			v := *p.BrandID
			c.BrandID = &v
		}
		if p.CategoryID != nil {
			v := *p.CategoryID
			c.CategoryID = &v
		}
		if p.ProviderID != nil {
			v := *p.ProviderID
			c.ProviderID = &v
		}
		return &c
	})}
}

// AdjustStock suma delta al stock del producto.
func (s *ProductStore) AdjustStock(ctx context.Context, id int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	c := s.clone(p)
	c.Stock += delta
	s.rows[id] = c
	return nil
}

// RecordStore repos de documentos (ventas, entradas, movimientos) en memoria.
type RecordStore struct {
	mu           sync.Mutex
	nextID       int64
	sales        map[int64]*entity.Sale
	stockEntries map[int64]*entity.StockEntry
	transactions map[int64]*entity.Transaction
	products     *ProductStore
}

// NewRecordStore construye los repos de documentos; products se necesita para
// correr las transacciones de venta/entrada contra el mismo estado.
func NewRecordStore(products *ProductStore) *RecordStore {
	return &RecordStore{
		sales:        make(map[int64]*entity.Sale),
		stockEntries: make(map[int64]*entity.StockEntry),
		transactions: make(map[int64]*entity.Transaction),
		products:     products,
	}
}

func (r *RecordStore) Create(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c := *sale
	c.ID = r.nextID
	for i := range c.Lines {
		c.Lines[i].SaleID = c.ID
		c.Lines[i].ID = int64(i + 1)
	}
	r.sales[c.ID] = &c
	return &c, nil
}

func (r *RecordStore) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *RecordStore) ListByDay(ctx context.Context, day time.Time, limit, offset int) ([]*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Sale
	y, m, d := day.Date()
	for _, s := range r.sales {
		sy, sm, sd := s.CreatedAt.Date()
		if sy == y && sm == m && sd == d {
			c := *s
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

// saleEntries / saleTxs vistas tipadas para los runners.
type stockEntryRepo struct{ r *RecordStore }

func (s stockEntryRepo) Create(ctx context.Context, e *entity.StockEntry) (*entity.StockEntry, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	s.r.nextID++
	c := *e
	c.ID = s.r.nextID
	s.r.stockEntries[c.ID] = &c
	return &c, nil
}

func (s stockEntryRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error) {
	s.r.mu.Lock()
	defer s.r.mu.Unlock()
	var out []*entity.StockEntry
	for _, e := range s.r.stockEntries {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

type transactionRepo struct{ r *RecordStore }

func (t transactionRepo) Create(ctx context.Context, tr *entity.Transaction) (*entity.Transaction, error) {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()
	t.r.nextID++
	c := *tr
	c.ID = t.r.nextID
	t.r.transactions[c.ID] = &c
	return &c, nil
}

func (t transactionRepo) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*entity.Transaction, error) {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()
	var out []*entity.Transaction
	for _, tr := range t.r.transactions {
		if tr.AccountID == accountID {
			c := *tr
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

// StockEntries vista del puerto StockEntryRepository.
func (r *RecordStore) StockEntries() repository.StockEntryRepository { return stockEntryRepo{r} }

// Transactions vista del puerto TransactionRepository.
func (r *RecordStore) Transactions() repository.TransactionRepository { return transactionRepo{r} }

// recordSnapshot estado de documentos y productos antes de una transacción.
// Los mapas se copian en shallow porque ninguna operación muta los valores en
// el lugar: Create guarda punteros nuevos y AdjustStock clona antes de escribir.
type recordSnapshot struct {
	nextID       int64
	sales        map[int64]*entity.Sale
	stockEntries map[int64]*entity.StockEntry
	transactions map[int64]*entity.Transaction
	products     map[int64]*entity.Product
}

func (r *RecordStore) snapshot() *recordSnapshot {
	r.mu.Lock()
	snap := &recordSnapshot{
		nextID:       r.nextID,
		sales:        make(map[int64]*entity.Sale, len(r.sales)),
		stockEntries: make(map[int64]*entity.StockEntry, len(r.stockEntries)),
		transactions: make(map[int64]*entity.Transaction, len(r.transactions)),
	}
	for id, s := range r.sales {
		snap.sales[id] = s
	}
	for id, e := range r.stockEntries {
		snap.stockEntries[id] = e
	}
	for id, t := range r.transactions {
		snap.transactions[id] = t
	}
	r.mu.Unlock()

	r.products.mu.Lock()
	snap.products = r.products.snapshotLocked()
	r.products.mu.Unlock()
	return snap
}

func (r *RecordStore) restore(snap *recordSnapshot) {
	r.mu.Lock()
	r.nextID = snap.nextID
	r.sales = snap.sales
	r.stockEntries = snap.stockEntries
	r.transactions = snap.transactions
	r.mu.Unlock()

	r.products.mu.Lock()
	r.products.restoreLocked(snap.products)
	r.products.mu.Unlock()
}

// RunSale saca snapshot de documentos y productos y restaura todo si fn falla,
// igual que el rollback de la transacción real.
func (r *RecordStore) RunSale(ctx context.Context, fn func(sales repository.SaleRepository, products repository.ProductRepository, txs repository.TransactionRepository) error) error {
	snap := r.snapshot()
	if err := fn(r, r.products, transactionRepo{r}); err != nil {
		r.restore(snap)
		return err
	}
	return nil
}

// RunStockEntry ídem RunSale.
func (r *RecordStore) RunStockEntry(ctx context.Context, fn func(entries repository.StockEntryRepository, products repository.ProductRepository) error) error {
	snap := r.snapshot()
	if err := fn(stockEntryRepo{r}, r.products); err != nil {
		r.restore(snap)
		return err
	}
	return nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && len(in) > limit {
		in = in[:limit]
	}
	return in
}
