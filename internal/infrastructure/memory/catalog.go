package memory

import "github.com/barrapos/backoffice-api/internal/domain/entity"

// Constructores por entidad de catálogo. Las structs son planas: el clone es
// una copia de valor (Product es la excepción, ver NewProductStore).

func NewAccountStore() *Store[*entity.Account] {
	return NewStore(func(e *entity.Account) *entity.Account { c := *e; return &c })
}

func NewBarTableStore() *Store[*entity.BarTable] {
	return NewStore(func(e *entity.BarTable) *entity.BarTable { c := *e; return &c })
}

func NewBrandStore() *Store[*entity.Brand] {
	return NewStore(func(e *entity.Brand) *entity.Brand { c := *e; return &c })
}

func NewCategoryStore() *Store[*entity.Category] {
	return NewStore(func(e *entity.Category) *entity.Category { c := *e; return &c })
}

func NewEmployeeStore() *Store[*entity.Employee] {
	return NewStore(func(e *entity.Employee) *entity.Employee { c := *e; return &c })
}

func NewPaymentMethodStore() *Store[*entity.PaymentMethod] {
	return NewStore(func(e *entity.PaymentMethod) *entity.PaymentMethod { c := *e; return &c })
}

func NewProviderStore() *Store[*entity.Provider] {
	return NewStore(func(e *entity.Provider) *entity.Provider { c := *e; return &c })
}

func NewUserStore() *Store[*entity.User] {
	return NewStore(func(e *entity.User) *entity.User { c := *e; return &c })
}

// WirePaymentMethodsToAccounts registra los medios de pago como dependientes
// de las cuentas (fk account_id, no anulable).
func WirePaymentMethodsToAccounts(accounts *Store[*entity.Account], methods *Store[*entity.PaymentMethod]) {
	accounts.RegisterDependent("payment_method", DependentOn(methods,
		func(m *entity.PaymentMethod, _ string) (int64, bool) { return m.AccountID, true },
		nil,
	))
}

// WireProductsToCatalog registra los productos como dependientes de marca,
// categoría y proveedor (fks anulables: clear-link disponible).
func WireProductsToCatalog(products *ProductStore, brands *Store[*entity.Brand], categories *Store[*entity.Category], providers *Store[*entity.Provider]) {
	get := func(p *entity.Product, fk string) (int64, bool) {
		var ref *int64
		switch fk {
		case "brand_id":
			ref = p.BrandID
		case "category_id":
			ref = p.CategoryID
		case "provider_id":
			ref = p.ProviderID
		}
		if ref == nil {
			return 0, false
		}
		return *ref, true
	}
	clear := func(p *entity.Product, fk string) {
		switch fk {
		case "brand_id":
			p.BrandID = nil
		case "category_id":
			p.CategoryID = nil
		case "provider_id":
			p.ProviderID = nil
		}
	}
	h := DependentOn(products.Store, get, clear)
	brands.RegisterDependent("product", h)
	categories.RegisterDependent("product", h)
	providers.RegisterDependent("product", h)
}
