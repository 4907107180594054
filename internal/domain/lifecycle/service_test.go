package lifecycle_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrapos/backoffice-api/internal/domain"
	"github.com/barrapos/backoffice-api/internal/domain/entity"
	"github.com/barrapos/backoffice-api/internal/domain/lifecycle"
	"github.com/barrapos/backoffice-api/internal/infrastructure/memory"
)

// ── fixtures ────────────────────────────────────────────────────────────────

// brandFixture servicio de marcas con productos cableados como dependientes
// (fk anulable: clear-link disponible).
func brandFixture() (*lifecycle.Service[*entity.Brand], *memory.Store[*entity.Brand], *memory.ProductStore) {
	brands := memory.NewBrandStore()
	products := memory.NewProductStore()
	memory.WireProductsToCatalog(products, brands, memory.NewCategoryStore(), memory.NewProviderStore())
	svc := lifecycle.NewService(lifecycle.Config[*entity.Brand]{
		Kind:       "brand",
		Dependents: []lifecycle.DependentSpec{{Kind: "product", FK: "brand_id", Nullable: true}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyClearLink, lifecycle.StrategyCascade},
	}, brands, nil)
	return svc, brands, products
}

// accountFixture servicio de cuentas con medios de pago cableados (fk no
// anulable: solo cascada).
func accountFixture() (*lifecycle.Service[*entity.Account], *memory.Store[*entity.Account], *memory.Store[*entity.PaymentMethod]) {
	accounts := memory.NewAccountStore()
	methods := memory.NewPaymentMethodStore()
	memory.WirePaymentMethodsToAccounts(accounts, methods)
	svc := lifecycle.NewService(lifecycle.Config[*entity.Account]{
		Kind:       "account",
		Dependents: []lifecycle.DependentSpec{{Kind: "payment_method", FK: "account_id", Nullable: false}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyCascade},
	}, accounts, nil)
	return svc, accounts, methods
}

func mustCreateBrand(t *testing.T, svc *lifecycle.Service[*entity.Brand], name string) *entity.Brand {
	t.Helper()
	b, err := svc.Create(context.Background(), &entity.Brand{Name: name})
	require.NoError(t, err, "la marca %q debería crearse sin conflicto", name)
	return b
}

func mustCreateAccount(t *testing.T, svc *lifecycle.Service[*entity.Account], name string) *entity.Account {
	t.Helper()
	a, err := svc.Create(context.Background(), &entity.Account{Name: name})
	require.NoError(t, err, "la cuenta %q debería crearse sin conflicto", name)
	return a
}

// insertProduct inserta un producto activo directo en el store, vinculado a
// la marca dada.
func insertProduct(t *testing.T, products *memory.ProductStore, code int64, brandID *int64) *entity.Product {
	t.Helper()
	p := &entity.Product{Code: code, Name: "producto " + strconv.FormatInt(code, 10), BrandID: brandID, Active: true}
	p.NormalizedKey = lifecycle.Normalize(p.NaturalKey())
	created, err := products.Insert(context.Background(), p)
	require.NoError(t, err)
	return created
}

// insertMethod inserta un medio de pago activo apuntando a la cuenta dada.
func insertMethod(t *testing.T, methods *memory.Store[*entity.PaymentMethod], name string, accountID int64) *entity.PaymentMethod {
	t.Helper()
	m := &entity.PaymentMethod{Name: name, AccountID: accountID, Active: true}
	m.NormalizedKey = lifecycle.Normalize(m.NaturalKey())
	created, err := methods.Insert(context.Background(), m)
	require.NoError(t, err)
	return created
}

// ── unicidad en create ──────────────────────────────────────────────────────

// TestCreateDuplicadoActivo un duplicado contra un activo es conflicto duro,
// con el id del poseedor para que el cliente pueda mostrarlo.
func TestCreateDuplicadoActivo(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")

	_, err := svc.Create(ctx, &entity.Brand{Name: "NIKE"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict, "las variantes de mayúsculas deben chocar")
	assert.False(t, conflict.Inactive, "el duplicado está activo")
	assert.Equal(t, nike.ID, conflict.ExistingID)
	assert.Equal(t, "BRAND_EXISTS_ACTIVE", conflict.Code())
	assert.Equal(t, 1, brands.Len(), "el conflicto no debe insertar fila")
}

// TestCreateDuplicadoInactivoSeReporta un duplicado contra un inactivo se
// reporta como recuperable pero nunca se auto-reactiva ni se auto-fusiona.
func TestCreateDuplicadoInactivoSeReporta(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, nike.ID, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &entity.Brand{Name: "nike"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.Inactive, "el duplicado inactivo debe reportarse como reactivable")
	assert.Equal(t, nike.ID, conflict.ExistingID)
	assert.Equal(t, "BRAND_EXISTS_INACTIVE", conflict.Code())

	// Sin efectos laterales: misma fila, sigue inactiva.
	assert.Equal(t, 1, brands.Len())
	got, err := svc.Get(ctx, nike.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive(), "el conflicto jamás reactiva al viejo")
}

// TestCreateNormalizaClave diacríticos y espacios no evaden la unicidad.
func TestCreateNormalizaClave(t *testing.T) {
	svc, _, _ := brandFixture()
	ctx := context.Background()

	pena := mustCreateBrand(t, svc, "  Peña   Negra ")
	assert.Equal(t, "pena negra", pena.NormalizedKey)

	_, err := svc.Create(ctx, &entity.Brand{Name: "pena negra"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict, "la forma sin diacríticos debe chocar con la acentuada")
	assert.Equal(t, pena.ID, conflict.ExistingID)
}

// TestCreateClavesDistintasNoChocan sanity: claves distintas conviven.
func TestCreateClavesDistintasNoChocan(t *testing.T) {
	svc, brands, _ := brandFixture()

	mustCreateBrand(t, svc, "Nike")
	mustCreateBrand(t, svc, "Adidas")
	assert.Equal(t, 2, brands.Len())
}

// ── update ──────────────────────────────────────────────────────────────────

// TestUpdateClaveEnConflicto renombrar hacia una clave ocupada es conflicto.
func TestUpdateClaveEnConflicto(t *testing.T) {
	svc, _, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")
	adidas := mustCreateBrand(t, svc, "Adidas")

	_, err := svc.Update(ctx, adidas.ID, func(b *entity.Brand) error {
		b.Name = "nike"
		return nil
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, nike.ID, conflict.ExistingID)

	// El registro no cambió.
	got, err := svc.Get(ctx, adidas.ID)
	require.NoError(t, err)
	assert.Equal(t, "Adidas", got.Name)
}

// TestUpdateMismaClaveNormalizada cambiar solo la presentación (mayúsculas,
// acentos) no reevalúa unicidad y nunca choca consigo mismo.
func TestUpdateMismaClaveNormalizada(t *testing.T) {
	svc, _, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")

	got, err := svc.Update(ctx, nike.ID, func(b *entity.Brand) error {
		b.Name = "NIKE"
		return nil
	})
	require.NoError(t, err, "la clave normalizada no cambió: no hay conflicto posible")
	assert.Equal(t, "NIKE", got.Name)
	assert.Equal(t, "nike", got.NormalizedKey)
}

// TestUpdateNoEncontrado actualizar un id inexistente es ErrNotFound.
func TestUpdateNoEncontrado(t *testing.T) {
	svc, _, _ := brandFixture()

	_, err := svc.Update(context.Background(), 999, func(b *entity.Brand) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── deactivate ──────────────────────────────────────────────────────────────

// TestDeactivateNuncaBorra la fila sigue existiendo, solo cambia el flag.
func TestDeactivateNuncaBorra(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")
	require.Equal(t, 1, brands.Len())

	got, err := svc.Deactivate(ctx, nike.ID, nil)
	require.NoError(t, err)
	assert.False(t, got.IsActive())
	assert.Equal(t, 1, brands.Len(), "desactivar jamás elimina la fila")

	// Sigue legible por id.
	found, err := svc.Get(ctx, nike.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nike", found.Name)
}

// TestDeactivateIdempotente repetir la desactivación es un no-op exitoso.
func TestDeactivateIdempotente(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, nike.ID, nil)
	require.NoError(t, err)

	got, err := svc.Deactivate(ctx, nike.ID, nil)
	require.NoError(t, err, "el reintento sobre un inactivo debe ser exitoso")
	assert.False(t, got.IsActive())
	assert.Equal(t, 1, brands.Len())
}

// TestDeactivateReportaInactivoEnCreate tras desactivar, un create sobre la
// misma clave no pasa en silencio: se reporta el inactivo reactivable.
func TestDeactivateReportaInactivoEnCreate(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	old := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, old.ID, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &entity.Brand{Name: "Nike"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.Inactive)
	assert.Equal(t, 1, brands.Len())
}

// ── reactivate ──────────────────────────────────────────────────────────────

// TestReactivateMismoID el ciclo desactivar/reactivar conserva id e historia.
func TestReactivateMismoID(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, nike.ID, nil)
	require.NoError(t, err)

	got, err := svc.Reactivate(ctx, nike.ID)
	require.NoError(t, err)
	assert.Equal(t, nike.ID, got.ID, "reactivar nunca crea fila nueva")
	assert.True(t, got.IsActive())
	assert.Equal(t, 1, brands.Len())
}

// TestReactivateYaActivo reactivar un activo es conflicto, no éxito silencioso.
func TestReactivateYaActivo(t *testing.T) {
	svc, _, _ := brandFixture()

	nike := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Reactivate(context.Background(), nike.ID)

	var already *domain.AlreadyActiveError
	require.ErrorAs(t, err, &already, "suele indicar estado stale del cliente")
	assert.Equal(t, nike.ID, already.ID)
}

// TestReactivateClaveOcupada si otro activo posee la clave, reactivar se
// rehúsa y señala al poseedor: el camino es ReactivateSwap.
func TestReactivateClaveOcupada(t *testing.T) {
	svc, _, _ := brandFixture()
	ctx := context.Background()

	old := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, old.ID, nil)
	require.NoError(t, err)
	holder := mustCreateBrand(t, svc, "nike")

	_, err = svc.Reactivate(ctx, old.ID)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.False(t, conflict.Inactive)
	assert.Equal(t, holder.ID, conflict.ExistingID)

	// Nada cambió.
	got, err := svc.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive())
}

// TestReactivateConOtrosInactivos varios inactivos pueden compartir clave;
// reactivar uno de ellos es legal mientras ningún activo la posea.
func TestReactivateConOtrosInactivos(t *testing.T) {
	svc, _, _ := brandFixture()
	ctx := context.Background()

	first := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, first.ID, nil)
	require.NoError(t, err)
	second := mustCreateBrand(t, svc, "Nike ")
	_, err = svc.Deactivate(ctx, second.ID, nil)
	require.NoError(t, err)

	got, err := svc.Reactivate(ctx, first.ID)
	require.NoError(t, err, "la unicidad solo aplica entre activos")
	assert.True(t, got.IsActive())
}

// ── reactivate-swap ─────────────────────────────────────────────────────────

// TestReactivateSwap el par atómico: el poseedor se desactiva y el objetivo
// vuelve a activo en la misma operación.
func TestReactivateSwap(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	old := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, old.ID, nil)
	require.NoError(t, err)
	holder := mustCreateBrand(t, svc, "NIKE")

	got, err := svc.ReactivateSwap(ctx, old.ID, holder.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, old.ID, got.ID)
	assert.True(t, got.IsActive())

	displaced, err := svc.Get(ctx, holder.ID)
	require.NoError(t, err)
	assert.False(t, displaced.IsActive(), "el poseedor debe quedar desactivado")
	assert.Equal(t, 2, brands.Len())
}

// TestReactivateSwapPrecondiciones cada violación aborta sin efecto.
func TestReactivateSwapPrecondiciones(t *testing.T) {
	svc, _, _ := brandFixture()
	ctx := context.Background()

	nikeInactive := mustCreateBrand(t, svc, "Nike")
	_, err := svc.Deactivate(ctx, nikeInactive.ID, nil)
	require.NoError(t, err)
	nikeHolder := mustCreateBrand(t, svc, "nike")
	adidas := mustCreateBrand(t, svc, "Adidas")

	t.Run("current_no_posee_la_clave", func(t *testing.T) {
		_, err := svc.ReactivateSwap(ctx, nikeInactive.ID, adidas.ID, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidSwap)
	})

	t.Run("current_inactivo", func(t *testing.T) {
		other := mustCreateBrand(t, svc, "Puma")
		_, err := svc.Deactivate(ctx, other.ID, nil)
		require.NoError(t, err)
		_, err = svc.ReactivateSwap(ctx, nikeInactive.ID, other.ID, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidSwap)
	})

	t.Run("objetivo_ya_activo", func(t *testing.T) {
		_, err := svc.ReactivateSwap(ctx, adidas.ID, nikeHolder.ID, nil)
		var already *domain.AlreadyActiveError
		assert.ErrorAs(t, err, &already)
	})

	t.Run("sin_efecto_parcial", func(t *testing.T) {
		holder, err := svc.Get(ctx, nikeHolder.ID)
		require.NoError(t, err)
		assert.True(t, holder.IsActive(), "tras los intentos fallidos el poseedor sigue activo")
		target, err := svc.Get(ctx, nikeInactive.ID)
		require.NoError(t, err)
		assert.False(t, target.IsActive(), "y el objetivo sigue inactivo")
	})
}

// TestReactivateSwapAtomico si un paso interno falla, la transacción revierte
// todo: ni el objetivo se activa ni el poseedor ni sus dependientes cambian.
// Se fuerza el fallo configurando clear-link sobre una fk no anulable.
func TestReactivateSwapAtomico(t *testing.T) {
	accounts := memory.NewAccountStore()
	methods := memory.NewPaymentMethodStore()
	memory.WirePaymentMethodsToAccounts(accounts, methods)
	svc := lifecycle.NewService(lifecycle.Config[*entity.Account]{
		Kind:       "account",
		Dependents: []lifecycle.DependentSpec{{Kind: "payment_method", FK: "account_id", Nullable: false}},
		Strategies: []lifecycle.Strategy{lifecycle.StrategyCascade, lifecycle.StrategyClearLink},
	}, accounts, nil)
	ctx := context.Background()

	old := mustCreateAccount(t, svc, "Caja")
	_, err := svc.Deactivate(ctx, old.ID, nil)
	require.NoError(t, err)
	holder := mustCreateAccount(t, svc, "caja")
	method := insertMethod(t, methods, "Efectivo", holder.ID)

	strategy := lifecycle.StrategyClearLink
	_, err = svc.ReactivateSwap(ctx, old.ID, holder.ID, &strategy)
	require.Error(t, err, "clear-link sobre fk no anulable debe fallar dentro de la transacción")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Rollback completo.
	gotHolder, err := svc.Get(ctx, holder.ID)
	require.NoError(t, err)
	assert.True(t, gotHolder.IsActive(), "el poseedor no debe quedar desactivado a medias")
	gotOld, err := svc.Get(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, gotOld.IsActive(), "el objetivo no debe quedar activado a medias")
	m, found, err := methods.FindByID(ctx, method.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, m.IsActive(), "el dependiente tampoco debe tocarse")
}

// TestReactivateSwapConDependientes el desplazado puede tener dependientes
// propios: aplica la misma negociación de estrategia que una desactivación.
func TestReactivateSwapConDependientes(t *testing.T) {
	svc, _, methods := accountFixture()
	ctx := context.Background()

	old := mustCreateAccount(t, svc, "Caja")
	_, err := svc.Deactivate(ctx, old.ID, nil)
	require.NoError(t, err)
	holder := mustCreateAccount(t, svc, "caja")
	method := insertMethod(t, methods, "Efectivo", holder.ID)

	// Sin estrategia: bloqueado con el plan completo.
	_, err = svc.ReactivateSwap(ctx, old.ID, holder.ID, nil)
	var depErr *domain.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, holder.ID, depErr.ID, "el bloqueado es el desplazado, no el objetivo")
	assert.Equal(t, map[string]int{"payment_method": 1}, depErr.Counts)

	// Con cascada: swap y dependientes desactivados en una sola transacción.
	strategy := lifecycle.StrategyCascade
	got, err := svc.ReactivateSwap(ctx, old.ID, holder.ID, &strategy)
	require.NoError(t, err)
	assert.True(t, got.IsActive())
	m, found, err := methods.FindByID(ctx, method.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, m.IsActive(), "la cascada alcanza a los dependientes del desplazado")
}

// ── guard de dependientes ───────────────────────────────────────────────────

// TestDeactivateBloqueadoPorDependientes sin estrategia el guard devuelve el
// plan como error accionable: conteos por tipo y estrategias válidas.
func TestDeactivateBloqueadoPorDependientes(t *testing.T) {
	svc, _, methods := accountFixture()
	ctx := context.Background()

	acct := mustCreateAccount(t, svc, "Caja Principal")
	insertMethod(t, methods, "Efectivo", acct.ID)
	insertMethod(t, methods, "Tarjeta", acct.ID)

	_, err := svc.Deactivate(ctx, acct.ID, nil)
	var depErr *domain.DependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, map[string]int{"payment_method": 2}, depErr.Counts)
	assert.Equal(t, []string{"cascade-deactivate-dependents"}, depErr.Strategies)

	got, err := svc.Get(ctx, acct.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive(), "el bloqueo no debe desactivar nada")
}

// TestDeactivateCancelExplicito cancel equivale a no elegir: mismo bloqueo.
func TestDeactivateCancelExplicito(t *testing.T) {
	svc, _, methods := accountFixture()
	ctx := context.Background()

	acct := mustCreateAccount(t, svc, "Caja")
	insertMethod(t, methods, "Efectivo", acct.ID)

	strategy := lifecycle.StrategyCancel
	_, err := svc.Deactivate(ctx, acct.ID, &strategy)
	var depErr *domain.DependencyError
	assert.ErrorAs(t, err, &depErr)
}

// TestDeactivateCascada la cascada desactiva dependientes y objetivo juntos.
func TestDeactivateCascada(t *testing.T) {
	svc, _, methods := accountFixture()
	ctx := context.Background()

	acct := mustCreateAccount(t, svc, "Caja")
	m1 := insertMethod(t, methods, "Efectivo", acct.ID)
	m2 := insertMethod(t, methods, "Tarjeta", acct.ID)

	strategy := lifecycle.StrategyCascade
	got, err := svc.Deactivate(ctx, acct.ID, &strategy)
	require.NoError(t, err)
	assert.False(t, got.IsActive())

	for _, id := range []int64{m1.ID, m2.ID} {
		m, found, err := methods.FindByID(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		assert.False(t, m.IsActive(), "el medio de pago %d debe caer en cascada", id)
	}
	assert.Equal(t, 2, methods.Len(), "la cascada desactiva, no borra")
}

// TestDeactivateClearLink con fk anulable, clear-link suelta el vínculo y los
// dependientes siguen activos.
func TestDeactivateClearLink(t *testing.T) {
	svc, _, products := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")
	p := insertProduct(t, products, 100, &nike.ID)

	strategy := lifecycle.StrategyClearLink
	got, err := svc.Deactivate(ctx, nike.ID, &strategy)
	require.NoError(t, err)
	assert.False(t, got.IsActive())

	after, found, err := products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, after.IsActive(), "el producto sobrevive sin marca")
	assert.Nil(t, after.BrandID, "la fk debe quedar anulada")
}

// TestDeactivateEstrategiaNoConfigurada una estrategia fuera del conjunto
// permitido no se ejecuta: vuelve el bloqueo con las válidas.
func TestDeactivateEstrategiaNoConfigurada(t *testing.T) {
	svc, _, methods := accountFixture()
	ctx := context.Background()

	acct := mustCreateAccount(t, svc, "Caja")
	method := insertMethod(t, methods, "Efectivo", acct.ID)

	// clear-link no está configurada para cuentas (fk no anulable).
	strategy := lifecycle.StrategyClearLink
	_, err := svc.Deactivate(ctx, acct.ID, &strategy)
	var depErr *domain.DependencyError
	require.ErrorAs(t, err, &depErr)

	m, found, err := methods.FindByID(ctx, method.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, m.IsActive(), "nada debe ejecutarse con estrategia inválida")
}

// TestDeactivateDependientesInactivosNoBloquean solo los dependientes vivos
// cuentan para el guard.
func TestDeactivateDependientesInactivosNoBloquean(t *testing.T) {
	svc, _, methods := accountFixture()
	ctx := context.Background()

	acct := mustCreateAccount(t, svc, "Caja")
	m := insertMethod(t, methods, "Efectivo", acct.ID)
	require.NoError(t, methods.SetActive(ctx, m.ID, false))

	got, err := svc.Deactivate(ctx, acct.ID, nil)
	require.NoError(t, err, "un dependiente ya inactivo no bloquea")
	assert.False(t, got.IsActive())
}

// ── protección por política ─────────────────────────────────────────────────

func userFixture() (*lifecycle.Service[*entity.User], *memory.Store[*entity.User]) {
	users := memory.NewUserStore()
	svc := lifecycle.NewService(lifecycle.Config[*entity.User]{
		Kind:            "user",
		Protected:       func(u *entity.User) bool { return u.Role == entity.RoleAdmin },
		ProtectedReason: "el usuario administrador no puede desactivarse",
	}, users, nil)
	return svc, users
}

// TestDeactivateProtegido el administrador nunca se desactiva, con o sin
// estrategia: es política fija, no conteo de dependientes.
func TestDeactivateProtegido(t *testing.T) {
	svc, _ := userFixture()
	ctx := context.Background()

	admin, err := svc.Create(ctx, &entity.User{Username: "root", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Deactivate(ctx, admin.ID, nil)
	var protected *domain.ProtectedError
	require.ErrorAs(t, err, &protected)
	assert.Equal(t, admin.ID, protected.ID)

	strategy := lifecycle.StrategyCascade
	_, err = svc.Deactivate(ctx, admin.ID, &strategy)
	assert.ErrorAs(t, err, &protected, "la estrategia no es una vía para saltar la protección")

	got, err := svc.Get(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive())
}

// TestReactivateSwapNoDesplazaProtegido el swap tampoco puede desactivar a un
// registro protegido.
func TestReactivateSwapNoDesplazaProtegido(t *testing.T) {
	svc, _ := userFixture()
	ctx := context.Background()

	old, err := svc.Create(ctx, &entity.User{Username: "root", Role: entity.RoleCashier})
	require.NoError(t, err)
	_, err = svc.Deactivate(ctx, old.ID, nil)
	require.NoError(t, err)

	admin, err := svc.Create(ctx, &entity.User{Username: "ROOT", Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ReactivateSwap(ctx, old.ID, admin.ID, nil)
	var protected *domain.ProtectedError
	require.ErrorAs(t, err, &protected)
	assert.Equal(t, admin.ID, protected.ID)

	got, err := svc.Get(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive(), "el administrador sigue activo tras el intento")
}

// TestCreateCarreraPerdida si el store reporta duplicado en el insert (carrera
// contra un create concurrente), el error vuelve como conflicto tipado.
func TestCreateCarreraPerdida(t *testing.T) {
	svc, brands, _ := brandFixture()
	ctx := context.Background()

	nike := mustCreateBrand(t, svc, "Nike")

	// Insert directo al store simulando al perdedor de la carrera.
	late := &entity.Brand{Name: "Nike", Active: true}
	late.NormalizedKey = lifecycle.Normalize(late.NaturalKey())
	_, err := brands.Insert(ctx, late)
	require.True(t, errors.Is(err, domain.ErrDuplicate), "el índice único es la garantía real")

	_, err = svc.Create(ctx, &entity.Brand{Name: "Nike"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, nike.ID, conflict.ExistingID)
}
