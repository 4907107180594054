package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrapos/backoffice-api/internal/application/dto"
	"github.com/barrapos/backoffice-api/internal/application/usecase"
	"github.com/barrapos/backoffice-api/internal/infrastructure/memory"
	ihttp "github.com/barrapos/backoffice-api/internal/interfaces/http"
)

// newCatalogApp app con marcas, cuentas y medios de pago montados como en el
// router real.
func newCatalogApp() *fiber.App {
	accounts := memory.NewAccountStore()
	methods := memory.NewPaymentMethodStore()
	memory.WirePaymentMethodsToAccounts(accounts, methods)

	brandUC := usecase.NewBrandUseCase(memory.NewBrandStore(), nil)
	accountUC := usecase.NewAccountUseCase(accounts, nil)
	methodUC := usecase.NewPaymentMethodUseCase(methods, accounts, nil)

	app := fiber.New()
	ihttp.RegisterLifecycleRoutes(app.Group("/brands"), ihttp.LifecycleOps[dto.CreateBrandRequest, dto.UpdateBrandRequest, dto.BrandResponse, dto.BrandListResponse]{
		Create:         brandUC.Create,
		Update:         brandUC.Update,
		Deactivate:     brandUC.Deactivate,
		Reactivate:     brandUC.Reactivate,
		ReactivateSwap: brandUC.ReactivateSwap,
		GetByID:        brandUC.GetByID,
		List:           brandUC.List,
	})
	ihttp.RegisterLifecycleRoutes(app.Group("/accounts"), ihttp.LifecycleOps[dto.CreateAccountRequest, dto.UpdateAccountRequest, dto.AccountResponse, dto.AccountListResponse]{
		Create:         accountUC.Create,
		Update:         accountUC.Update,
		Deactivate:     accountUC.Deactivate,
		Reactivate:     accountUC.Reactivate,
		ReactivateSwap: accountUC.ReactivateSwap,
		GetByID:        accountUC.GetByID,
		List:           accountUC.List,
	})
	ihttp.RegisterLifecycleRoutes(app.Group("/payment-methods"), ihttp.LifecycleOps[dto.CreatePaymentMethodRequest, dto.UpdatePaymentMethodRequest, dto.PaymentMethodResponse, dto.PaymentMethodListResponse]{
		Create:         methodUC.Create,
		Update:         methodUC.Update,
		Deactivate:     methodUC.Deactivate,
		Reactivate:     methodUC.Reactivate,
		ReactivateSwap: methodUC.ReactivateSwap,
		GetByID:        methodUC.GetByID,
		List:           methodUC.List,
	})
	return app
}

// doJSON ejecuta la petición y decodifica el cuerpo en un mapa genérico.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "el cuerpo debe ser JSON: %s", raw)
	}
	return resp.StatusCode, out
}

// TestRoutesCreateYConflicto el conflicto viaja con código estructurado y el
// id del registro en colisión.
func TestRoutesCreateYConflicto(t *testing.T) {
	app := newCatalogApp()

	status, created := doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "Nike"})
	require.Equal(t, http.StatusCreated, status)
	id := created["id"].(float64)

	status, body := doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "NIKE"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "BRAND_EXISTS_ACTIVE", body["code"])
	assert.Equal(t, id, body["existing_id"], "el payload permite al cliente enlazar al poseedor")
}

// TestRoutesCicloCompleto desactivar, chocar con el inactivo y reactivar,
// todo por HTTP.
func TestRoutesCicloCompleto(t *testing.T) {
	app := newCatalogApp()

	_, created := doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "Nike"})
	id := created["id"].(float64)

	status, body := doJSON(t, app, http.MethodPost, "/brands/1/deactivate", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["active"])

	status, body = doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "nike"})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "BRAND_EXISTS_INACTIVE", body["code"])
	assert.Equal(t, id, body["existing_id"])

	status, body = doJSON(t, app, http.MethodPost, "/brands/1/reactivate", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["active"])

	// Reactivar dos veces es conflicto, no éxito silencioso.
	status, body = doJSON(t, app, http.MethodPost, "/brands/1/reactivate", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_ACTIVE", body["code"])
}

// TestRoutesDependencias el bloqueo llega con conteos y estrategias; el
// reintento con estrategia en el cuerpo ejecuta la cascada.
func TestRoutesDependencias(t *testing.T) {
	app := newCatalogApp()

	_, acc := doJSON(t, app, http.MethodPost, "/accounts/", map[string]any{"name": "Caja"})
	accID := acc["id"].(float64)
	status, _ := doJSON(t, app, http.MethodPost, "/payment-methods/", map[string]any{"name": "Efectivo", "account_id": accID})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/accounts/1/deactivate", nil)
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "HAS_ACTIVE_DEPENDENTS", body["code"])
	counts := body["counts"].(map[string]any)
	assert.Equal(t, float64(1), counts["payment_method"])
	assert.Contains(t, body["strategies"], "cascade-deactivate-dependents")

	status, body = doJSON(t, app, http.MethodPost, "/accounts/1/deactivate", map[string]any{
		"strategy": "cascade-deactivate-dependents",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["active"])

	status, body = doJSON(t, app, http.MethodGet, "/payment-methods/1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["active"], "la cascada alcanzó al medio de pago")
}

// TestRoutesSwap el swap por HTTP exige current_id y devuelve el reactivado.
func TestRoutesSwap(t *testing.T) {
	app := newCatalogApp()

	doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "Nike"})
	doJSON(t, app, http.MethodPost, "/brands/1/deactivate", nil)
	doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "nike"})

	status, body := doJSON(t, app, http.MethodPost, "/brands/1/reactivate-swap", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	status, body = doJSON(t, app, http.MethodPost, "/brands/1/reactivate-swap", map[string]any{"current_id": 2})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, true, body["active"])

	status, body = doJSON(t, app, http.MethodGet, "/brands/2", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["active"])
}

// TestRoutesValidaciones ids no numéricos y estrategias desconocidas son 400.
func TestRoutesValidaciones(t *testing.T) {
	app := newCatalogApp()

	status, body := doJSON(t, app, http.MethodGet, "/brands/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MISSING_ID", body["code"])

	doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "Nike"})
	status, body = doJSON(t, app, http.MethodPost, "/brands/1/deactivate", map[string]any{"strategy": "drop"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_STRATEGY", body["code"])

	status, body = doJSON(t, app, http.MethodGet, "/brands/99", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// TestRoutesListFiltro only_active filtra sin tocar el listado completo.
func TestRoutesListFiltro(t *testing.T) {
	app := newCatalogApp()

	doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "Nike"})
	doJSON(t, app, http.MethodPost, "/brands/", map[string]any{"name": "Adidas"})
	doJSON(t, app, http.MethodPost, "/brands/2/deactivate", nil)

	status, body := doJSON(t, app, http.MethodGet, "/brands/?only_active=true", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"], 1)

	status, body = doJSON(t, app, http.MethodGet, "/brands/", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"], 2)
}
