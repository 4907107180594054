package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ihttp "github.com/barrapos/backoffice-api/internal/interfaces/http"
)

// TestRequestIDGenerado sin cabecera del cliente, el middleware genera una y
// la devuelve en la respuesta.
func TestRequestIDGenerado(t *testing.T) {
	app := fiber.New()
	app.Use(ihttp.RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(ihttp.HeaderRequestID), "toda respuesta debe llevar id de correlación")
}

// TestRequestIDDelCliente el id que trae el cliente se respeta tal cual.
func TestRequestIDDelCliente(t *testing.T) {
	app := fiber.New()
	app.Use(ihttp.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals("request_id").(string)
		return c.SendString(rid)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(ihttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(ihttp.HeaderRequestID))
}
