package fiber

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"devclub-portal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupFiber(t *testing.T) {
	app := SetupFiber(config.Config{CORSOrigins: "https://club.example"})
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("unexpected") })

	t.Run("request id and cors headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ok", nil)
		req.Header.Set("Origin", "https://club.example")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
		assert.Equal(t, "https://club.example", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})

	t.Run("fiber errors keep their code", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "short and stout", body["error"])
	})

	t.Run("plain errors are 500", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})

	t.Run("panics are recovered", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestNormalizeOrigins(t *testing.T) {
	assert.Equal(t, "*", normalizeOrigins(""))
	assert.Equal(t, "*", normalizeOrigins(" , "))
	assert.Equal(t, "https://a.dev,https://b.dev", normalizeOrigins(" https://a.dev , https://b.dev"))
}
