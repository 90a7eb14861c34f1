package service_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"devclub-portal/app/models"
	"devclub-portal/app/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// --- SETUP HELPERS ---

func setupApp() *fiber.App {
	return fiber.New()
}

func fixtures(t *testing.T) *models.Dataset {
	t.Helper()
	ds, err := memory.LoadDataset()
	require.NoError(t, err)
	return ds
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
