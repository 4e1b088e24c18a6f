package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/petboard/petboard/internal/adapters/handler/http"
	"github.com/petboard/petboard/internal/adapters/repository"
	"github.com/petboard/petboard/internal/core/domain"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := adapterHTTP.NewResourceHandler(repository.SeededDataset())
	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		ResourceHandler: handler,
		StartTime:       time.Now(),
	})
}

func TestListEndpoints(t *testing.T) {
	router := setupRouter()

	paths := []string{"/clients", "/pets", "/vaccinations", "/grooming", "/bookings"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var items []map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
			assert.NotEmpty(t, items)
		})
	}
}

func TestPatchPet(t *testing.T) {
	t.Run("Success: returns the full updated pet", func(t *testing.T) {
		router := setupRouter()

		body := `{"weightKg": 5}`
		req, _ := http.NewRequest(http.MethodPatch, "/pets/1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var pet domain.Pet
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pet))
		assert.Equal(t, 5.0, pet.WeightKg)
		assert.Equal(t, "Bailey", pet.Name, "untouched fields survive the patch")
	})

	t.Run("Error: 404 for unknown pet", func(t *testing.T) {
		router := setupRouter()

		req, _ := http.NewRequest(http.MethodPatch, "/pets/99", bytes.NewBufferString(`{"weightKg": 5}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error: 400 for a non-numeric id", func(t *testing.T) {
		router := setupRouter()

		req, _ := http.NewRequest(http.MethodPatch, "/pets/bailey", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateVaccination(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		router := setupRouter()

		body := `{"petId": 1, "vaccine": "Bordetella", "date": "2025-01-10", "due": "2026-01-10"}`
		req, _ := http.NewRequest(http.MethodPost, "/vaccinations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var created domain.Vaccination
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Bordetella", created.Vaccine)
	})

	t.Run("Error: due before date carries a message field", func(t *testing.T) {
		router := setupRouter()

		body := `{"petId": 1, "vaccine": "Bordetella", "date": "2025-01-10", "due": "2024-01-10"}`
		req, _ := http.NewRequest(http.MethodPost, "/vaccinations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "due date cannot be before the administration date", resp["message"])
	})

	t.Run("Error: missing fields carry a message field", func(t *testing.T) {
		router := setupRouter()

		body := `{"petId": 1, "vaccine": "", "date": "2025-01-10", "due": "2026-01-10"}`
		req, _ := http.NewRequest(http.MethodPost, "/vaccinations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["message"])
	})
}

func TestHealth(t *testing.T) {
	router := setupRouter()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
