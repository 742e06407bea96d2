package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceright/dataset-service/internal/dataset/domain"
	"github.com/traceright/dataset-service/internal/dataset/store"
	"github.com/traceright/dataset-service/internal/dataset/usecase/command"
	"github.com/traceright/dataset-service/internal/dataset/usecase/query"
	"github.com/traceright/dataset-service/pkg/auth"
)

// mapGate authorizes the user ids present in the set.
type mapGate map[uint]bool

func (g mapGate) IsAdmin(_ context.Context, userID uint) (bool, error) {
	return g[userID], nil
}

// The handler registers its Prometheus collectors once per process, so all
// route tests share a single instance.
func TestDatasetHandler(t *testing.T) {
	mem := store.NewMemoryStore()
	gate := mapGate{1: true}

	handler := NewDatasetHandler(
		command.NewSeedDatasetHandler(mem, gate, nil, nil),
		command.NewClearDatasetHandler(mem, gate, nil),
		query.NewGetCountsHandler(mem),
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	adminToken, err := auth.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)
	userToken, err := auth.GenerateToken(2, "user", "user")
	require.NoError(t, err)

	do := func(method, path, token string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	seedBody := map[string]interface{}{
		"suppliers": 2, "warehouses": 1, "materials": 4, "recipes": 1,
		"orders": 3, "batches": 1, "costs": 1, "max_trace_events": 1,
		"inventory_coverage": 1.0, "seed": 42,
	}

	t.Run("seed requires a token", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/seed", "", seedBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("seed rejects a garbage token", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/seed", "not-a-jwt", seedBody)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("seed denies non-admins", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/seed", userToken, seedBody)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("seed succeeds for admins", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/seed", adminToken, seedBody)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Counts map[string]int `json:"counts"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Data.Counts[domain.CollectionSuppliers])
		assert.Equal(t, 3, resp.Data.Counts[domain.CollectionOrders])
	})

	t.Run("counts reflect the seeded data", func(t *testing.T) {
		rec := do(http.MethodGet, "/admin/dataset/counts", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool             `json:"success"`
			Data    map[string]int64 `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.Data[domain.CollectionSuppliers])
	})

	t.Run("clear rejects a wrong confirmation code", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/clear", adminToken, map[string]string{
			"confirmation_code": "definitely-wrong",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("clear denies non-admins", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/clear", userToken, map[string]string{
			"confirmation_code": domain.ClearConfirmationCode,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("clear empties the dataset", func(t *testing.T) {
		rec := do(http.MethodPost, "/admin/dataset/clear", adminToken, map[string]string{
			"confirmation_code": domain.ClearConfirmationCode,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		count, err := mem.Count(context.Background(), domain.CollectionSuppliers)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}
