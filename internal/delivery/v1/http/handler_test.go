package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koliko-tech/admin-backend/internal/cfg"
	"github.com/koliko-tech/admin-backend/internal/repository/memstore"
	"github.com/koliko-tech/admin-backend/internal/usecase"
	"github.com/koliko-tech/admin-backend/pkg/logger"
)

const testPassword = "s3cret-test"

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	log := logger.NewSlogLogger()
	store := memstore.NewStore(&cfg.StoreCfg{Seed: true})

	authCfg := &cfg.AuthCfg{
		AdminEmail:    "admin@koliko.com",
		AdminPassword: testPassword,
		SessionTTL:    time.Hour,
	}

	productUC := usecase.NewProductUC(memstore.NewProductRepo(store), nil, log)
	orderUC := usecase.NewOrderUC(memstore.NewOrderRepo(store), log)

	mux := chi.NewMux()
	NewRouter(mux, log).Init(UseCases{
		Auth:      usecase.NewAuthUC(authCfg, log),
		Product:   productUC,
		Order:     orderUC,
		Customer:  usecase.NewCustomerUC(memstore.NewCustomerRepo(store), log),
		Repair:    usecase.NewRepairUC(memstore.NewRepairRepo(store), log),
		Inventory: usecase.NewInventoryUC(memstore.NewInventoryRepo(store), log),
		Promotion: usecase.NewPromotionUC(memstore.NewPromotionRepo(store), log),
		Finance:   usecase.NewFinanceUC(memstore.NewTransactionRepo(store), log),
		Analytics: usecase.NewAnalyticsUC(memstore.NewOrderRepo(store), memstore.NewProductRepo(store), log),
		Settings:  usecase.NewSettingsUC(authCfg.AdminEmail, log),
	})

	return mux
}

func doJSON(t *testing.T, mux *chi.Mux, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, mux *chi.Mux) string {
	t.Helper()

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@koliko.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestLogin_WrongPassword(t *testing.T) {
	mux := newTestRouter(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@koliko.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired(t *testing.T) {
	mux := newTestRouter(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/products/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/v1/products/", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProductLifecycle(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/products/", token, map[string]interface{}{
		"name":     "Trail Blazer X",
		"price":    "59.90",
		"category": "Sports",
		"stock":    20,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID    string `json:"id"`
		Price int64  `json:"priceCents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(5990), created.Price)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, mux, http.MethodPut, "/api/v1/products/"+created.ID, token, map[string]interface{}{
		"name":     "Trail Blazer X",
		"price":    "64.00",
		"category": "Sports",
		"stock":    18,
		"status":   "inactive",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Price  int64  `json:"priceCents"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, int64(6400), updated.Price)
	assert.Equal(t, "inactive", updated.Status)

	rec = doJSON(t, mux, http.MethodDelete, "/api/v1/products/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/api/v1/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProduct_InvalidPrice(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	for _, price := range []string{"", "-5", "12.999", "abc"} {
		rec := doJSON(t, mux, http.MethodPost, "/api/v1/products/", token, map[string]interface{}{
			"name":     "Broken",
			"price":    price,
			"category": "Sneakers",
			"stock":    1,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "price %q", price)
	}
}

func TestAdjustStockFlow(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/inventory/1/adjust", token, map[string]interface{}{
		"adjustment": 5,
		"reason":     "Restock",
		"user":       "admin@koliko.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var log struct {
		ID           string `json:"id"`
		Change       int64  `json:"change"`
		CurrentStock int64  `json:"currentStock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &log))
	assert.Equal(t, int64(5), log.Change)
	assert.Equal(t, int64(50), log.CurrentStock)

	// остаток виден в каталоге
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/products/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []struct {
		ID    string `json:"id"`
		Stock int64  `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	found := false
	for _, p := range products {
		if p.ID == "1" {
			assert.Equal(t, int64(50), p.Stock)
			found = true
		}
	}
	require.True(t, found)

	// журнал пополнился, новая запись первая
	rec = doJSON(t, mux, http.MethodGet, "/api/v1/inventory/logs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var logs []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &logs))
	require.NotEmpty(t, logs)
	assert.Equal(t, log.ID, logs[0].ID)
}

func TestAdjustStock_Validation(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/inventory/1/adjust", token, map[string]interface{}{
		"adjustment": 0,
		"reason":     "Restock",
		"user":       "admin@koliko.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/inventory/1/adjust", token, map[string]interface{}{
		"adjustment": 3,
		"reason":     "Shrinkage",
		"user":       "admin@koliko.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/inventory/missing/adjust", token, map[string]interface{}{
		"adjustment": 3,
		"reason":     "Restock",
		"user":       "admin@koliko.com",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderPatch_InvalidStatus(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPatch, "/api/v1/orders/ORD-7722", token, map[string]interface{}{
		"status": "Teleported",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPromotionToggle(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/promotions/PRO-1/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled struct {
		Disabled bool   `json:"disabled"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Disabled)
	assert.Equal(t, "expired", toggled.Status)

	rec = doJSON(t, mux, http.MethodPost, "/api/v1/promotions/PRO-1/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Disabled)
	assert.Equal(t, "active", toggled.Status)
}

func TestFinanceSummary(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/finance/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		TotalIncome   int64 `json:"totalIncomeCents"`
		TotalExpenses int64 `json:"totalExpensesCents"`
		NetProfit     int64 `json:"netProfitCents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(39246), summary.TotalIncome)
	assert.Equal(t, int64(355800), summary.TotalExpenses)
	assert.Equal(t, summary.TotalIncome-summary.TotalExpenses, summary.NetProfit)
}

func TestAnalyticsRevenue(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/v1/analytics/revenue", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var revenue []struct {
		Month   string `json:"month"`
		Revenue int64  `json:"revenueCents"`
		Orders  int64  `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &revenue))
	require.Len(t, revenue, 1)
	// отменённый ORD-7724 не учитывается
	assert.Equal(t, "Oct", revenue[0].Month)
	assert.Equal(t, int64(39246), revenue[0].Revenue)
	assert.Equal(t, int64(3), revenue[0].Orders)
}

func TestSettings(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPut, "/api/v1/settings/preferences", token, map[string]interface{}{
		"lowStockAlerts": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var prefs struct {
		EmailNotifications bool `json:"emailNotifications"`
		LowStockAlerts     bool `json:"lowStockAlerts"`
		OrderUpdates       bool `json:"orderUpdates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
	// нетронутые настройки сохраняют значения по умолчанию
	assert.True(t, prefs.EmailNotifications)
	assert.False(t, prefs.LowStockAlerts)
	assert.True(t, prefs.OrderUpdates)

	rec = doJSON(t, mux, http.MethodPut, "/api/v1/settings/profile", token, map[string]interface{}{
		"name": "", "email": "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	mux := newTestRouter(t)
	token := login(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/api/v1/products/", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
