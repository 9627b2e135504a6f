package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogapp "github.com/mycofresh/backend/internal/application/catalog"
	financeapp "github.com/mycofresh/backend/internal/application/finance"
	inventoryapp "github.com/mycofresh/backend/internal/application/inventory"
	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/infrastructure/persistence"
	"github.com/mycofresh/backend/internal/interfaces/http/handler"
	"github.com/mycofresh/backend/internal/interfaces/http/middleware"
	"github.com/mycofresh/backend/internal/interfaces/http/router"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Product{}, &catalog.Warehouse{}, &inventory.Record{}, &finance.Expense{}))

	productRepo := persistence.NewGormProductRepository(db)
	warehouseRepo := persistence.NewGormWarehouseRepository(db)
	inventoryRepo := persistence.NewGormInventoryRepository(db)
	expenseRepo := persistence.NewGormExpenseRepository(db)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	handler.RegisterValidators()

	router.NewRouter(engine).
		Register(handler.NewProductHandler(catalogapp.NewProductService(productRepo))).
		Register(handler.NewWarehouseHandler(catalogapp.NewWarehouseService(warehouseRepo, inventoryRepo))).
		Register(handler.NewInventoryHandler(inventoryapp.NewService(inventoryRepo, productRepo, warehouseRepo))).
		Register(handler.NewExpenseHandler(financeapp.NewExpenseService(expenseRepo))).
		Setup()

	return engine, db
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	engine, _ := newTestServer(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{
		"name": "Oyster Mushroom",
		"unit": "kg",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var created catalog.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Oyster Mushroom", created.Name)

	w, env = doJSON(t, engine, http.MethodGet, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
}

func TestProductHandler_DuplicateName(t *testing.T) {
	engine, _ := newTestServer(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{"name": "Shiitake"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{"name": "Shiitake"})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ERR_ALREADY_EXISTS", env.Error.Code)
	assert.Equal(t, "Product with this name already exists", env.Error.Message)
}

func TestProductHandler_ValidationError(t *testing.T) {
	engine, _ := newTestServer(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{"unit": "kg"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.False(t, env.Success)
}

func TestProductHandler_NotFound(t *testing.T) {
	engine, _ := newTestServer(t)

	w, env := doJSON(t, engine, http.MethodGet, "/api/products/prod_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ERR_NOT_FOUND", env.Error.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	engine, _ := newTestServer(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{"name": "Lion's Mane"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created catalog.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, _ = doJSON(t, engine, http.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doJSON(t, engine, http.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInventoryHandler_ReceiveStockRoute(t *testing.T) {
	engine, _ := newTestServer(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{"name": "Button Mushroom"})
	require.Equal(t, http.StatusCreated, w.Code)
	var product catalog.Product
	require.NoError(t, json.Unmarshal(env.Data, &product))

	w, env = doJSON(t, engine, http.MethodPost, "/api/warehouses", gin.H{"name": "Main"})
	require.Equal(t, http.StatusCreated, w.Code)
	var warehouse catalog.Warehouse
	require.NoError(t, json.Unmarshal(env.Data, &warehouse))

	w, _ = doJSON(t, engine, http.MethodPost, "/api/inventory/stock", gin.H{
		"productId":   product.ID,
		"warehouseId": warehouse.ID,
		"quantity":    5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = doJSON(t, engine, http.MethodGet, "/api/inventory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var records []inventoryapp.RecordResponse
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Quantity)
	assert.Equal(t, "Button Mushroom", records[0].ProductName)
}

func TestExpenseHandler_ImportCSVRoute(t *testing.T) {
	engine, _ := newTestServer(t)

	// Wrong content type, but the route must resolve: a 400, never a 404
	w, env := doJSON(t, engine, http.MethodPost, "/api/expenses/import-csv", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
}

func TestWarehouseHandler_DeleteBlockedByStock(t *testing.T) {
	engine, db := newTestServer(t)

	w, env := doJSON(t, engine, http.MethodPost, "/api/warehouses", gin.H{"name": "Cold Room"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created catalog.Warehouse
	require.NoError(t, json.Unmarshal(env.Data, &created))

	record := inventory.NewRecord("prod_1", created.ID, 10)
	require.NoError(t, db.Create(record).Error)

	w, env = doJSON(t, engine, http.MethodDelete, "/api/warehouses/"+created.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Cannot delete warehouse with stock", env.Error.Message)
}
