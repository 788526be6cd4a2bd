package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aisyahz/tepico88/configs"
	"github.com/aisyahz/tepico88/entity"
	"github.com/aisyahz/tepico88/routes"
	"github.com/aisyahz/tepico88/ws"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.MenuItem{}, &entity.Preorder{}))

	p := func(v int64) *int64 { return &v }
	require.NoError(t, db.Create(&[]entity.MenuItem{
		{Category: "Food", Name: "Spaghetti Alfredo Chicken", Price: p(1200)},
		{Category: "Drink", Name: "House Drink", Price: p(350)},
	}).Error)

	cfg := &configs.Config{
		AdminPass:      "tepico2025",
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		SalesTargetSen: 50000,
	}

	hub := ws.NewFeedHub(zap.NewNop().Sugar())
	go hub.Run()

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, hub, zap.NewNop().Sugar())
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func staffToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"password": "tepico2025"})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Data.Token)
	return out.Data.Token
}

func TestMenuEndpoints(t *testing.T) {
	r, _ := newTestApp(t)

	w := doJSON(t, r, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var flat struct {
		Items []entity.MenuItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &flat))
	require.Len(t, flat.Items, 2)
	// drinks sort before food
	assert.Equal(t, "House Drink", flat.Items[0].Name)

	w = doJSON(t, r, http.MethodGet, "/menu/grouped", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grouped struct {
		Groups []struct {
			Category string            `json:"category"`
			Items    []entity.MenuItem `json:"items"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grouped))
	require.Len(t, grouped.Groups, 2)
}

func TestSubmitValidationReturns400(t *testing.T) {
	r, db := newTestApp(t)

	w := doJSON(t, r, http.MethodPost, "/preorders", "", gin.H{
		"customerName": "   ",
		"pickupTime":   "8 PM",
		"items":        []gin.H{{"menuItemId": 1, "qty": 2}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var n int64
	require.NoError(t, db.Model(&entity.Preorder{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestSubmitReturnsReceipt(t *testing.T) {
	r, db := newTestApp(t)

	w := doJSON(t, r, http.MethodPost, "/preorders", "", gin.H{
		"customerName": "Aisyah",
		"pickupTime":   "8:30 PM",
		"items": []gin.H{
			{"menuItemId": 1, "qty": 2},
			{"menuItemId": 2, "qty": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		Data struct {
			DisplayID string `json:"displayId"`
			TotalSen  int64  `json:"totalSen"`
			Lines     []any  `json:"lines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Data.DisplayID)
	assert.Equal(t, int64(2750), out.Data.TotalSen)
	assert.Len(t, out.Data.Lines, 2)

	var n int64
	require.NoError(t, db.Model(&entity.Preorder{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestManageRequiresGate(t *testing.T) {
	r, db := newTestApp(t)

	row := entity.Preorder{CustomerName: "Aina", MenuItemID: 1, Quantity: 1, PickupTime: "8 PM", Status: entity.StatusPending}
	require.NoError(t, db.Create(&row).Error)
	path := fmt.Sprintf("/manage/preorders/%d/status", row.ID)

	// no token
	w := doJSON(t, r, http.MethodPatch, path, "", gin.H{"status": "ready"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong password stays gated, generic message
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// gated staff can set any status from any state
	token := staffToken(t, r)
	w = doJSON(t, r, http.MethodPatch, path, token, gin.H{"status": "collected"})
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.Preorder
	require.NoError(t, db.First(&got, row.ID).Error)
	assert.Equal(t, entity.StatusCollected, got.Status)
}

func TestUpdateStatusFailuresLeaveStoreUntouched(t *testing.T) {
	r, db := newTestApp(t)
	token := staffToken(t, r)

	row := entity.Preorder{CustomerName: "Aina", MenuItemID: 1, Quantity: 1, PickupTime: "8 PM", Status: entity.StatusPending}
	require.NoError(t, db.Create(&row).Error)

	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/manage/preorders/%d/status", row.ID), token, gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/manage/preorders/9999/status", token, gin.H{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var got entity.Preorder
	require.NoError(t, db.First(&got, row.ID).Error)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestManageSummary(t *testing.T) {
	r, db := newTestApp(t)
	token := staffToken(t, r)

	rows := []entity.Preorder{
		{CustomerName: "A", MenuItemID: 1, Quantity: 1, PickupTime: "8 PM", Status: entity.StatusReady},     // RM12.00
		{CustomerName: "B", MenuItemID: 2, Quantity: 2, PickupTime: "8 PM", Status: entity.StatusCollected}, // RM7.00
		{CustomerName: "C", MenuItemID: 1, Quantity: 5, PickupTime: "8 PM", Status: entity.StatusPending},   // ignored
	}
	require.NoError(t, db.Create(&rows).Error)

	w := doJSON(t, r, http.MethodGet, "/manage/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Summary struct {
			CompletedSen int64   `json:"completedSen"`
			Percent      float64 `json:"percent"`
			RemainingSen int64   `json:"remainingSen"`
		} `json:"summary"`
		Completed string `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(1900), out.Summary.CompletedSen)
	assert.Equal(t, 3.8, out.Summary.Percent)
	assert.Equal(t, int64(48100), out.Summary.RemainingSen)
	assert.Equal(t, "RM19.00", out.Completed)
}
