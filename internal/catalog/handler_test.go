package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flavorflow/internal/storage"

	"github.com/gin-gonic/gin"
)

func setupMenuTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := NewService(context.Background(), storage.NewMemoryStore())
	handler := NewHandler(service)

	r := gin.New()
	r.GET("/menu", handler.List)
	r.GET("/menu/:id/share", handler.Share)
	r.DELETE("/menu/:id", handler.Delete)

	return r, service
}

func TestMenuListWithCategoryFilter(t *testing.T) {
	router, service := setupMenuTestRouter(t)

	ctx := context.Background()
	_ = service.Add(ctx, Dish{ID: "d1", Title: "Dosa", Category: "Main Course"})
	_ = service.Add(ctx, Dish{ID: "d2", Title: "Chai", Category: "Beverage"})

	req := httptest.NewRequest(http.MethodGet, "/menu?category=Beverage", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Items      []Dish   `json:"items"`
		Categories []string `json:"categories"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	if len(resp.Items) != 1 || resp.Items[0].ID != "d2" {
		t.Fatalf("expected only the beverage, got %+v", resp.Items)
	}
	if len(resp.Categories) != 2 {
		t.Fatalf("expected both categories listed, got %v", resp.Categories)
	}
}

func TestMenuDelete(t *testing.T) {
	router, service := setupMenuTestRouter(t)

	_ = service.Add(context.Background(), Dish{ID: "d1", Title: "Dosa"})

	req := httptest.NewRequest(http.MethodDelete, "/menu/d1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(service.List("")) != 0 {
		t.Fatal("dish must be removed")
	}
}

func TestMenuShare(t *testing.T) {
	router, service := setupMenuTestRouter(t)

	_ = service.Add(context.Background(), Dish{ID: "d1", Title: "Veg Burger", Price: 199})

	req := httptest.NewRequest(http.MethodGet, "/menu/d1/share", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Text        string `json:"text"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	if !strings.Contains(resp.Text, "Veg Burger") {
		t.Fatalf("share text missing title: %s", resp.Text)
	}
	if !strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/?text=") {
		t.Fatalf("unexpected share URL: %s", resp.WhatsAppURL)
	}
}

func TestMenuShareUnknownDish(t *testing.T) {
	router, _ := setupMenuTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/menu/missing/share", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
