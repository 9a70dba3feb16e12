package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"estate-service/internal/middleware"
	"estate-service/internal/model"
	"estate-service/internal/repository"
	"estate-service/internal/service"
)

// fakeModerator approves each request id at most once, like the real
// conditional update.
type fakeModerator struct {
	decided map[string]bool
}

func (f *fakeModerator) ApproveProperty(_ context.Context, requestID, notes string) (*model.Property, error) {
	if requestID == "missing" {
		return nil, repository.ErrNotFound
	}
	if f.decided[requestID] {
		return nil, repository.ErrNotPending
	}
	f.decided[requestID] = true
	return &model.Property{ID: "p-" + requestID, Title: "Test Villa", IsApproved: true, Status: model.StatusAvailable}, nil
}

func (f *fakeModerator) RejectProperty(_ context.Context, requestID, notes string) error {
	if f.decided[requestID] {
		return repository.ErrNotPending
	}
	f.decided[requestID] = true
	return nil
}

func (f *fakeModerator) ApproveRental(_ context.Context, requestID, notes string) error {
	return f.RejectProperty(context.Background(), requestID, notes)
}

func (f *fakeModerator) RejectRental(_ context.Context, requestID, notes string) error {
	return f.RejectProperty(context.Background(), requestID, notes)
}

func (f *fakeModerator) Dashboard(context.Context) (*service.DashboardStats, error) {
	return &service.DashboardStats{PendingPropertyRequests: 1, PendingRentalRequests: 2, TotalProperties: 3}, nil
}

type emptyRequestQueue struct{}

func (emptyRequestQueue) GetAll(context.Context, int, int) ([]model.PropertyRequest, error) {
	return nil, nil
}

type emptyRentalQueue struct{}

func (emptyRentalQueue) GetAll(context.Context, int, int) ([]model.RentalRequest, error) {
	return nil, nil
}

// asAdmin stands in for the JWT middleware chain.
func asAdmin(c *gin.Context) {
	c.Set(middleware.CtxUserID, "admin-1")
	c.Set(middleware.CtxRole, model.RoleAdmin)
	c.Next()
}

func buildAdminRouter(mod *fakeModerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &AdminHandler{Moderation: mod, Requests: emptyRequestQueue{}, Rentals: emptyRentalQueue{}}
	h.RegisterRoutes(r.Group("/api"), asAdmin, func(c *gin.Context) { c.Next() })
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestApprovePropertyEndpoint(t *testing.T) {
	r := buildAdminRouter(&fakeModerator{decided: map[string]bool{}})

	resp := post(r, "/api/admin/property-requests/r1/approve", `{"admin_notes":"ok"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("first approve: got %d, body %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"property"`) {
		t.Errorf("expected the created property in the response: %s", resp.Body.String())
	}

	// A repeated approval is refused as a conflict and creates nothing.
	resp = post(r, "/api/admin/property-requests/r1/approve", "")
	if resp.Code != http.StatusConflict {
		t.Fatalf("repeat approve: got %d want 409", resp.Code)
	}
}

func TestApprovePropertyEndpointNotFound(t *testing.T) {
	r := buildAdminRouter(&fakeModerator{decided: map[string]bool{}})
	if resp := post(r, "/api/admin/property-requests/missing/approve", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("unknown id: got %d want 404", resp.Code)
	}
}

func TestRejectThenApproveEndpoint(t *testing.T) {
	r := buildAdminRouter(&fakeModerator{decided: map[string]bool{}})

	if resp := post(r, "/api/admin/property-requests/r2/reject", `{"admin_notes":"blurry"}`); resp.Code != http.StatusOK {
		t.Fatalf("reject: got %d", resp.Code)
	}
	if resp := post(r, "/api/admin/property-requests/r2/approve", ""); resp.Code != http.StatusConflict {
		t.Fatalf("approve after reject: got %d want 409", resp.Code)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	r := buildAdminRouter(&fakeModerator{decided: map[string]bool{}})
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("dashboard: got %d", resp.Code)
	}
	for _, key := range []string{"pending_property_requests", "pending_rental_requests", "total_properties"} {
		if !strings.Contains(resp.Body.String(), key) {
			t.Errorf("dashboard body missing %q: %s", key, resp.Body.String())
		}
	}
}
