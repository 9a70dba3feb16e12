package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "testsecret"

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin", RequireAuth(testSecret), RequireRole("admin"))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(CtxUserID)})
	})
	return r
}

func signToken(t *testing.T, method jwt.SigningMethod, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub":  "user-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func do(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRequireAuthAndRole(t *testing.T) {
	r := buildTestRouter()

	if resp := do(r, ""); resp.Code != http.StatusUnauthorized {
		t.Errorf("no token: got %d want 401", resp.Code)
	}
	if resp := do(r, "garbage"); resp.Code != http.StatusUnauthorized {
		t.Errorf("bad token: got %d want 401", resp.Code)
	}
	if resp := do(r, signToken(t, jwt.SigningMethodHS512, "client")); resp.Code != http.StatusForbidden {
		t.Errorf("client role: got %d want 403", resp.Code)
	}
	if resp := do(r, signToken(t, jwt.SigningMethodHS512, "admin")); resp.Code != http.StatusOK {
		t.Errorf("admin role: got %d want 200", resp.Code)
	}
}

func TestRequireAuthRejectsWrongAlg(t *testing.T) {
	r := buildTestRouter()
	// Correctly signed, but with HS256; only HS512 is accepted.
	if resp := do(r, signToken(t, jwt.SigningMethodHS256, "admin")); resp.Code != http.StatusUnauthorized {
		t.Errorf("HS256 token: got %d want 401", resp.Code)
	}
}

func TestRequireRoleAllowsAnyListed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/either", RequireAuth(testSecret), RequireRole("owner", "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/either", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS512, "owner"))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Errorf("owner on owner|admin route: got %d want 200", resp.Code)
	}
}
