package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alazar/finance-backend/internal/core/services"
	"github.com/alazar/finance-backend/internal/handlers"
	"github.com/alazar/finance-backend/internal/middleware"
	"github.com/alazar/finance-backend/internal/repositories/jsonfile"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// HandlersTestSuite exercises the HTTP surface end to end against
// file-backed repositories in a temp directory.
type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := slog.Default()
	dir := s.T().TempDir()

	docRepo := jsonfile.NewDocumentRepository(dir, logger)
	authRepo := jsonfile.NewAuthRepository(dir, logger)
	tokenRepo := jsonfile.NewTokenRepository(dir, logger)
	svc := services.NewContainer(docRepo, authRepo, tokenRepo)

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(logger))
	noRateLimit := func(c *gin.Context) { c.Next() }
	handlers.RegisterRoutes(s.router, svc, noRateLimit)
}

func (s *HandlersTestSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) login() string {
	w := s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"username": jsonfile.DefaultUsername,
		"password": jsonfile.DefaultPassword,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Token)
	s.Equal(jsonfile.DefaultUsername, resp.Username)
	return resp.Token
}

func (s *HandlersTestSuite) TestHealthIsPublic() {
	w := s.request(http.MethodGet, "/api/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestEmployeeListIsPublic() {
	w := s.request(http.MethodGet, "/api/employees", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlersTestSuite) TestClientListRequiresToken() {
	w := s.request(http.MethodGet, "/api/clients", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"Unauthorized"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestGarbageTokenRejected() {
	w := s.request(http.MethodGet, "/api/clients", "not-a-real-token", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"Invalid token"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestLoginRejectsBadCredentials() {
	w := s.request(http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin", "password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"Invalid credentials"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestLoginRequiresBothFields() {
	w := s.request(http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"error":"Username and password are required"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestTokenLifecycle() {
	token := s.login()

	w := s.request(http.MethodPost, "/api/auth/verify", "", gin.H{"token": token})
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"valid":true}`, w.Body.String())

	w = s.request(http.MethodPost, "/api/auth/logout", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())

	w = s.request(http.MethodPost, "/api/auth/verify", "", gin.H{"token": token})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"valid":false}`, w.Body.String())

	w = s.request(http.MethodGet, "/api/clients", token, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestLogoutWithoutTokenStillSucceeds() {
	w := s.request(http.MethodPost, "/api/auth/logout", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())
}

func (s *HandlersTestSuite) TestClientCRUD() {
	token := s.login()

	w := s.request(http.MethodPost, "/api/clients", token, gin.H{
		"name": "Acme", "phone": "111",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	var created struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Require().NotEmpty(created.ID)

	w = s.request(http.MethodPut, "/api/clients/"+created.ID, token, gin.H{"name": "Acme v2"})
	s.Require().Equal(http.StatusOK, w.Code)
	var updated struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	s.Equal("Acme v2", updated.Name)
	s.Equal("111", updated.Phone, "omitted fields survive a partial update")

	w = s.request(http.MethodPut, "/api/clients/nope", token, gin.H{"name": "ghost"})
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"Client not found"}`, w.Body.String())

	w = s.request(http.MethodDelete, "/api/clients/"+created.ID, token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())

	// Deleting again is still a success.
	w = s.request(http.MethodDelete, "/api/clients/"+created.ID, token, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/clients", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlersTestSuite) TestIncomeCreateDerivesFields() {
	token := s.login()

	w := s.request(http.MethodPost, "/api/incomes", token, gin.H{
		"amount":          10000,
		"taxPercent":      6,
		"npAmount":        500,
		"employeePayouts": 2000,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var created struct {
		TaxAmount float64 `json:"taxAmount"`
		Profit    float64 `json:"profit"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal(600.0, created.TaxAmount)
	s.Equal(6900.0, created.Profit)
}

func (s *HandlersTestSuite) TestDocumentFetchAndReplace() {
	token := s.login()

	w := s.request(http.MethodGet, "/api/data", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var doc map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	s.Contains(doc, "clients")
	s.Contains(doc, "appSettings")

	doc["clients"] = []gin.H{{"id": "c1", "name": "Imported"}}
	w = s.request(http.MethodPut, "/api/data", token, doc)
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())

	w = s.request(http.MethodGet, "/api/clients", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Imported")
}

func (s *HandlersTestSuite) TestSingletonMerge() {
	token := s.login()

	w := s.request(http.MethodPut, "/api/organization", token, gin.H{"name": "Studio"})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPut, "/api/organization", token, gin.H{"inn": "7701234567"})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/organization", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var org struct {
		Name string `json:"name"`
		INN  string `json:"inn"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &org))
	s.Equal("Studio", org.Name, "earlier merge must be retained")
	s.Equal("7701234567", org.INN)

	w = s.request(http.MethodGet, "/api/app-settings", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "₽")
}

func (s *HandlersTestSuite) TestCollectionsStartEmpty() {
	token := s.login()
	for _, path := range []string{
		"/api/incomes", "/api/fixed-expenses", "/api/variable-expenses", "/api/expense-categories",
	} {
		w := s.request(http.MethodGet, path, token, nil)
		s.Equal(http.StatusOK, w.Code, fmt.Sprintf("GET %s", path))
		s.JSONEq(`[]`, w.Body.String())
	}
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
