package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/blob"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

var errInjected = errors.New("injected blob failure")

func itoa(n int) string { return strconv.Itoa(n) }

type env struct {
	router   http.Handler
	products *repo.InMemoryProductRepository
	users    *repo.InMemoryUserRepository
	blobs    *blob.MemoryStore
	svc      *catalog.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()

	auth.SetSecret("test-secret")

	users := repo.NewInMemoryUserRepository()
	products := repo.NewInMemoryProductRepository(users)
	blobs := blob.NewMemoryStore()

	svc := catalog.NewService(products, users, blobs)
	handler.SetCatalog(svc)
	handler.SetUserRepo(users)
	handler.SetContactRepo(repo.NewInMemoryContactRepository())
	rl.CleanupAllVisitors()

	return &env{
		router:   router.NewRouter(),
		products: products,
		users:    users,
		blobs:    blobs,
		svc:      svc,
	}
}

// signup registers a user through the API and returns its id and token.
func (e *env) signup(t *testing.T, email string) (int, string) {
	t.Helper()

	body, _ := json.Marshal(handler.SignupRequest{
		Name:     "Test User",
		Company:  "Test Co",
		Email:    email,
		Password: "secret-pw",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("signup failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding signup response: %v", err)
	}
	return resp.UserData.UserID, resp.UserData.Token
}

func validProductRequest(gtin string) handler.ProductRequest {
	return handler.ProductRequest{
		GTIN:        gtin,
		Name:        "Frozen Peas",
		Description: "A bag of garden peas",
		Category:    "Vegetables",
		Type:        "Frozen",
		TempUnits:   "C",
		MinTemp:     -20,
		MaxTemp:     -18,
		Height:      10,
		Width:       15,
		Depth:       5,
		Weight:      0.5,
	}
}

func (e *env) createProduct(token string, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products/", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) patchProduct(token, gtin string, patch handler.ProductPatchRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(patch)
	req := httptest.NewRequest(http.MethodPatch, "/api/products/"+gtin, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) do(token, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// multipartProduct builds a multipart form with product fields and an
// optional PNG image part.
func multipartProduct(fields map[string]string, imageBytes []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		writer.WriteField(k, v)
	}

	if imageBytes != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, "product.png"))
		header.Set("Content-Type", "image/png")
		part, _ := writer.CreatePart(header)
		part.Write(imageBytes)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}
