package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rogerio-castellano/inventory-app/internal/auth"
	api "github.com/rogerio-castellano/inventory-app/internal/http"
	handler "github.com/rogerio-castellano/inventory-app/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-app/internal/repo"
)

var (
	categoryRepo *repo.InMemoryCategoryRepository
	productRepo  *repo.InMemoryProductRepository
	logRepo      *repo.InMemoryInventoryLogRepository
	userRepo     *repo.InMemoryUserRepository
)

func init() {
	auth.Configure("test-secret")
	setupTestRepos()
}

func setupTestRepos() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository(categoryRepo)
	logRepo = repo.NewInMemoryInventoryLogRepository(productRepo)
	userRepo = repo.NewInMemoryUserRepository()

	handler.SetCategoryRepo(categoryRepo)
	handler.SetProductRepo(productRepo)
	handler.SetInventoryLogRepo(logRepo)
	handler.SetUserRepo(userRepo)
}

func newRouter() http.Handler {
	return api.NewRouter(api.RouterOptions{})
}

func clearAll() {
	categoryRepo.Clear()
	productRepo.Clear()
	logRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, name string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/categories", handler.CategoryRequest{Name: name})
}

func createProduct(r http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", payload)
}

func updateProduct(r http.Handler, id int, payload map[string]any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", id), payload)
}

func adjustInventory(r http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/inventory-logs", payload)
}

func decodeBody[T any](w *httptest.ResponseRecorder) (T, error) {
	var out T
	err := json.NewDecoder(w.Body).Decode(&out)
	return out, err
}
