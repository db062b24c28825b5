package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-management/internal/item"
	"inventory-management/internal/item/repository/sqlite"
	"inventory-management/internal/item/usecase"
	"inventory-management/internal/middleware"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
	pkgsqlite "inventory-management/pkg/sqlite"
)

type testEnv struct {
	engine     *gin.Engine
	adminToken string
	userToken  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	gin.SetMode(gin.TestMode)

	db, err := pkgsqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.EnsureSchema(ctx, db))

	l := log.NewNop()
	mgr := scope.New("secret", "inventory-test", time.Hour)
	mw := middleware.New(l, mgr, middleware.Config{
		Roles: map[string][]string{"admin": item.AllPermissions, "user": {}},
	}, nil)

	uc := usecase.New(sqlite.New(db, l), l)
	engine := gin.New()
	RegisterRoutes(engine.Group("/v1"), New(l, uc), mw)

	adminToken, err := mgr.CreateToken(scope.Scope{UserID: "admin-1", Username: "admin", Role: "admin"})
	require.NoError(t, err)
	userToken, err := mgr.CreateToken(scope.Scope{UserID: "user-1", Username: "user", Role: "user"})
	require.NoError(t, err)

	return &testEnv{engine: engine, adminToken: adminToken, userToken: userToken}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func applePayload() map[string]any {
	return map[string]any{
		"code":                "A1",
		"name":                "Apple",
		"chartOfAccount":      "Goods",
		"hasProductionNumber": true,
		"hasExpiryDate":       false,
		"unit":                "pcs",
		"converter":           []map[string]any{{"name": "dozen", "multiply": 12}},
	}
}

func (e *testEnv) create(t *testing.T, payload map[string]any) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/v1/items", e.adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[createResp](t, w).ID
	require.NotEmpty(t, id)
	return id
}

func TestCreateThenDetail(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, applePayload())

	w := env.do(t, http.MethodGet, "/v1/items/"+id, env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[detailResp](t, w).Data
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "A1", got.Code)
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, "Goods", got.ChartOfAccount)
	assert.True(t, got.HasProductionNumber)
	assert.False(t, got.HasExpiryDate)
	assert.Equal(t, "pcs", got.Unit)
	assert.Equal(t, []converterResp{{Name: "dozen", Multiply: 12}}, got.Converter)
	assert.False(t, got.IsArchived)
	assert.Equal(t, "admin-1", got.CreatedByID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/items", env.adminToken, map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "Unprocessable Entity", body.Message)
	assert.Equal(t, []string{item.MsgNameRequired}, body.Errors["name"])
	assert.Equal(t, []string{item.MsgChartOfAccountRequired}, body.Errors["chartOfAccount"])
	assert.Equal(t, []string{item.MsgUnitRequired}, body.Errors["unit"])

	assert.Contains(t, w.Body.String(), `"errors":{"name":`, "errors keep declaration order")
}

func TestCreateConverterShape(t *testing.T) {
	env := newTestEnv(t)
	payload := applePayload()
	payload["converter"] = []map[string]any{{"name": ""}}

	w := env.do(t, http.MethodPost, "/v1/items", env.adminToken, payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, []string{item.MsgConverterNameRequired}, body.Errors["converter.0.name"])
	assert.Equal(t, []string{item.MsgMultiplyRequired}, body.Errors["converter.0.multiply"])
}

func TestCreateDuplicate(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, applePayload())

	w := env.do(t, http.MethodPost, "/v1/items", env.adminToken, applePayload())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, []string{item.MsgCodeExists}, body.Errors["code"])
	assert.Equal(t, []string{item.MsgNameExists}, body.Errors["name"])

	list := env.do(t, http.MethodGet, "/v1/items", env.adminToken, nil)
	assert.EqualValues(t, 1, decode[listResp](t, list).Pagination.TotalDocument)
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, applePayload())

	w := env.do(t, http.MethodPatch, "/v1/items/"+id, env.adminToken, map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[errorBody](t, w)
	assert.ElementsMatch(t, []string{"name", "chartOfAccount", "unit"}, keys(body.Errors))

	w = env.do(t, http.MethodPatch, "/v1/items/"+id, env.adminToken, map[string]any{"name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(t, http.MethodPatch, "/v1/items/"+id, env.adminToken, map[string]any{"name": "Red Apple"})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	got := decode[detailResp](t, env.do(t, http.MethodGet, "/v1/items/"+id, env.adminToken, nil)).Data
	assert.Equal(t, "Red Apple", got.Name)
	assert.Equal(t, "A1", got.Code)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, "admin-1", got.UpdatedByID)

	w = env.do(t, http.MethodPatch, "/v1/items/missing", env.adminToken, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, w.Body.String())
}

func TestArchiveRestore(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, applePayload())

	w := env.do(t, http.MethodPatch, "/v1/items/"+id+"/archive", env.adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	got := decode[detailResp](t, env.do(t, http.MethodGet, "/v1/items/"+id, env.adminToken, nil)).Data
	assert.True(t, got.IsArchived)

	w = env.do(t, http.MethodPatch, "/v1/items/"+id+"/restore", env.adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	got = decode[detailResp](t, env.do(t, http.MethodGet, "/v1/items/"+id, env.adminToken, nil)).Data
	assert.False(t, got.IsArchived)
	assert.Equal(t, "Apple", got.Name)

	w = env.do(t, http.MethodPatch, "/v1/items/missing/archive", env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, applePayload())

	w := env.do(t, http.MethodDelete, "/v1/items/"+id, env.adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/v1/items/"+id, env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/v1/items/"+id, env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list := decode[listResp](t, env.do(t, http.MethodGet, "/v1/items", env.adminToken, nil))
	assert.Empty(t, list.Data)
	assert.EqualValues(t, 0, list.Pagination.TotalDocument)
	assert.Equal(t, 0, list.Pagination.PageCount)
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	for _, name := range []string{"Apple", "Banana", "Cherry"} {
		env.create(t, map[string]any{"name": name, "chartOfAccount": "Goods", "unit": "pcs"})
	}

	w := env.do(t, http.MethodGet, "/v1/items?page=2&pageSize=2", env.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[listResp](t, w)
	assert.Len(t, list.Data, 1)
	assert.Equal(t, 2, list.Pagination.Page)
	assert.Equal(t, 2, list.Pagination.PageSize)
	assert.Equal(t, 2, list.Pagination.PageCount)
	assert.EqualValues(t, 3, list.Pagination.TotalDocument)

	w = env.do(t, http.MethodGet, "/v1/items?search=an", env.adminToken, nil)
	list = decode[listResp](t, w)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Banana", list.Data[0].Name)

	w = env.do(t, http.MethodGet, "/v1/items?page=abc", env.adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessControl(t *testing.T) {
	env := newTestEnv(t)
	id := env.create(t, applePayload())

	w := env.do(t, http.MethodGet, "/v1/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized Access"}`, w.Body.String())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/v1/items"},
		{http.MethodGet, "/v1/items/" + id},
		{http.MethodPost, "/v1/items"},
		{http.MethodPatch, "/v1/items/" + id},
		{http.MethodPatch, "/v1/items/" + id + "/archive"},
		{http.MethodPatch, "/v1/items/" + id + "/restore"},
		{http.MethodDelete, "/v1/items/" + id},
	} {
		w := env.do(t, tc.method, tc.path, env.userToken, applePayload())
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/items", env.adminToken, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Bad Request"}`, w.Body.String())
}

func keys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
